package main

import (
	"os"

	"github.com/vivircondiabetes/sitio/cmd/sitio/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
