package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivircondiabetes/sitio/modules/site"
	"github.com/vivircondiabetes/sitio/pkg/logger"
)

func (a *app) buildCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the enhanced pages and assets to a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, static := a.cfg.Site.files()
			written, err := site.Build(cmd.Context(), a.store(), static, out)
			if err != nil {
				return err
			}
			for _, name := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "%s.html\n", name)
			}
			a.log.InfoContext(cmd.Context(), "site built", logger.Event("site_built"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "public", "output directory")
	return cmd
}
