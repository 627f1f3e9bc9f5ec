// Package web embeds the site's pages and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed *.html static
var files embed.FS

// Pages returns the page templates, one <name>.html per page.
func Pages() fs.FS {
	return files
}

// Static returns the assets served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
