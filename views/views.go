// Package views holds the default theme: templ components for the
// homepage, doc pages and error pages, plus the stylesheet and color mode
// script they reference.
package views

import (
	"embed"
	"io/fs"

	"github.com/unlibra/docsite"
)

//go:embed all:static
var static embed.FS

// Assets returns the theme's static files, rooted at the output root.
func Assets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Funcs wires the default theme into a docsite.ViewFuncs.
func Funcs() docsite.ViewFuncs {
	return docsite.ViewFuncs{
		Home:        Home,
		Doc:         DocPage,
		NotFound:    NotFound,
		ServerError: ServerError,
		Assets:      Assets(),
	}
}
