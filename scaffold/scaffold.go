// Package scaffold provides the embedded starter site written by
// `docsite init`: the docs directory and the static images the default
// configuration and homepage features refer to.
package scaffold

import "embed"

// Templates contains all scaffold files. Files with a .tmpl suffix are Go
// text/templates; everything else is copied as is.
//
//go:embed all:templates
var Templates embed.FS
