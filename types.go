package docsite

import "github.com/unlibra/docsite/markdown"

// Feature is one homepage feature card.
type Feature struct {
	Title       string
	Icon        string // static asset path, e.g. "img/undraw_docusaurus_tree.svg"
	Description string // plain text; `backticks` mark inline code
}

// Doc is a documentation page loaded from the docs directory.
type Doc struct {
	ID           string
	Title        string
	Description  string
	SidebarLabel string
	Position     int
	Route        string // absolute path including baseUrl, with trailing slash
	SourcePath   string // path inside the source FS
	EditURL      string
	Body         string // markdown without front matter
	HTML         string
	TOC          []markdown.Heading
	HasTitle     bool // body starts with its own # heading
}

// Label is the text shown in the sidebar.
func (d Doc) Label() string {
	if d.SidebarLabel != "" {
		return d.SidebarLabel
	}
	return d.Title
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // absolute og:image URL
}
