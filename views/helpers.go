package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/unlibra/docsite"
)

// page accumulates markup and keeps the first write error, so components
// can be written top to bottom without checking every call.
type page struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (p *page) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *page) rawf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// text writes s HTML-escaped.
func (p *page) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *page) render(c templ.Component) {
	if p.err != nil || c == nil {
		return
	}
	p.err = c.Render(p.ctx, p.w)
}

// component adapts a page-writing func to templ.Component.
func component(fn func(p *page)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &page{ctx: ctx, w: w}
		fn(p)
		return p.err
	})
}

// attr escapes s for a double-quoted attribute value.
func attr(s string) string {
	return templ.EscapeString(s)
}

// inlineCode renders text where `backticks` mark inline code.
func inlineCode(s string) templ.Component {
	return component(func(p *page) {
		for i, part := range strings.Split(s, "`") {
			if part == "" {
				continue
			}
			if i%2 == 1 {
				p.raw("<code>")
				p.text(part)
				p.raw("</code>")
				continue
			}
			p.text(part)
		}
	})
}

// inlineSVG strips any XML prolog from an SVG file and tags the root element
// with class and role="img".
func inlineSVG(markup, class string) string {
	i := strings.Index(markup, "<svg")
	if i < 0 {
		return ""
	}
	markup = markup[i:]
	return `<svg class="` + attr(class) + `" role="img"` + strings.TrimPrefix(markup, "<svg")
}

// linkAttrs returns the href (and target for external links) of a nav or
// footer entry. to is a site route, href an external URL.
func linkAttrs(site *docsite.Site, to, href string) string {
	if href != "" {
		return `href="` + attr(href) + `" target="_blank" rel="noopener noreferrer"`
	}
	return `href="` + attr(site.URL(to)) + `"`
}

func navItems(items []docsite.NavItem, position string) []docsite.NavItem {
	var out []docsite.NavItem
	for _, it := range items {
		pos := it.Position
		if pos == "" {
			pos = "left"
		}
		if pos == position {
			out = append(out, it)
		}
	}
	return out
}

func footerClass(style string) string {
	if style == "dark" {
		return "footer footer--dark"
	}
	return "footer"
}
