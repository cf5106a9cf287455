package views

import (
	"github.com/a-h/templ"

	"github.com/unlibra/docsite"
)

// DocPage renders a documentation page with sidebar, table of contents,
// edit link and previous/next navigation.
func DocPage(site *docsite.Site, doc docsite.Doc) templ.Component {
	meta := site.Meta(doc.Title, doc.Description, doc.Route, "article")
	body := component(func(p *page) {
		p.raw(`<div class="docs-wrapper"><div class="docs-page">`)
		p.render(Sidebar(site, doc.Route))
		p.raw(`<main class="docs-main"><article class="markdown">`)
		if !doc.HasTitle {
			p.raw("<h1>")
			p.text(doc.Title)
			p.raw("</h1>")
		}
		p.raw(doc.HTML)
		p.raw("</article>")
		if doc.EditURL != "" {
			p.rawf(`<div class="docs-edit"><a href="%s" target="_blank" rel="noopener noreferrer">Edit this page</a></div>`, attr(doc.EditURL))
		}
		p.render(pagination(site, doc))
		p.raw("</main>")
		p.render(TOC(doc))
		p.raw("</div></div>")
	})
	return Layout(site, meta, docsite.TechArticleJsonLD(doc, site.Config), body)
}

// Sidebar lists every doc, highlighting the one at route.
func Sidebar(site *docsite.Site, route string) templ.Component {
	return component(func(p *page) {
		p.raw(`<aside class="docs-sidebar"><nav aria-label="Docs sidebar"><ul class="menu__list">`)
		for _, d := range site.Docs {
			class := "menu__link"
			if site.IsActive(d, route) {
				class += " menu__link--active"
			}
			p.rawf(`<li class="menu__list-item"><a class="%s" href="%s">`, class, attr(d.Route))
			p.text(d.Label())
			p.raw("</a></li>")
		}
		p.raw("</ul></nav></aside>")
	})
}

// TOC renders the h2/h3 outline of doc. Pages without headings get none.
func TOC(doc docsite.Doc) templ.Component {
	return component(func(p *page) {
		if len(doc.TOC) == 0 {
			return
		}
		p.raw(`<aside class="docs-toc"><ul class="table-of-contents">`)
		for _, h := range doc.TOC {
			class := "table-of-contents__link"
			if h.Level == 3 {
				class += " table-of-contents__link--nested"
			}
			p.rawf(`<li><a class="%s" href="#%s">`, class, attr(h.ID))
			p.text(h.Text)
			p.raw("</a></li>")
		}
		p.raw("</ul></aside>")
	})
}

func pagination(site *docsite.Site, doc docsite.Doc) templ.Component {
	return component(func(p *page) {
		prev, next := site.Neighbors(doc)
		if prev == nil && next == nil {
			return
		}
		p.raw(`<nav class="pagination-nav" aria-label="Docs pages">`)
		if prev != nil {
			p.rawf(`<a class="pagination-nav__link pagination-nav__link--prev" href="%s"><div class="pagination-nav__sublabel">Previous</div><div class="pagination-nav__label">`, attr(prev.Route))
			p.text(prev.Label())
			p.raw("</div></a>")
		}
		if next != nil {
			p.rawf(`<a class="pagination-nav__link pagination-nav__link--next" href="%s"><div class="pagination-nav__sublabel">Next</div><div class="pagination-nav__label">`, attr(next.Route))
			p.text(next.Label())
			p.raw("</div></a>")
		}
		p.raw("</nav>")
	})
}
