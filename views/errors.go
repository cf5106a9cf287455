package views

import (
	"github.com/a-h/templ"

	"github.com/unlibra/docsite"
)

// NotFound is written to 404.html, which static hosts serve for unknown paths.
func NotFound(site *docsite.Site) templ.Component {
	meta := site.Meta("Page Not Found", "", site.Config.BaseURL, "website")
	body := component(func(p *page) {
		p.raw(`<main class="container margin-vert--xl"><div class="row"><div class="col col--6 col--offset-3">`)
		p.raw(`<h1 class="hero__title">Page Not Found</h1>`)
		p.raw("<p>We could not find what you were looking for.</p>")
		p.rawf(`<p><a href="%s">Back to the homepage</a></p>`, attr(site.URL("/")))
		p.raw("</div></div></main>")
	})
	return Layout(site, meta, docsite.WebsiteJsonLD(site.Config), body)
}

// ServerError is shown by the dev server when a render fails. It does not
// depend on a Site because there may not be one.
func ServerError(err error) templ.Component {
	return component(func(p *page) {
		p.raw(`<html lang="en"><head><meta charset="utf-8"><title>Render failed</title></head>`)
		p.raw(`<body style="font-family:system-ui,sans-serif;margin:2rem">`)
		p.raw("<h1>Render failed</h1><pre>")
		if err != nil {
			p.text(err.Error())
		}
		p.raw("</pre><p>Fix the problem and save; the page re-renders on the next request.</p></body></html>")
	})
}
