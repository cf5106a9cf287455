package views

import (
	"github.com/a-h/templ"

	"github.com/unlibra/docsite"
)

// Home is the landing page: hero header plus the feature cards.
func Home(site *docsite.Site) templ.Component {
	meta := site.Meta("", site.Config.Tagline, site.Config.BaseURL, "website")
	body := component(func(p *page) {
		p.render(HomepageHeader(site))
		p.raw("<main>")
		p.render(HomepageFeatures(site))
		p.raw("</main>")
	})
	return Layout(site, meta, docsite.WebsiteJsonLD(site.Config), body)
}

// HomepageHeader is the hero banner with the site title, tagline and a
// link to the first doc.
func HomepageHeader(site *docsite.Site) templ.Component {
	return component(func(p *page) {
		p.raw(`<header class="hero hero--primary heroBanner"><div class="container">`)
		p.raw(`<h1 class="hero__title">`)
		p.text(site.Config.Title)
		p.raw(`</h1><p class="hero__subtitle">`)
		p.text(site.Config.Tagline)
		p.raw("</p>")
		if len(site.Docs) > 0 {
			p.rawf(`<div class="buttons"><a class="button button--secondary button--lg" href="%s">Get Started</a></div>`,
				attr(site.Docs[0].Route))
		}
		p.raw("</div></header>")
	})
}

// HomepageFeatures renders one card per feature, in list order, inside a
// three-column row.
func HomepageFeatures(site *docsite.Site) templ.Component {
	return component(func(p *page) {
		p.raw(`<section class="features"><div class="container"><div class="row">`)
		for _, f := range site.Features {
			p.render(featureCard(site, f))
		}
		p.raw("</div></div></section>")
	})
}

func featureCard(site *docsite.Site, f docsite.Feature) templ.Component {
	return component(func(p *page) {
		p.raw(`<div class="col col--4"><div class="text--center">`)
		p.raw(inlineSVG(site.Icon(f.Icon), "featureSvg"))
		p.raw(`</div><div class="text--center padding-horiz--md"><h3>`)
		p.text(f.Title)
		p.raw("</h3><p>")
		p.render(inlineCode(f.Description))
		p.raw("</p></div></div>")
	})
}
