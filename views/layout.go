package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/unlibra/docsite"
)

// Layout is the HTML shell shared by every page: head metadata, navbar,
// body and footer.
func Layout(site *docsite.Site, meta docsite.PageMeta, jsonLD string, body templ.Component) templ.Component {
	return component(func(p *page) {
		cfg := site.Config
		mode := cfg.Theme.ColorMode

		p.rawf(`<html lang="%s" data-theme="%s" data-default-mode="%s" data-respect-prefers="%s" data-switch="%s">`,
			attr(site.Lang()), attr(mode.DefaultMode), attr(mode.DefaultMode),
			strconv.FormatBool(mode.RespectPrefersColorScheme), onOff(!mode.DisableSwitch))
		p.raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.raw(`<meta name="generator" content="docsite">`)
		p.raw("<title>")
		p.text(meta.Title)
		p.raw("</title>")
		p.rawf(`<meta name="description" content="%s">`, attr(meta.Description))
		p.rawf(`<link rel="canonical" href="%s">`, attr(meta.URL))
		p.rawf(`<meta property="og:title" content="%s">`, attr(meta.Title))
		p.rawf(`<meta property="og:description" content="%s">`, attr(meta.Description))
		p.rawf(`<meta property="og:url" content="%s">`, attr(meta.URL))
		p.rawf(`<meta property="og:type" content="%s">`, attr(meta.OGType))
		p.rawf(`<meta property="og:locale" content="%s">`, attr(site.Lang()))
		if meta.Image != "" {
			p.rawf(`<meta property="og:image" content="%s">`, attr(meta.Image))
			p.raw(`<meta name="twitter:card" content="summary_large_image">`)
			p.rawf(`<meta name="twitter:image" content="%s">`, attr(meta.Image))
		}
		if cfg.Favicon != "" {
			p.rawf(`<link rel="icon" href="%s">`, attr(site.Asset(cfg.Favicon)))
		}
		p.rawf(`<link rel="sitemap" type="application/xml" href="%s">`, attr(site.Asset(cfg.Sitemap.Filename)))
		p.rawf(`<link rel="stylesheet" href="%s">`, attr(site.Asset("assets/css/styles.css")))
		p.rawf(`<link rel="stylesheet" id="syntax-light" href="%s">`, attr(site.Asset("assets/css/syntax-light.css")))
		p.rawf(`<link rel="stylesheet" id="syntax-dark" href="%s"%s>`, attr(site.Asset("assets/css/syntax-dark.css")), disabledUnless(mode.DefaultMode == "dark"))
		p.rawf(`<script src="%s"></script>`, attr(site.Asset("assets/js/color-mode.js")))
		// json.Marshal escapes <, > and &, so the payload cannot close the tag.
		p.rawf(`<script type="application/ld+json">%s</script>`, jsonLD)
		p.raw("</head><body>")
		p.render(Navbar(site))
		p.render(body)
		p.render(Footer(site))
		p.raw("</body></html>")
	})
}

// Navbar renders the brand, the left and right item groups and the color
// mode toggle.
func Navbar(site *docsite.Site) templ.Component {
	return component(func(p *page) {
		nav := site.Config.Theme.Navbar
		p.raw(`<nav class="navbar" aria-label="Main"><div class="navbar__inner"><div class="navbar__items">`)
		p.rawf(`<a class="navbar__brand" href="%s">`, attr(site.URL("/")))
		if nav.Logo.Src != "" {
			p.rawf(`<img class="navbar__logo" src="%s" alt="%s" width="32" height="32">`, attr(site.Asset(nav.Logo.Src)), attr(nav.Logo.Alt))
		}
		p.raw(`<b class="navbar__title">`)
		p.text(nav.Title)
		p.raw("</b></a>")
		for _, it := range navItems(nav.Items, "left") {
			p.rawf(`<a class="navbar__link" %s>`, linkAttrs(site, it.To, it.Href))
			p.text(it.Label)
			p.raw("</a>")
		}
		p.raw(`</div><div class="navbar__items navbar__items--right">`)
		for _, it := range navItems(nav.Items, "right") {
			p.rawf(`<a class="navbar__link" %s>`, linkAttrs(site, it.To, it.Href))
			p.text(it.Label)
			p.raw("</a>")
		}
		if !site.Config.Theme.ColorMode.DisableSwitch {
			p.raw(`<button type="button" class="color-mode-toggle" id="color-mode-toggle" title="Switch between dark and light mode" aria-label="Switch between dark and light mode"></button>`)
		}
		p.raw("</div></div></nav>")
	})
}

// Footer renders the link groups and the copyright line.
func Footer(site *docsite.Site) templ.Component {
	return component(func(p *page) {
		f := site.Config.Theme.Footer
		p.rawf(`<footer class="%s"><div class="container">`, footerClass(f.Style))
		if len(f.Links) > 0 {
			p.raw(`<div class="row footer__links">`)
			for _, g := range f.Links {
				p.raw(`<div class="col footer__col"><div class="footer__title">`)
				p.text(g.Title)
				p.raw(`</div><ul class="footer__items">`)
				for _, it := range g.Items {
					p.rawf(`<li class="footer__item"><a class="footer__link-item" %s>`, linkAttrs(site, it.To, it.Href))
					p.text(it.Label)
					p.raw("</a></li>")
				}
				p.raw("</ul></div>")
			}
			p.raw("</div>")
		}
		if c := site.Copyright(); c != "" {
			p.raw(`<div class="footer__copyright">`)
			p.text(c)
			p.raw("</div>")
		}
		p.raw("</div></footer>")
	})
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func disabledUnless(b bool) string {
	if b {
		return ""
	}
	return " disabled"
}
