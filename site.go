package docsite

import (
	"strings"
	"time"
)

// Site is the render context handed to every view. It is built once per
// render and must not be modified by views.
type Site struct {
	Config   SiteConfig
	Docs     []Doc // sidebar order
	Features []Feature
	Now      time.Time

	icons map[string]string
}

// NewSite assembles a render context. icons maps each feature icon path to
// its SVG markup.
func NewSite(cfg SiteConfig, docs []Doc, features []Feature, now time.Time, icons map[string]string) *Site {
	return &Site{Config: cfg, Docs: docs, Features: features, Now: now, icons: icons}
}

// URL maps a site route such as "/" or "/api" to its absolute path under
// baseUrl. External links pass through unchanged.
func (s *Site) URL(route string) string {
	if isExternal(route) {
		return route
	}
	return JoinRoute(s.Config.BaseURL, route)
}

// Asset maps a static file path such as "img/logo.svg" to its URL path.
func (s *Site) Asset(p string) string {
	return AssetURL(s.Config.BaseURL, p)
}

// Icon returns the inline SVG markup for a feature icon. It is empty only if
// the icon was not loaded, which feature validation rules out.
func (s *Site) Icon(ref string) string {
	return s.icons[ref]
}

// Copyright returns the footer copyright line for the render year.
func (s *Site) Copyright() string {
	return s.Config.Copyright(s.Now)
}

// Lang is the value for <html lang>.
func (s *Site) Lang() string {
	return s.Config.I18n.DefaultLocale
}

// Meta builds the <head> metadata for the page at route.
func (s *Site) Meta(title, description, route, ogType string) PageMeta {
	fullTitle := s.Config.Title
	if title != "" && title != s.Config.Title {
		fullTitle = title + " | " + s.Config.Title
	}
	if description == "" {
		description = s.Config.Tagline
	}
	meta := PageMeta{
		Title:       fullTitle,
		Description: description,
		URL:         BuildURL(s.Config.URL, route),
		OGType:      ogType,
	}
	if img := s.Config.Theme.Image; img != "" {
		meta.Image = strings.TrimSuffix(s.Config.URL, "/") + s.Asset(img)
	}
	return meta
}

// IsActive reports whether doc is the page at route, for sidebar highlighting.
func (s *Site) IsActive(doc Doc, route string) bool {
	return doc.Route == route
}

// Neighbors returns the docs before and after doc in sidebar order.
func (s *Site) Neighbors(doc Doc) (prev, next *Doc) {
	for i := range s.Docs {
		if s.Docs[i].Route != doc.Route {
			continue
		}
		if i > 0 {
			prev = &s.Docs[i-1]
		}
		if i+1 < len(s.Docs) {
			next = &s.Docs[i+1]
		}
		return prev, next
	}
	return nil, nil
}
