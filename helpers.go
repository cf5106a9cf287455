package docsite

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// JoinRoute joins route segments under baseURL into an absolute path with a
// trailing slash. JoinRoute("/tkinter-unblur/", "/", "api") is "/tkinter-unblur/api/".
func JoinRoute(baseURL string, segments ...string) string {
	p := path.Join(append([]string{"/", baseURL}, segments...)...)
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// AssetURL joins a static asset path under baseURL without a trailing slash.
func AssetURL(baseURL, asset string) string {
	if isExternal(asset) {
		return asset
	}
	return path.Join("/", baseURL, asset)
}

// outputPath maps a route under baseURL to the file that serves it.
// "/base/api/" becomes "api/index.html"; "/base/sitemap.xml" stays "sitemap.xml".
func outputPath(baseURL, route string) (string, bool) {
	route = strings.SplitN(route, "#", 2)[0]
	route = strings.SplitN(route, "?", 2)[0]
	base := JoinRoute(baseURL)
	if route+"/" == base {
		route = base
	}
	if !strings.HasPrefix(route, base) {
		return "", false
	}
	rel := strings.TrimPrefix(route, base)
	if rel == "" || strings.HasSuffix(rel, "/") {
		return rel + "index.html", true
	}
	if path.Ext(rel) == "" {
		return rel + "/index.html", true
	}
	return rel, true
}

func isExternal(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return u.Scheme != "" || strings.HasPrefix(link, "//")
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Title,
		"url":         BuildURL(cfg.URL, cfg.BaseURL),
		"description": cfg.Tagline,
	}
	if cfg.OrganizationName != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.OrganizationName,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// TechArticleJsonLD returns a JSON-LD string for a documentation page.
func TechArticleJsonLD(doc Doc, cfg SiteConfig) string {
	docURL := BuildURL(cfg.URL, doc.Route)
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "TechArticle",
		"headline": doc.Title,
		"url":      docURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   docURL,
		},
		"inLanguage": cfg.I18n.DefaultLocale,
	}
	if doc.Description != "" {
		data["description"] = doc.Description
	}
	if cfg.OrganizationName != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.OrganizationName,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
