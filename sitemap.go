package docsite

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// RenderSitemap writes a sitemap for routes (absolute paths under baseUrl).
// Routes matching a sitemap ignore pattern are left out; patterns are
// matched against the route with baseUrl stripped, e.g. "/tags/**".
func RenderSitemap(cfg SiteConfig, routes []string) ([]byte, error) {
	base := JoinRoute(cfg.BaseURL)
	priority := ""
	if cfg.Sitemap.Priority > 0 {
		priority = strconv.FormatFloat(cfg.Sitemap.Priority, 'f', -1, 64)
	}

	urls := make([]sitemapURL, 0, len(routes))
	for _, route := range routes {
		rel := "/" + strings.TrimPrefix(route, base)
		ignored, err := matchesAny(cfg.Sitemap.IgnorePatterns, rel)
		if err != nil {
			return nil, err
		}
		if ignored {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(cfg.URL, route),
			ChangeFreq: cfg.Sitemap.ChangeFreq,
			Priority:   priority,
		})
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return nil, fmt.Errorf("docsite: encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func matchesAny(patterns []string, route string) (bool, error) {
	trimmed := strings.TrimSuffix(route, "/")
	for _, p := range patterns {
		for _, candidate := range []string{route, trimmed} {
			ok, err := doublestar.Match(p, candidate)
			if err != nil {
				return false, fmt.Errorf("docsite: sitemap ignore pattern %q: %w", p, err)
			}
			if ok {
				return true, nil
			}
		}
	}
	return false, nil
}

// RenderRobots returns a robots.txt that allows everything and points
// crawlers at the sitemap.
func RenderRobots(cfg SiteConfig) []byte {
	var b bytes.Buffer
	b.WriteString("User-agent: *\nAllow: /\n\n")
	fmt.Fprintf(&b, "Sitemap: %s\n", strings.TrimSuffix(cfg.URL, "/")+AssetURL(cfg.BaseURL, cfg.Sitemap.Filename))
	return b.Bytes()
}
