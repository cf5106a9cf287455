package docsite

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestRenderSitemap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sitemap.ChangeFreq = "weekly"
	cfg.Sitemap.Priority = 0.5

	data, err := RenderSitemap(cfg, []string{
		"/tkinter-unblur/",
		"/tkinter-unblur/intro/",
		"/tkinter-unblur/tags/python/",
	})
	if err != nil {
		t.Fatalf("RenderSitemap: %v", err)
	}
	if !strings.HasPrefix(string(data), xml.Header) {
		t.Error("missing xml header")
	}

	var set sitemapURLSet
	if err := xml.Unmarshal(data, &set); err != nil {
		t.Fatalf("sitemap is not valid xml: %v", err)
	}
	if set.XMLNS != "http://www.sitemaps.org/schemas/sitemap/0.9" {
		t.Errorf("xmlns = %q", set.XMLNS)
	}
	var locs []string
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
		if u.ChangeFreq != "weekly" || u.Priority != "0.5" {
			t.Errorf("%s: changefreq=%q priority=%q", u.Loc, u.ChangeFreq, u.Priority)
		}
	}
	want := []string{
		"https://unlibra.github.io/tkinter-unblur/",
		"https://unlibra.github.io/tkinter-unblur/intro/",
	}
	if strings.Join(locs, " ") != strings.Join(want, " ") {
		t.Fatalf("locs = %v, want %v", locs, want)
	}
}

func TestRenderSitemapOmitsEmptyFields(t *testing.T) {
	data, err := RenderSitemap(DefaultConfig(), []string{"/tkinter-unblur/"})
	if err != nil {
		t.Fatalf("RenderSitemap: %v", err)
	}
	if strings.Contains(string(data), "changefreq") || strings.Contains(string(data), "priority") {
		t.Errorf("unset fields should be omitted: %s", data)
	}
}

func TestRenderSitemapPriority(t *testing.T) {
	tests := []struct {
		priority float64
		want     string
	}{
		{0.75, "<priority>0.75</priority>"},
		{1, "<priority>1</priority>"},
		{0.3, "<priority>0.3</priority>"},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Sitemap.Priority = tt.priority
		data, err := RenderSitemap(cfg, []string{"/tkinter-unblur/"})
		if err != nil {
			t.Fatalf("RenderSitemap: %v", err)
		}
		if !strings.Contains(string(data), tt.want) {
			t.Errorf("priority %v: want %s in %s", tt.priority, tt.want, data)
		}
	}
}

func TestRenderSitemapBadPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sitemap.IgnorePatterns = []string{"/[unclosed"}
	if _, err := RenderSitemap(cfg, []string{"/tkinter-unblur/intro/"}); err == nil {
		t.Fatal("expected error for malformed ignore pattern")
	}
}

func TestRenderRobots(t *testing.T) {
	got := string(RenderRobots(DefaultConfig()))
	want := "User-agent: *\nAllow: /\n\nSitemap: https://unlibra.github.io/tkinter-unblur/sitemap.xml\n"
	if got != want {
		t.Fatalf("RenderRobots = %q, want %q", got, want)
	}
}
