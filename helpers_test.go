package docsite

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Getting Started", "getting-started"},
		{"  API  Reference ", "api-reference"},
		{"scale_value()", "scale-value"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinRoute(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"/tkinter-unblur/", nil, "/tkinter-unblur/"},
		{"/tkinter-unblur/", []string{"/", "api"}, "/tkinter-unblur/api/"},
		{"/tkinter-unblur/", []string{"docs", "guides/setup"}, "/tkinter-unblur/docs/guides/setup/"},
		{"/", []string{"/api"}, "/api/"},
		{"/", nil, "/"},
	}
	for _, tt := range tests {
		if got := JoinRoute(tt.base, tt.segments...); got != tt.want {
			t.Errorf("JoinRoute(%q, %q) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestAssetURL(t *testing.T) {
	if got := AssetURL("/tkinter-unblur/", "img/logo.svg"); got != "/tkinter-unblur/img/logo.svg" {
		t.Errorf("AssetURL = %q", got)
	}
	if got := AssetURL("/tkinter-unblur/", "https://cdn.example.com/x.png"); got != "https://cdn.example.com/x.png" {
		t.Errorf("external asset rewritten: %q", got)
	}
}

func TestBuildURL(t *testing.T) {
	if got := BuildURL("https://unlibra.github.io", "/tkinter-unblur/api/"); got != "https://unlibra.github.io/tkinter-unblur/api/" {
		t.Errorf("BuildURL = %q", got)
	}
	if got := BuildURL("https://unlibra.github.io"); got != "https://unlibra.github.io" {
		t.Errorf("BuildURL without segments = %q", got)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		route string
		want  string
		ok    bool
	}{
		{"/base/", "index.html", true},
		{"/base", "index.html", true},
		{"/base/api/", "api/index.html", true},
		{"/base/api", "api/index.html", true},
		{"/base/api/#tk", "api/index.html", true},
		{"/base/sitemap.xml?x=1", "sitemap.xml", true},
		{"/base/img/logo.svg", "img/logo.svg", true},
		{"/other/", "", false},
	}
	for _, tt := range tests {
		got, ok := outputPath("/base/", tt.route)
		if got != tt.want || ok != tt.ok {
			t.Errorf("outputPath(%q) = %q, %v; want %q, %v", tt.route, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsExternal(t *testing.T) {
	for link, want := range map[string]bool{
		"https://github.com":  true,
		"//cdn.example.com/x": true,
		"mailto:a@b.c":        true,
		"/tkinter-unblur/":    false,
		"img/logo.svg":        false,
		"#top":                false,
	} {
		if got := isExternal(link); got != want {
			t.Errorf("isExternal(%q) = %v, want %v", link, got, want)
		}
	}
}

func TestJsonLD(t *testing.T) {
	cfg := DefaultConfig()
	site := WebsiteJsonLD(cfg)
	for _, want := range []string{`"@type":"WebSite"`, `"url":"https://unlibra.github.io/tkinter-unblur/"`, `"name":"unlibra"`} {
		if !strings.Contains(site, want) {
			t.Errorf("WebsiteJsonLD missing %s: %s", want, site)
		}
	}
	doc := Doc{Title: "API Reference", Route: "/tkinter-unblur/api/"}
	article := TechArticleJsonLD(doc, cfg)
	for _, want := range []string{`"@type":"TechArticle"`, `"headline":"API Reference"`, `"inLanguage":"en"`} {
		if !strings.Contains(article, want) {
			t.Errorf("TechArticleJsonLD missing %s: %s", want, article)
		}
	}
}
