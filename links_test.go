package docsite

import (
	"reflect"
	"testing"
)

func TestCheckLinks(t *testing.T) {
	files := map[string][]byte{
		"index.html": []byte(`<html><head>
<link rel="stylesheet" href="/base/assets/css/styles.css">
<link rel="canonical" href="https://example.com/base/">
</head><body>
<a href="/base/intro/">intro</a>
<a href="intro/#setup">relative</a>
<a href="#top">fragment</a>
<a href="mailto:someone@example.com">mail</a>
<a href="https://github.com/">external</a>
<img src="img/logo.svg">
<img src="data:image/png;base64,AAAA">
<a href="/base/missing/">missing</a>
<a href="/other/">outside</a>
<script src="/base/assets/js/missing.js"></script>
</body></html>`),
		"intro/index.html": []byte(`<a href="../">home</a><a href="../intro">no slash</a><a href="../sitemap.xml">map</a>`),
		"assets/css/styles.css": []byte("body{}"),
		"img/logo.svg":          []byte("<svg></svg>"),
		"sitemap.xml":           []byte("<urlset/>"),
	}

	got := CheckLinks("/base/", files)
	want := []BrokenLink{
		{Page: "index.html", Target: "/base/missing/"},
		{Page: "index.html", Target: "/other/"},
		{Page: "index.html", Target: "/base/assets/js/missing.js"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CheckLinks = %+v, want %+v", got, want)
	}
}

func TestCheckLinksReportsOncePerPage(t *testing.T) {
	files := map[string][]byte{
		"index.html": []byte(`<a href="/gone/">a</a><a href="/gone/">b</a>`),
	}
	if got := CheckLinks("/", files); len(got) != 1 {
		t.Fatalf("expected one broken link, got %+v", got)
	}
}

func TestPageRoute(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"index.html", "/base/"},
		{"intro/index.html", "/base/intro/"},
		{"guides/setup/index.html", "/base/guides/setup/"},
		{"404.html", "/base/404.html"},
	}
	for _, tt := range tests {
		if got := pageRoute("/base/", tt.file); got != tt.want {
			t.Errorf("pageRoute(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}
