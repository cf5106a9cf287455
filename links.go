package docsite

import (
	"bytes"
	"net/url"
	"path"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"source": "src",
}

// CheckLinks scans every HTML output for internal links and returns the ones
// that do not resolve to another output. Links outside baseURL count as
// broken because they cannot be served by the deployed site.
func CheckLinks(baseURL string, files map[string][]byte) []BrokenLink {
	pages := make([]string, 0, len(files))
	for p := range files {
		if strings.HasSuffix(p, ".html") {
			pages = append(pages, p)
		}
	}
	sort.Strings(pages)

	var broken []BrokenLink
	for _, page := range pages {
		pageURL := &url.URL{Path: pageRoute(baseURL, page)}
		seen := make(map[string]bool)
		for _, link := range extractLinks(files[page]) {
			if seen[link] || !isInternalLink(link) {
				continue
			}
			seen[link] = true
			ref, err := url.Parse(link)
			if err != nil {
				broken = append(broken, BrokenLink{Page: page, Target: link})
				continue
			}
			target := pageURL.ResolveReference(ref)
			p, ok := outputPath(baseURL, target.Path)
			if !ok {
				broken = append(broken, BrokenLink{Page: page, Target: link})
				continue
			}
			if _, ok := files[p]; !ok {
				broken = append(broken, BrokenLink{Page: page, Target: link})
			}
		}
	}
	return broken
}

// pageRoute is the URL path an output file is served from.
func pageRoute(baseURL, file string) string {
	if file == "index.html" {
		return JoinRoute(baseURL)
	}
	if strings.HasSuffix(file, "/index.html") {
		return JoinRoute(baseURL, strings.TrimSuffix(file, "index.html"))
	}
	return path.Join(JoinRoute(baseURL), file)
}

func isInternalLink(link string) bool {
	if link == "" || strings.HasPrefix(link, "#") {
		return false
	}
	if isExternal(link) {
		return false
	}
	return !strings.HasPrefix(link, "data:")
}

func extractLinks(doc []byte) []string {
	var links []string
	z := html.NewTokenizer(bytes.NewReader(doc))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return links
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			want, ok := linkAttrs[string(name)]
			if !ok {
				continue
			}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == want {
					links = append(links, string(val))
				}
			}
		}
	}
}
