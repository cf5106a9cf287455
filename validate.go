package docsite

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
)

// Validate checks the fields the generator needs. All problems are reported
// at once in a *ConfigError.
func (c SiteConfig) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(c.Title) == "" {
		add("title is required")
	}
	if c.URL == "" {
		add("url is required")
	} else if u, err := url.Parse(c.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		add("url %q must be an absolute http(s) URL", c.URL)
	} else if u.Path != "" && u.Path != "/" {
		add("url %q must not contain a path, use baseUrl", c.URL)
	}
	if c.BaseURL == "" {
		add("baseUrl is required")
	} else if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		add("baseUrl %q must start and end with /", c.BaseURL)
	}

	if len(c.I18n.Locales) == 0 {
		add("i18n.locales must not be empty")
	} else if !slices.Contains(c.I18n.Locales, c.I18n.DefaultLocale) {
		add("i18n.defaultLocale %q is not in i18n.locales", c.I18n.DefaultLocale)
	}

	if !validPolicy(c.OnBrokenLinks) {
		add("onBrokenLinks %q must be one of throw, warn, ignore", c.OnBrokenLinks)
	}
	if !validPolicy(c.OnBrokenMarkdownLinks) {
		add("onBrokenMarkdownLinks %q must be one of throw, warn, ignore", c.OnBrokenMarkdownLinks)
	}
	if c.Blog {
		add("blog is not supported")
	}

	switch c.Theme.ColorMode.DefaultMode {
	case "light", "dark":
	default:
		add("themeConfig.colorMode.defaultMode %q must be light or dark", c.Theme.ColorMode.DefaultMode)
	}
	for _, name := range []string{c.Theme.Prism.Theme, c.Theme.Prism.DarkTheme} {
		if _, ok := styles.Registry[strings.ToLower(name)]; !ok {
			add("themeConfig.prism theme %q is unknown", name)
		}
	}

	for i, item := range c.Theme.Navbar.Items {
		if item.Label == "" {
			add("themeConfig.navbar.items[%d] has no label", i)
		}
		if item.To == "" && item.Href == "" {
			add("themeConfig.navbar.items[%d] (%s) needs to or href", i, item.Label)
		}
	}
	for i, group := range c.Theme.Footer.Links {
		for j, item := range group.Items {
			if item.To == "" && item.Href == "" {
				add("themeConfig.footer.links[%d].items[%d] (%s) needs to or href", i, j, item.Label)
			}
		}
	}
	for i, p := range c.Sitemap.IgnorePatterns {
		if !strings.HasPrefix(p, "/") {
			add("sitemap.ignorePatterns[%d] %q must start with /", i, p)
		}
	}
	if c.Sitemap.Priority < 0 || c.Sitemap.Priority > 1 {
		add("sitemap.priority %v must be between 0 and 1", c.Sitemap.Priority)
	}

	if len(problems) > 0 {
		return &ConfigError{Problems: problems}
	}
	return nil
}

func validPolicy(p string) bool {
	switch p {
	case PolicyThrow, PolicyWarn, PolicyIgnore:
		return true
	}
	return false
}
