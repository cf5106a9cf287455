package docsite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SiteConfig is the declarative site record. Field names follow the
// docusaurus.config schema so an existing site can be ported by renaming the
// file to YAML.
type SiteConfig struct {
	Title            string `yaml:"title"`
	Tagline          string `yaml:"tagline,omitempty"`
	Favicon          string `yaml:"favicon,omitempty"`
	URL              string `yaml:"url"`
	BaseURL          string `yaml:"baseUrl"`
	OrganizationName string `yaml:"organizationName,omitempty"`
	ProjectName      string `yaml:"projectName,omitempty"`

	OnBrokenLinks         string `yaml:"onBrokenLinks,omitempty"`         // throw | warn | ignore
	OnBrokenMarkdownLinks string `yaml:"onBrokenMarkdownLinks,omitempty"` // throw | warn | ignore

	I18n    I18nConfig    `yaml:"i18n"`
	Docs    DocsConfig    `yaml:"docs"`
	Blog    bool          `yaml:"blog"`
	Sitemap SitemapConfig `yaml:"sitemap"`
	Theme   ThemeConfig   `yaml:"themeConfig"`
}

type I18nConfig struct {
	DefaultLocale string   `yaml:"defaultLocale"`
	Locales       []string `yaml:"locales"`
}

type DocsConfig struct {
	Path          string `yaml:"path,omitempty"`          // source dir, relative to the site root
	RouteBasePath string `yaml:"routeBasePath,omitempty"` // "/" serves docs at the site root
	EditURL       string `yaml:"editUrl,omitempty"`
}

type SitemapConfig struct {
	Filename       string   `yaml:"filename,omitempty"`
	IgnorePatterns []string `yaml:"ignorePatterns,omitempty"`
	ChangeFreq     string   `yaml:"changefreq,omitempty"`
	Priority       float64  `yaml:"priority,omitempty"`
}

type ThemeConfig struct {
	Image     string          `yaml:"image,omitempty"` // social card, relative to the static dir
	ColorMode ColorModeConfig `yaml:"colorMode"`
	Navbar    NavbarConfig    `yaml:"navbar"`
	Footer    FooterConfig    `yaml:"footer"`
	Prism     PrismConfig     `yaml:"prism"`
}

type ColorModeConfig struct {
	DefaultMode               string `yaml:"defaultMode"`
	DisableSwitch             bool   `yaml:"disableSwitch"`
	RespectPrefersColorScheme bool   `yaml:"respectPrefersColorScheme"`
}

type NavbarConfig struct {
	Title string    `yaml:"title,omitempty"`
	Logo  Logo      `yaml:"logo,omitempty"`
	Items []NavItem `yaml:"items,omitempty"`
}

type Logo struct {
	Alt string `yaml:"alt,omitempty"`
	Src string `yaml:"src,omitempty"`
}

// NavItem is a navbar link. To is a site route, Href an external URL.
type NavItem struct {
	Label    string `yaml:"label"`
	To       string `yaml:"to,omitempty"`
	Href     string `yaml:"href,omitempty"`
	Position string `yaml:"position,omitempty"` // left | right
}

type FooterConfig struct {
	Style     string        `yaml:"style,omitempty"` // light | dark
	Links     []FooterGroup `yaml:"links,omitempty"`
	Copyright string        `yaml:"copyright,omitempty"`
}

type FooterGroup struct {
	Title string       `yaml:"title"`
	Items []FooterLink `yaml:"items"`
}

type FooterLink struct {
	Label string `yaml:"label"`
	To    string `yaml:"to,omitempty"`
	Href  string `yaml:"href,omitempty"`
}

type PrismConfig struct {
	Theme               string   `yaml:"theme,omitempty"`
	DarkTheme           string   `yaml:"darkTheme,omitempty"`
	AdditionalLanguages []string `yaml:"additionalLanguages,omitempty"`
}

const (
	PolicyThrow  = "throw"
	PolicyWarn   = "warn"
	PolicyIgnore = "ignore"
)

func (c *SiteConfig) setDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "/"
	}
	if c.OnBrokenLinks == "" {
		c.OnBrokenLinks = PolicyThrow
	}
	if c.OnBrokenMarkdownLinks == "" {
		c.OnBrokenMarkdownLinks = PolicyWarn
	}
	if c.I18n.DefaultLocale == "" {
		c.I18n.DefaultLocale = "en"
	}
	if c.Docs.Path == "" {
		c.Docs.Path = "docs"
	}
	if c.Docs.RouteBasePath == "" {
		c.Docs.RouteBasePath = "docs"
	}
	if c.Sitemap.Filename == "" {
		c.Sitemap.Filename = "sitemap.xml"
	}
	if c.Theme.ColorMode.DefaultMode == "" {
		c.Theme.ColorMode.DefaultMode = "light"
	}
	if c.Theme.Footer.Style == "" {
		c.Theme.Footer.Style = "light"
	}
	if c.Theme.Prism.Theme == "" {
		c.Theme.Prism.Theme = "github"
	}
	if c.Theme.Prism.DarkTheme == "" {
		c.Theme.Prism.DarkTheme = "dracula"
	}
	if c.Theme.Navbar.Title == "" {
		c.Theme.Navbar.Title = c.Title
	}
}

// Copyright returns the footer copyright line with {year} substituted.
func (c SiteConfig) Copyright(now time.Time) string {
	return strings.ReplaceAll(c.Theme.Footer.Copyright, "{year}", strconv.Itoa(now.Year()))
}

// LoadConfig reads a YAML site record from path on top of DefaultConfig.
// Unknown keys are rejected so typos surface at build time.
func LoadConfig(path string) (SiteConfig, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("docsite: read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return SiteConfig{}, fmt.Errorf("docsite: parse config %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

// WriteConfig marshals cfg as YAML to path.
func WriteConfig(path string, cfg SiteConfig) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("docsite: encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("docsite: encode config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
