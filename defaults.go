package docsite

// DefaultConfig returns the tkinter-unblur site record.
func DefaultConfig() SiteConfig {
	return SiteConfig{
		Title:            "tkinter-unblur",
		Tagline:          "Fix blurry Tkinter applications on Windows 10/11 high-DPI displays",
		Favicon:          "img/logo.svg",
		URL:              "https://unlibra.github.io",
		BaseURL:          "/tkinter-unblur/",
		OrganizationName: "unlibra",
		ProjectName:      "tkinter-unblur",

		OnBrokenLinks:         PolicyThrow,
		OnBrokenMarkdownLinks: PolicyWarn,

		I18n: I18nConfig{
			DefaultLocale: "en",
			Locales:       []string{"en"},
		},
		Docs: DocsConfig{
			Path:          "docs",
			RouteBasePath: "/",
			EditURL:       "https://github.com/unlibra/tkinter-unblur/tree/main/docs/",
		},
		Blog: false,
		Sitemap: SitemapConfig{
			Filename:       "sitemap.xml",
			IgnorePatterns: []string{"/tags/**"},
		},
		Theme: ThemeConfig{
			Image: "img/social-card.jpg",
			ColorMode: ColorModeConfig{
				DefaultMode:               "dark",
				DisableSwitch:             false,
				RespectPrefersColorScheme: true,
			},
			Navbar: NavbarConfig{
				Title: "tkinter-unblur",
				Logo: Logo{
					Alt: "tkinter-unblur Logo",
					Src: "img/logo.svg",
				},
				Items: []NavItem{
					{Href: "https://pypi.org/project/tkinter-unblur/", Label: "PyPI", Position: "right"},
					{Href: "https://github.com/unlibra/tkinter-unblur", Label: "GitHub", Position: "right"},
				},
			},
			Footer: FooterConfig{
				Style: "dark",
				Links: []FooterGroup{
					{
						Title: "Docs",
						Items: []FooterLink{
							{Label: "Introduction", To: "/"},
							{Label: "API Reference", To: "/api"},
						},
					},
					{
						Title: "Community",
						Items: []FooterLink{
							{Label: "GitHub Issues", Href: "https://github.com/unlibra/tkinter-unblur/issues"},
						},
					},
					{
						Title: "More",
						Items: []FooterLink{
							{Label: "GitHub", Href: "https://github.com/unlibra/tkinter-unblur"},
						},
					},
				},
				Copyright: "Copyright © {year} unlibra. Built with docsite.",
			},
			Prism: PrismConfig{
				Theme:               "github",
				DarkTheme:           "dracula",
				AdditionalLanguages: []string{"python"},
			},
		},
	}
}
