package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unlibra/docsite"
	"github.com/unlibra/docsite/views"
)

// version is set at build time via ldflags.
var version = "dev"

const configName = "docsite.yaml"

// settings holds CLI values resolved from flags, DOCSITE_* environment
// variables and defaults, in that order.
var settings = viper.New()

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "docsite",
		Short: "docsite - a static documentation site generator built with Go, goldmark and templ",
		Long: `docsite renders a docs directory and a homepage into a static site that can be
deployed to any static host, such as GitHub Pages.

Examples:
  docsite init mysite
  docsite build --root mysite
  docsite serve --root mysite`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("root", ".", "site root holding docsite.yaml, docs/ and static/")
	pf.String("config", "", "config file (default <root>/docsite.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error or off")
	pf.String("url", "", "override the site url, e.g. for preview deployments")
	pf.String("base-url", "", "override the site baseUrl")
	_ = settings.BindPFlags(pf)

	settings.SetEnvPrefix("DOCSITE")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	root.AddCommand(newBuildCmd(), newServeCmd(), newInitCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docsite version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docsite %s\n", version)
		},
	}
}

func newLogger() *log.Logger {
	l := log.New("docsite")
	l.SetHeader("${time_rfc3339} ${level} ${prefix}")
	switch strings.ToLower(settings.GetString("log-level")) {
	case "debug":
		l.SetLevel(log.DEBUG)
	case "warn":
		l.SetLevel(log.WARN)
	case "error":
		l.SetLevel(log.ERROR)
	case "off":
		l.SetLevel(log.OFF)
	default:
		l.SetLevel(log.INFO)
	}
	return l
}

// loadConfig reads the site config, falling back to the built-in defaults
// when no file exists at the default location.
func loadConfig(logger *log.Logger) (docsite.SiteConfig, error) {
	path := settings.GetString("config")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(settings.GetString("root"), configName)
	}

	var cfg docsite.SiteConfig
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !explicit {
		logger.Infof("no %s found, using built-in defaults", path)
		cfg = docsite.DefaultConfig()
	} else {
		c, err := docsite.LoadConfig(path)
		if err != nil {
			return docsite.SiteConfig{}, err
		}
		logger.Debugf("using config file %s", path)
		cfg = c
	}

	if u := settings.GetString("url"); u != "" {
		cfg.URL = u
	}
	if b := settings.GetString("base-url"); b != "" {
		cfg.BaseURL = b
	}
	return cfg, cfg.Validate()
}

func newBuilder(logger *log.Logger, opts ...docsite.BuilderOption) (*docsite.Builder, error) {
	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, err
	}
	root := settings.GetString("root")
	opts = append([]docsite.BuilderOption{docsite.WithLogger(logger)}, opts...)
	return docsite.NewBuilder(cfg, views.Funcs(), os.DirFS(root), opts...), nil
}
