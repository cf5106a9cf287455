package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/unlibra/docsite"
	"github.com/unlibra/docsite/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	Title   string
	Org     string
	Project string
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a starter site with docs, static images and docsite.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			cfg := docsite.DefaultConfig()
			f := cmd.Flags()
			if v, _ := f.GetString("title"); v != "" {
				cfg.Title = v
				cfg.Theme.Navbar.Title = v
			}
			if v := settings.GetString("url"); v != "" {
				cfg.URL = v
			}
			if v := settings.GetString("base-url"); v != "" {
				cfg.BaseURL = v
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runInit(cmd.OutOrStdout(), dir, cfg)
		},
	}
	cmd.Flags().String("title", "", "site title (default tkinter-unblur)")
	return cmd
}

func runInit(w io.Writer, dir string, cfg docsite.SiteConfig) error {
	cfgPath := filepath.Join(dir, configName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	data := scaffoldData{
		Title:   cfg.Title,
		Org:     cfg.OrganizationName,
		Project: cfg.ProjectName,
	}

	fmt.Fprintf(w, "Creating new docsite project in %s\n\n", dir)

	root := "templates"
	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		outPath := filepath.Join(dir, relPath)

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		if _, err := os.Stat(strings.TrimSuffix(outPath, ".tmpl")); err == nil {
			fmt.Fprintf(w, "  kept    %s\n", strings.TrimSuffix(outPath, ".tmpl"))
			return nil
		}

		if !strings.HasSuffix(path, ".tmpl") {
			if err := os.WriteFile(outPath, content, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(w, "  created %s\n", outPath)
			return nil
		}

		outPath = strings.TrimSuffix(outPath, ".tmpl")
		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}

		fmt.Fprintf(w, "  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	if err := docsite.WriteConfig(cfgPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(w, "  created %s\n", cfgPath)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Done! Next steps:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  docsite serve --root %s\n", dir)
	fmt.Fprintf(w, "  docsite build --root %s\n", dir)
	return nil
}
