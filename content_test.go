package docsite

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadDocs(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/intro.md": {Data: []byte("---\nid: intro\ntitle: Introduction\ndescription: Start here.\nsidebar_position: 1\n---\n# Introduction\n\nHello.\n")},
		"docs/api.md":   {Data: []byte("---\nsidebar_label: API\nsidebar_position: 2\n---\n\n# API Reference\n")},
		"docs/getting-started.md": {Data: []byte("Just text.\n")},
		"docs/guides/setup.md":    {Data: []byte("---\nid: install\nslug: setup-guide\n---\n## Steps\n")},
		"docs/notes.txt":          {Data: []byte("ignored")},
	}
	docs, err := LoadDocs(fsys, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadDocs: %v", err)
	}

	want := []struct {
		id, title, label, route string
		hasTitle                bool
	}{
		{"intro", "Introduction", "Introduction", "/tkinter-unblur/intro/", true},
		{"api", "API Reference", "API", "/tkinter-unblur/api/", true},
		{"getting-started", "Getting Started", "Getting Started", "/tkinter-unblur/getting-started/", false},
		{"guides/install", "Setup", "Setup", "/tkinter-unblur/setup-guide/", false},
	}
	if len(docs) != len(want) {
		t.Fatalf("expected %d docs, got %d", len(want), len(docs))
	}
	for i, w := range want {
		d := docs[i]
		if d.ID != w.id || d.Title != w.title || d.Label() != w.label || d.Route != w.route || d.HasTitle != w.hasTitle {
			t.Errorf("doc %d = {%q %q %q %q %v}, want %+v", i, d.ID, d.Title, d.Label(), d.Route, d.HasTitle, w)
		}
	}

	intro := docs[0]
	if intro.Description != "Start here." {
		t.Errorf("description = %q", intro.Description)
	}
	if intro.EditURL != "https://github.com/unlibra/tkinter-unblur/tree/main/docs/docs/intro.md" {
		t.Errorf("edit url = %q", intro.EditURL)
	}
	if intro.SourcePath != "docs/intro.md" {
		t.Errorf("source path = %q", intro.SourcePath)
	}
	if strings.Contains(intro.Body, "sidebar_position") || !strings.Contains(intro.Body, "Hello.") {
		t.Errorf("front matter not stripped: %q", intro.Body)
	}
}

func TestLoadDocsRouteBasePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Docs.RouteBasePath = "docs"
	cfg.Docs.EditURL = ""
	fsys := fstest.MapFS{"docs/intro.md": {Data: []byte("# Intro\n")}}

	docs, err := LoadDocs(fsys, cfg)
	if err != nil {
		t.Fatalf("LoadDocs: %v", err)
	}
	if docs[0].Route != "/tkinter-unblur/docs/intro/" {
		t.Errorf("route = %q", docs[0].Route)
	}
	if docs[0].EditURL != "" {
		t.Errorf("edit url should be empty without editUrl, got %q", docs[0].EditURL)
	}
}

func TestLoadDocsSlugifiesFileNames(t *testing.T) {
	fsys := fstest.MapFS{"docs/Release Notes.md": {Data: []byte("# Release notes\n")}}

	docs, err := LoadDocs(fsys, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadDocs: %v", err)
	}
	if docs[0].ID != "Release Notes" {
		t.Errorf("id = %q", docs[0].ID)
	}
	if docs[0].Route != "/tkinter-unblur/release-notes/" {
		t.Errorf("route = %q", docs[0].Route)
	}
}

func TestLoadDocsDuplicateRoute(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/a.md": {Data: []byte("---\nslug: same\n---\n# A\n")},
		"docs/b.md": {Data: []byte("---\nslug: same\n---\n# B\n")},
	}
	if _, err := LoadDocs(fsys, DefaultConfig()); !errors.Is(err, ErrDuplicateRoute) {
		t.Fatalf("expected ErrDuplicateRoute, got %v", err)
	}
}

func TestLoadDocsMissingDir(t *testing.T) {
	if _, err := LoadDocs(fstest.MapFS{}, DefaultConfig()); err == nil {
		t.Fatal("expected error for missing docs directory")
	}
}

func TestLoadDocsBadFrontMatter(t *testing.T) {
	fsys := fstest.MapFS{"docs/bad.md": {Data: []byte("---\nsidebar_position: [\n---\n# Bad\n")}}
	if _, err := LoadDocs(fsys, DefaultConfig()); err == nil {
		t.Fatal("expected error for malformed front matter")
	}
}

func TestFirstHeading(t *testing.T) {
	tests := []struct {
		body, want string
	}{
		{"# Title\n\ntext", "Title"},
		{"\n\n#  Spaced  \n", "Spaced"},
		{"text first\n# Later", ""},
		{"## Sub\n", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := firstHeading([]byte(tt.body)); got != tt.want {
			t.Errorf("firstHeading(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}
