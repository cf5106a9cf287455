package docsite

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefaultFeatures(t *testing.T) {
	features := DefaultFeatures()
	if len(features) != 3 {
		t.Fatalf("expected exactly 3 features, got %d", len(features))
	}
	want := []string{"Crystal Clear UI", "Drop-in Replacement", "Cross Platform"}
	for i, f := range features {
		if f.Title != want[i] {
			t.Errorf("feature %d title = %q, want %q", i, f.Title, want[i])
		}
		if strings.TrimSpace(f.Description) == "" {
			t.Errorf("feature %q has no description", f.Title)
		}
		if !strings.HasPrefix(f.Icon, "img/") || !strings.HasSuffix(f.Icon, ".svg") {
			t.Errorf("feature %q icon %q is not a static svg", f.Title, f.Icon)
		}
	}
	if !strings.Contains(features[1].Description, "`tkinter.Tk`") || !strings.Contains(features[1].Description, "`tkinter_unblur.Tk`") {
		t.Errorf("drop-in description should mark both class names as code: %q", features[1].Description)
	}
}

func TestDefaultFeaturesReturnsCopy(t *testing.T) {
	features := DefaultFeatures()
	features[0].Title = "changed"
	if DefaultFeatures()[0].Title != "Crystal Clear UI" {
		t.Fatal("mutating the returned slice changed the fixed list")
	}
}

func TestValidateFeatures(t *testing.T) {
	static := fstest.MapFS{
		"img/undraw_docusaurus_mountain.svg": {Data: []byte("<svg/>")},
		"img/undraw_docusaurus_tree.svg":     {Data: []byte("<svg/>")},
		"img/undraw_docusaurus_react.svg":    {Data: []byte("<svg/>")},
	}
	if err := ValidateFeatures(DefaultFeatures(), static); err != nil {
		t.Fatalf("ValidateFeatures: %v", err)
	}

	delete(static, "img/undraw_docusaurus_react.svg")
	err := ValidateFeatures(DefaultFeatures(), static)
	if !errors.Is(err, ErrIconNotFound) {
		t.Fatalf("expected ErrIconNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "Cross Platform") {
		t.Errorf("error should name the feature: %v", err)
	}

	static["img/undraw_docusaurus_react.svg"] = &fstest.MapFile{Data: []byte("<svg/>")}
	noTitle := DefaultFeatures()
	noTitle[1].Title = ""
	if err := ValidateFeatures(noTitle, static); !errors.Is(err, ErrInvalidFeatures) {
		t.Errorf("expected ErrInvalidFeatures for empty title, got %v", err)
	}
	noDesc := DefaultFeatures()
	noDesc[2].Description = " "
	if err := ValidateFeatures(noDesc, static); !errors.Is(err, ErrInvalidFeatures) {
		t.Errorf("expected ErrInvalidFeatures for empty description, got %v", err)
	}
}

func TestValidateFeaturesCount(t *testing.T) {
	static := fstest.MapFS{"img/logo.svg": {Data: []byte("<svg/>")}}
	card := Feature{Title: "Card", Icon: "img/logo.svg", Description: "Text."}

	tests := []struct {
		name     string
		features []Feature
		wantErr  bool
	}{
		{"nil", nil, true},
		{"one", []Feature{card}, true},
		{"two", []Feature{card, card}, true},
		{"three", []Feature{card, card, card}, false},
		{"four", []Feature{card, card, card, card}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFeatures(tt.features, static)
			if tt.wantErr && !errors.Is(err, ErrInvalidFeatures) {
				t.Fatalf("expected ErrInvalidFeatures, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ValidateFeatures: %v", err)
			}
		})
	}
}
