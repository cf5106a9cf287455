package docsite

import (
	"fmt"
	"io/fs"
	"strings"
)

var featureList = [...]Feature{
	{
		Title:       "Crystal Clear UI",
		Icon:        "img/undraw_docusaurus_mountain.svg",
		Description: "Automatically fixes blurry text and pixelated graphics on Windows 10/11 high-DPI displays by enabling system DPI awareness.",
	},
	{
		Title:       "Drop-in Replacement",
		Icon:        "img/undraw_docusaurus_tree.svg",
		Description: "Zero configuration required. Just replace `tkinter.Tk` with `tkinter_unblur.Tk` and you are good to go.",
	},
	{
		Title:       "Cross Platform",
		Icon:        "img/undraw_docusaurus_react.svg",
		Description: "Works seamlessly across platforms. On Linux and macOS, it acts as a passthrough to the standard Tkinter implementation.",
	},
}

// FeatureCount is the number of cards the homepage feature row holds.
const FeatureCount = len(featureList)

// DefaultFeatures returns a copy of the fixed homepage feature list.
func DefaultFeatures() []Feature {
	out := make([]Feature, len(featureList))
	copy(out, featureList[:])
	return out
}

// ValidateFeatures checks there are exactly FeatureCount features, that every
// feature has text, and that its icon exists in the static tree.
func ValidateFeatures(features []Feature, static fs.FS) error {
	if len(features) != FeatureCount {
		return fmt.Errorf("%w: got %d features, want %d", ErrInvalidFeatures, len(features), FeatureCount)
	}
	for i, f := range features {
		if strings.TrimSpace(f.Title) == "" {
			return fmt.Errorf("%w: feature %d has no title", ErrInvalidFeatures, i)
		}
		if strings.TrimSpace(f.Description) == "" {
			return fmt.Errorf("%w: feature %q has no description", ErrInvalidFeatures, f.Title)
		}
		if _, err := fs.Stat(static, f.Icon); err != nil {
			return fmt.Errorf("%w: %q (feature %q)", ErrIconNotFound, f.Icon, f.Title)
		}
	}
	return nil
}
