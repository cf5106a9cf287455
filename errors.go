package docsite

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidConfig   = errors.New("docsite: invalid config")
	ErrIconNotFound    = errors.New("docsite: feature icon not found")
	ErrInvalidFeatures = errors.New("docsite: invalid feature list")
	ErrBrokenLinks     = errors.New("docsite: broken links")
	ErrDuplicateRoute  = errors.New("docsite: duplicate route")
	// ErrNotFound is returned when no output exists for a requested path.
	ErrNotFound = errors.New("docsite: not found")
)

// ConfigError lists every problem found by SiteConfig.Validate.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("docsite: invalid config: %s", strings.Join(e.Problems, "; "))
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// BrokenLink is an internal link that does not resolve to a generated file.
type BrokenLink struct {
	Page   string // output path of the page holding the link
	Target string
}

// BrokenLinksError is returned by a build when onBrokenLinks (or
// onBrokenMarkdownLinks) is "throw" and at least one link does not resolve.
type BrokenLinksError struct {
	Kind  string // "link" or "markdown link"
	Links []BrokenLink
}

func (e *BrokenLinksError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "docsite: %d broken %s(s):", len(e.Links), e.Kind)
	for _, l := range e.Links {
		fmt.Fprintf(&b, "\n  - %s -> %s", l.Page, l.Target)
	}
	return b.String()
}

func (e *BrokenLinksError) Unwrap() error { return ErrBrokenLinks }
