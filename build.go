package docsite

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/unlibra/docsite/markdown"
)

const (
	staticDir = "static"
	storeDir  = ".docsite"
	storeFile = "build.db"

	syntaxLightCSS = "assets/css/syntax-light.css"
	syntaxDarkCSS  = "assets/css/syntax-dark.css"
)

// Output is a complete in-memory render of the site, keyed by slash-separated
// path relative to the output root.
type Output struct {
	Files    map[string][]byte
	Warnings []string
}

// Paths returns the output paths in sorted order.
func (o *Output) Paths() []string {
	paths := make([]string, 0, len(o.Files))
	for p := range o.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// BuildReport summarizes a Build call.
type BuildReport struct {
	Written  int
	Skipped  int
	Removed  int
	Warnings []string
	Duration time.Duration
}

// Builder renders a site from a source tree holding the docs directory and
// a static/ directory.
type Builder struct {
	cfg      SiteConfig
	views    ViewFuncs
	source   fs.FS
	features []Feature
	logger   Logger
	now      func() time.Time
	md       *markdown.Renderer
	clean    bool
	dbPath   string
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used for warnings and progress.
func WithLogger(l Logger) BuilderOption {
	return func(b *Builder) { b.logger = l }
}

// WithClock overrides the time source, which sets the copyright year.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = now }
}

// WithFeatures replaces the homepage feature list. Render rejects a list that
// does not hold exactly FeatureCount entries.
func WithFeatures(features []Feature) BuilderOption {
	return func(b *Builder) { b.features = features }
}

// WithClean makes Build wipe the output directory and build store first.
func WithClean() BuilderOption {
	return func(b *Builder) { b.clean = true }
}

// WithStorePath sets the SQLite build store location. The default is
// ".docsite/build.db" next to the output directory.
func WithStorePath(p string) BuilderOption {
	return func(b *Builder) { b.dbPath = p }
}

// NewBuilder creates a Builder. source is usually os.DirFS(siteRoot).
func NewBuilder(cfg SiteConfig, views ViewFuncs, source fs.FS, opts ...BuilderOption) *Builder {
	cfg.setDefaults()
	b := &Builder{
		cfg:      cfg,
		views:    views,
		source:   source,
		features: DefaultFeatures(),
		logger:   log.New("docsite"),
		now:      time.Now,
		md:       markdown.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Config returns the effective site configuration.
func (b *Builder) Config() SiteConfig {
	return b.cfg
}

// Render produces every output file in memory.
func (b *Builder) Render(ctx context.Context) (*Output, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := b.views.validate(); err != nil {
		return nil, err
	}

	static, err := b.staticFS()
	if err != nil {
		return nil, err
	}
	if err := ValidateFeatures(b.features, static); err != nil {
		return nil, err
	}

	out := &Output{Files: make(map[string][]byte)}

	docs, err := LoadDocs(b.source, b.cfg)
	if err != nil {
		return nil, err
	}
	if err := b.renderMarkdown(docs, out); err != nil {
		return nil, err
	}

	icons := make(map[string]string, len(b.features))
	for _, f := range b.features {
		svg, err := fs.ReadFile(static, f.Icon)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrIconNotFound, f.Icon, err)
		}
		icons[f.Icon] = string(svg)
	}
	site := NewSite(b.cfg, docs, b.features, b.now(), icons)

	if err := b.renderPages(ctx, site, out); err != nil {
		return nil, err
	}
	if err := b.copyStatic(static, out); err != nil {
		return nil, err
	}
	if b.views.Assets != nil {
		if err := copyTree(b.views.Assets, ".", out); err != nil {
			return nil, fmt.Errorf("docsite: copy view assets: %w", err)
		}
	}
	if err := b.renderSyntaxCSS(out); err != nil {
		return nil, err
	}
	if img := b.cfg.Theme.Image; img != "" && !isExternal(img) {
		if _, ok := out.Files[img]; !ok {
			card, err := SocialCard(b.cfg.Title, b.cfg.Tagline, path.Ext(img))
			if err != nil {
				return nil, err
			}
			out.Files[img] = card
		}
	}

	routes := []string{JoinRoute(b.cfg.BaseURL)}
	for _, d := range docs {
		routes = append(routes, d.Route)
	}
	sitemap, err := RenderSitemap(b.cfg, routes)
	if err != nil {
		return nil, err
	}
	out.Files[b.cfg.Sitemap.Filename] = sitemap
	if _, ok := out.Files["robots.txt"]; !ok {
		out.Files["robots.txt"] = RenderRobots(b.cfg)
	}

	if err := b.applyPolicy("link", b.cfg.OnBrokenLinks, CheckLinks(b.cfg.BaseURL, out.Files), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Builder) staticFS() (fs.FS, error) {
	if _, err := fs.Stat(b.source, staticDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return emptyFS{}, nil
		}
		return nil, fmt.Errorf("docsite: static directory: %w", err)
	}
	return fs.Sub(b.source, staticDir)
}

func (b *Builder) renderMarkdown(docs []Doc, out *Output) error {
	bySource := make(map[string]Doc, len(docs))
	for _, d := range docs {
		bySource[d.SourcePath] = d
	}

	var broken []BrokenLink
	for i := range docs {
		doc := &docs[i]
		resolve := func(dest string) (string, bool) {
			target, fragment, _ := strings.Cut(dest, "#")
			target = path.Join(path.Dir(doc.SourcePath), target)
			d, ok := bySource[target]
			if !ok {
				return "", false
			}
			if fragment != "" {
				return d.Route + "#" + fragment, true
			}
			return d.Route, true
		}
		res, err := b.md.Render(doc.Body, resolve)
		if err != nil {
			return fmt.Errorf("docsite: render %s: %w", doc.SourcePath, err)
		}
		doc.HTML = res.HTML
		doc.TOC = res.Headings
		for _, dest := range res.Unresolved {
			broken = append(broken, BrokenLink{Page: doc.SourcePath, Target: dest})
		}
	}
	return b.applyPolicy("markdown link", b.cfg.OnBrokenMarkdownLinks, broken, out)
}

func (b *Builder) applyPolicy(kind, policy string, broken []BrokenLink, out *Output) error {
	if len(broken) == 0 || policy == PolicyIgnore {
		return nil
	}
	if policy == PolicyThrow {
		return &BrokenLinksError{Kind: kind, Links: broken}
	}
	for _, l := range broken {
		msg := fmt.Sprintf("broken %s in %s: %s", kind, l.Page, l.Target)
		b.logger.Warnf("%s", msg)
		out.Warnings = append(out.Warnings, msg)
	}
	return nil
}

func (b *Builder) renderPages(ctx context.Context, site *Site, out *Output) error {
	home, err := RenderBytes(ctx, b.views.Home(site))
	if err != nil {
		return fmt.Errorf("docsite: render home: %w", err)
	}
	out.Files["index.html"] = home

	for _, doc := range site.Docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, ok := outputPath(b.cfg.BaseURL, doc.Route)
		if !ok {
			return fmt.Errorf("docsite: route %s is outside baseUrl %s", doc.Route, b.cfg.BaseURL)
		}
		if _, exists := out.Files[p]; exists {
			return fmt.Errorf("%w: %s (%s) collides with another page", ErrDuplicateRoute, doc.Route, doc.SourcePath)
		}
		page, err := RenderBytes(ctx, b.views.Doc(site, doc))
		if err != nil {
			return fmt.Errorf("docsite: render %s: %w", doc.SourcePath, err)
		}
		out.Files[p] = page
	}

	notFound, err := RenderBytes(ctx, b.views.NotFound(site))
	if err != nil {
		return fmt.Errorf("docsite: render 404: %w", err)
	}
	out.Files["404.html"] = notFound
	return nil
}

func (b *Builder) copyStatic(static fs.FS, out *Output) error {
	if _, ok := static.(emptyFS); ok {
		return nil
	}
	return fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, exists := out.Files[p]; exists {
			b.logger.Warnf("static %s collides with a generated page, skipped", p)
			return nil
		}
		data, err := fs.ReadFile(static, p)
		if err != nil {
			return fmt.Errorf("docsite: read static %s: %w", p, err)
		}
		optimized, resized, err := OptimizeImage(p, data)
		if err != nil {
			b.logger.Warnf("static %s: %v, copied as is", p, err)
			optimized = data
		} else if resized {
			b.logger.Debugf("static %s: downscaled to %dpx wide", p, maxImageWidth)
		}
		out.Files[p] = optimized
		return nil
	})
}

func (b *Builder) renderSyntaxCSS(out *Output) error {
	for name, style := range map[string]string{
		syntaxLightCSS: b.cfg.Theme.Prism.Theme,
		syntaxDarkCSS:  b.cfg.Theme.Prism.DarkTheme,
	} {
		var buf bytes.Buffer
		if err := markdown.StyleCSS(&buf, style); err != nil {
			return fmt.Errorf("docsite: syntax stylesheet %s: %w", style, err)
		}
		out.Files[name] = buf.Bytes()
	}
	return nil
}

// Build renders the site and writes it to outDir. Files whose content hash
// matches the previous build are left alone; files the previous build wrote
// that are no longer produced are removed.
func (b *Builder) Build(ctx context.Context, outDir string) (BuildReport, error) {
	start := time.Now()
	out, err := b.Render(ctx)
	if err != nil {
		return BuildReport{}, err
	}

	outDir, err = filepath.Abs(outDir)
	if err != nil {
		return BuildReport{}, err
	}
	dbPath := b.dbPath
	if dbPath == "" {
		dbPath = filepath.Join(filepath.Dir(outDir), storeDir, storeFile)
	}
	store, err := NewStore(dbPath)
	if err != nil {
		return BuildReport{}, fmt.Errorf("docsite: open build store: %w", err)
	}
	defer store.Close()

	if b.clean {
		if err := os.RemoveAll(outDir); err != nil {
			return BuildReport{}, fmt.Errorf("docsite: clean %s: %w", outDir, err)
		}
		if err := store.Reset(outDir); err != nil {
			return BuildReport{}, err
		}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BuildReport{}, fmt.Errorf("docsite: create %s: %w", outDir, err)
	}

	prev, err := store.Hashes(outDir)
	if err != nil {
		return BuildReport{}, err
	}

	report := BuildReport{Warnings: out.Warnings}
	current := make(map[string]string, len(out.Files))
	for _, p := range out.Paths() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		data := out.Files[p]
		sum := sha256.Sum256(data)
		hash := hex.EncodeToString(sum[:])
		current[p] = hash

		dst := filepath.Join(outDir, filepath.FromSlash(p))
		if prev[p] == hash && fileExists(dst) {
			report.Skipped++
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return report, fmt.Errorf("docsite: create directory for %s: %w", p, err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return report, fmt.Errorf("docsite: write %s: %w", p, err)
		}
		report.Written++
	}

	var stale []string
	for p := range prev {
		if _, ok := current[p]; ok {
			continue
		}
		stale = append(stale, p)
		err := os.Remove(filepath.Join(outDir, filepath.FromSlash(p)))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return report, fmt.Errorf("docsite: remove stale %s: %w", p, err)
		}
		report.Removed++
	}

	if err := store.Save(outDir, current, stale); err != nil {
		return report, err
	}
	report.Duration = time.Since(start)
	b.logger.Infof("built %s: %d written, %d unchanged, %d removed in %s",
		outDir, report.Written, report.Skipped, report.Removed, report.Duration.Round(time.Millisecond))
	return report, nil
}

func copyTree(fsys fs.FS, root string, out *Output) error {
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		out.Files[p] = data
		return nil
	})
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// emptyFS stands in for a missing static directory.
type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
