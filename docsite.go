// Package docsite is a static documentation site generator built with Go,
// goldmark and templ. It renders a docs directory, a homepage with feature
// cards, a sitemap and a social card into a static tree ready for a pages
// deployment, and can serve the same render from memory while you edit.
//
// Users provide their own templ components via the ViewFuncs struct, and
// docsite handles content loading, link checking, output and the dev server.
package docsite

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds user-provided templ components that the builder calls
// when rendering pages.
type ViewFuncs struct {
	Home        func(site *Site) templ.Component
	Doc         func(site *Site, doc Doc) templ.Component
	NotFound    func(site *Site) templ.Component
	ServerError func(err error) templ.Component // dev server only

	// Assets is copied to the output root (stylesheets, scripts).
	Assets fs.FS
}

func (v ViewFuncs) validate() error {
	if v.Home == nil || v.Doc == nil || v.NotFound == nil {
		return errors.New("docsite: ViewFuncs needs Home, Doc and NotFound")
	}
	return nil
}

// Logger is the subset of the echo/gommon logger docsite writes to.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// App is the development server. It serves the builder's render from
// memory under baseUrl and re-renders when the cache is invalidated.
type App struct {
	Echo    *echo.Echo
	Builder *Builder
	Cache   *OutputCache

	addr     string
	cacheTTL time.Duration
	setup    sync.Once
}

// Option configures additional App behavior.
type Option func(*App)

// WithAddr sets the listen address (default ":3000").
func WithAddr(addr string) Option {
	return func(a *App) { a.addr = addr }
}

// WithCacheTTL bounds how long a render is served before re-rendering.
// Zero (the default) keeps it until Invalidate.
func WithCacheTTL(ttl time.Duration) Option {
	return func(a *App) { a.cacheTTL = ttl }
}

// New creates a dev server for b.
func New(b *Builder, opts ...Option) *App {
	a := &App{
		Echo:    echo.New(),
		Builder: b,
		addr:    ":3000",
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Cache = NewOutputCache(b.Render, a.cacheTTL, b.logger)
	if l, ok := b.logger.(echo.Logger); ok {
		a.Echo.Logger = l
	}
	a.Echo.HideBanner = true
	return a
}

// Handler returns the configured echo instance, for tests and embedding.
func (a *App) Handler() http.Handler {
	a.setup.Do(func() {
		a.setupMiddleware()
		a.setupRoutes()
	})
	return a.Echo
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	a.Handler()
	errc := make(chan error, 1)
	go func() {
		a.Builder.logger.Infof("serving %s at http://localhost%s%s", a.Builder.cfg.Title, a.addr, a.Builder.cfg.BaseURL)
		errc <- a.Echo.Start(a.addr)
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo
	base := JoinRoute(a.Builder.cfg.BaseURL)
	if base != "/" {
		e.GET("/", a.handleRootRedirect)
		e.GET(strings.TrimSuffix(base, "/"), a.handleRootRedirect)
	}
	e.GET(base+"*", a.handleFile)
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
