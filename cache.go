package docsite

import (
	"context"
	"sync"
	"time"
)

// OutputCache holds the latest in-memory render for the dev server. Entries
// expire after ttl or on Invalidate; a failed re-render keeps serving the
// last good output.
type OutputCache struct {
	mu      sync.RWMutex
	out     *Output
	lastErr error
	fetched time.Time
	ttl     time.Duration
	stale   bool
	render  func(context.Context) (*Output, error)
	logger  Logger
}

// NewOutputCache creates a cache backed by render.
func NewOutputCache(render func(context.Context) (*Output, error), ttl time.Duration, logger Logger) *OutputCache {
	return &OutputCache{render: render, ttl: ttl, logger: logger}
}

func (c *OutputCache) valid() bool {
	return c.out != nil && !c.stale && (c.ttl <= 0 || time.Since(c.fetched) < c.ttl)
}

// Invalidate marks the cache stale so the next read triggers a fresh render.
func (c *OutputCache) Invalidate() {
	c.mu.Lock()
	c.stale = true
	c.mu.Unlock()
}

func (c *OutputCache) load(ctx context.Context) error {
	if c.valid() {
		return nil
	}
	out, err := c.render(ctx)
	if err != nil {
		c.lastErr = err
		if c.out != nil {
			c.logger.Errorf("render failed, serving previous output: %v", err)
			c.stale = false
			c.fetched = time.Now()
			return nil
		}
		return err
	}
	c.out = out
	c.lastErr = nil
	c.stale = false
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns the cached output after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *OutputCache) ensureLoaded(ctx context.Context) (*Output, error) {
	c.mu.RLock()
	if c.valid() {
		out := c.out
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	return c.out, nil
}

// Get returns the file at path (relative to the output root).
func (c *OutputCache) Get(ctx context.Context, path string) ([]byte, error) {
	out, err := c.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	data, ok := out.Files[path]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

// LastError returns the error from the most recent failed render, if the
// cache is still serving older output because of it.
func (c *OutputCache) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}
