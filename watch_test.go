package docsite

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatchDebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	logger := &testLogger{}
	w, err := newWatcher(logger, dir)
	if err != nil {
		t.Fatalf("newWatcher: %v", err)
	}
	defer w.Close()

	var calls atomic.Int32
	fired := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchEvents(ctx, w, logger, watchDebounce, func() {
			calls.Add(1)
			fired <- struct{}{}
		})
	}()

	p := filepath.Join(dir, "intro.md")
	if err := os.WriteFile(p, []byte("# One\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("# Two\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported after the writes")
	}
	time.Sleep(2 * watchDebounce)
	if got := calls.Load(); got != 1 {
		t.Fatalf("onChange called %d times for one burst, want 1", got)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("watchEvents returned %v after cancel", err)
	}
}

func TestWatchInvalidatesCache(t *testing.T) {
	app := newTestApp(t, testSource())
	r := &countingRender{}
	app.Cache = NewOutputCache(r.render, 0, &testLogger{})

	bg := context.Background()
	if _, err := app.Cache.Get(bg, "index.html"); err != nil {
		t.Fatalf("Get: %v", err)
	}

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(bg)
	done := make(chan error, 1)
	go func() { done <- app.Watch(ctx, dir, filepath.Join(dir, "missing")) }()

	// The watcher registers asynchronously, so keep editing until a change lands.
	deadline := time.Now().Add(5 * time.Second)
	for i := 0; r.calls.Load() < 2; i++ {
		if time.Now().After(deadline) {
			t.Fatal("cache was not invalidated by a file change")
		}
		data := []byte("# Edit " + string(rune('a'+i%26)) + "\n")
		if err := os.WriteFile(filepath.Join(dir, "intro.md"), data, 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(watchDebounce + 200*time.Millisecond)
		if _, err := app.Cache.Get(bg, "index.html"); err != nil {
			t.Fatalf("Get: %v", err)
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch returned %v after cancel", err)
	}
}

func TestWatchSkipsMissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	w, err := newWatcher(&testLogger{}, missing)
	if err != nil {
		t.Fatalf("newWatcher: %v", err)
	}
	defer w.Close()
	if got := w.WatchList(); len(got) != 0 {
		t.Fatalf("missing dir should not be watched, got %v", got)
	}

	app := newTestApp(t, testSource())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.Watch(ctx, missing); err != nil {
		t.Fatalf("Watch: %v", err)
	}
}

func TestWatchFollowsNewDirectories(t *testing.T) {
	dir := t.TempDir()
	logger := &testLogger{}
	w, err := newWatcher(logger, dir)
	if err != nil {
		t.Fatalf("newWatcher: %v", err)
	}
	defer w.Close()

	fired := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watchEvents(ctx, w, logger, 50*time.Millisecond, func() { fired <- struct{}{} })

	sub := filepath.Join(dir, "guides")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("directory creation not reported")
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		if list := w.WatchList(); slices.Contains(list, sub) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("new directory %s not added to the watch list", sub)
		}
		time.Sleep(20 * time.Millisecond)
	}
}
