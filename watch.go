package docsite

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 300 * time.Millisecond

// Watch invalidates the render cache whenever a file under dirs changes.
// Missing directories are skipped. It blocks until ctx is cancelled.
func (a *App) Watch(ctx context.Context, dirs ...string) error {
	logger := a.Builder.logger
	w, err := newWatcher(logger, dirs...)
	if err != nil {
		return err
	}
	defer w.Close()

	return watchEvents(ctx, w, logger, watchDebounce, func() {
		a.Cache.Invalidate()
		logger.Infof("change detected, site will re-render on next request")
	})
}

func newWatcher(logger Logger, dirs ...string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			logger.Debugf("watch: %s not found, skipped", dir)
			continue
		}
		if err := addTree(w, dir); err != nil {
			w.Close()
			return nil, err
		}
	}
	return w, nil
}

// watchEvents calls onChange once per burst of events, after delay of quiet.
func watchEvents(ctx context.Context, w *fsnotify.Watcher, logger Logger, delay time.Duration, onChange func()) error {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(w, ev.Name); err != nil {
						logger.Warnf("watch %s: %v", ev.Name, err)
					}
				}
			}
			logger.Debugf("watch: %s %s", ev.Op, ev.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(delay, onChange)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Errorf("watcher: %v", err)
		}
	}
}

func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
}
