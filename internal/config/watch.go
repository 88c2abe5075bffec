package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file on change and re-seeds the verification
// toggle, so checking can be turned on or off while a process runs without
// restarting it. It uses fsnotify for efficient file change detection.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	// onReload receives each successfully reloaded Settings; optional.
	onReload func(*Settings)
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithReloadHook registers a callback invoked after each successful reload.
func WithReloadHook(fn func(*Settings)) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// NewWatcher creates a Watcher for the given config file path.
// The file must exist when Watch is called; editors that replace the file
// on save are handled by watching its directory.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	w := &Watcher{path: path, watcher: fw}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch blocks until the context is cancelled, reloading settings and
// re-seeding the toggle whenever the config file is written or recreated.
// Reload errors are skipped; the last good settings stay in effect.
func (w *Watcher) Watch(ctx context.Context) error {
	defer w.watcher.Close()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.isConfigEvent(event) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// isConfigEvent reports whether the event touches the watched config file.
func (w *Watcher) isConfigEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create)
}

// reload loads the file and pushes the verify flag into the toggle.
func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		return
	}
	Seed(s)
	if w.onReload != nil {
		w.onReload(s)
	}
}
