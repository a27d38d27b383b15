package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jerryzhao173985/cursorlog/internal/changelog"
)

// Watcher emits the snapshot's record sequence whenever another process
// replaces it. It uses fsnotify on the state directory: saves go through a
// rename, so watching the directory (not the file) catches every replacement.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	mu      sync.Mutex
	closed  bool
}

// NewWatcher creates a Watcher over the given store. The snapshot does not
// need to exist yet.
func NewWatcher(s *Store) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	return &Watcher{store: s, watcher: w}, nil
}

// Watch streams snapshot states. The current state is emitted first, then a
// new state for every observed replacement. The channel closes when the
// context is cancelled or Close is called.
func (w *Watcher) Watch(ctx context.Context) (<-chan []changelog.VersionRecord, error) {
	if err := os.MkdirAll(w.store.StateDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	if err := w.watcher.Add(w.store.StateDir); err != nil {
		return nil, fmt.Errorf("watching state directory: %w", err)
	}

	updates := make(chan []changelog.VersionRecord, 1)
	go w.watchLoop(ctx, updates)

	return updates, nil
}

func (w *Watcher) watchLoop(ctx context.Context, updates chan<- []changelog.VersionRecord) {
	defer close(updates)

	send := func() bool {
		select {
		case <-ctx.Done():
			return false
		case updates <- w.store.Load():
			return true
		}
	}

	if !send() {
		return
	}

	// Poll periodically as a backup for missed events.
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	var lastMod time.Time
	if info, err := os.Stat(w.store.Path()); err == nil {
		lastMod = info.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.store.Path() {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename) {
				if !send() {
					return
				}
			}
		case <-ticker.C:
			info, err := os.Stat(w.store.Path())
			if err != nil {
				continue
			}
			if info.ModTime().After(lastMod) {
				lastMod = info.ModTime()
				if !send() {
					return
				}
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Polling covers reads while the watcher misbehaves.
		}
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
