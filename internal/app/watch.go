package app

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SourceWatcher reports when the file behind the loaded image changes on
// disk, so the user can be offered a reload. Screenshot tools often rewrite
// the same path, and many editors save by renaming a temp file over the
// original, so the parent directory is watched and events filtered by name.
type SourceWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	timer    *time.Timer
	onChange func(path string) // called from a background goroutine
	stopCh   chan struct{}
}

// NewSourceWatcher creates a watcher. Bursts of events closer together than
// debounce are reported once.
func NewSourceWatcher(debounce time.Duration) (*SourceWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	sw := &SourceWatcher{
		watcher:  w,
		debounce: debounce,
		stopCh:   make(chan struct{}),
	}
	go sw.watchLoop()
	return sw, nil
}

// OnChange sets the callback invoked when the watched file is written or replaced.
func (sw *SourceWatcher) OnChange(callback func(path string)) {
	sw.mu.Lock()
	sw.onChange = callback
	sw.mu.Unlock()
}

// Watch switches the watcher to path. An empty path stops watching.
func (sw *SourceWatcher) Watch(path string) error {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.path != "" {
		_ = sw.watcher.Remove(filepath.Dir(sw.path))
		sw.path = ""
	}
	if sw.timer != nil {
		sw.timer.Stop()
	}
	if path == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := sw.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	sw.path = abs
	return nil
}

// Path returns the file currently watched.
func (sw *SourceWatcher) Path() string {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.path
}

// Close stops the watcher goroutine and releases the OS watch.
func (sw *SourceWatcher) Close() error {
	close(sw.stopCh)
	return sw.watcher.Close()
}

func (sw *SourceWatcher) watchLoop() {
	for {
		select {
		case <-sw.stopCh:
			return
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			sw.handle(ev)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Source watcher: %v", err)
		}
	}
}

func (sw *SourceWatcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.path == "" || filepath.Clean(ev.Name) != sw.path {
		return
	}
	if sw.timer != nil {
		sw.timer.Stop()
	}
	path, cb := sw.path, sw.onChange
	sw.timer = time.AfterFunc(sw.debounce, func() {
		if sw.Path() != path || cb == nil {
			return
		}
		cb(path)
	})
}
