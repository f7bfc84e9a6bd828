package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSourceWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")
	other := filepath.Join(dir, "other.png")
	for _, p := range []string{path, other} {
		if err := os.WriteFile(p, []byte("v1"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	sw, err := NewSourceWatcher(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewSourceWatcher: %v", err)
	}
	defer sw.Close()

	changed := make(chan string, 4)
	sw.OnChange(func(p string) { changed <- p })
	if err := sw.Watch(path); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(other, []byte("v2"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case p := <-changed:
		t.Fatalf("unrelated write reported as %q", p)
	case <-time.After(200 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("v2"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case p := <-changed:
		if p != sw.Path() {
			t.Errorf("changed path = %q, want %q", p, sw.Path())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for watched file")
	}
}

func TestSourceWatcherStop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")
	if err := os.WriteFile(path, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}

	sw, err := NewSourceWatcher(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewSourceWatcher: %v", err)
	}
	defer sw.Close()

	changed := make(chan string, 4)
	sw.OnChange(func(p string) { changed <- p })
	if err := sw.Watch(path); err != nil {
		t.Fatal(err)
	}
	if err := sw.Watch(""); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("v2"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case p := <-changed:
		t.Fatalf("stopped watcher reported %q", p)
	case <-time.After(200 * time.Millisecond):
	}
}
