package prefs

import (
	"path/filepath"
	"testing"
)

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", prefsFile)

	p := LoadFrom(path)
	if w, h := p.WindowSize(1200, 800); w != 1200 || h != 800 {
		t.Errorf("fallback size = %vx%v, want 1200x800", w, h)
	}
	p.SetString(KeyLastDirectory, dir)
	p.SetWindowSize(1024, 768)
	if err := p.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	q := LoadFrom(path)
	if got := q.Dir(KeyLastDirectory); got != dir {
		t.Errorf("last directory = %q, want %q", got, dir)
	}
	if w, h := q.WindowSize(1, 1); w != 1024 || h != 768 {
		t.Errorf("size = %vx%v, want 1024x768", w, h)
	}
}

func TestDirDropsMissing(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), prefsFile))
	p.SetString(KeyExportDir, filepath.Join(t.TempDir(), "gone"))
	if got := p.Dir(KeyExportDir); got != "" {
		t.Errorf("Dir = %q, want empty for a missing directory", got)
	}
}
