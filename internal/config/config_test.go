package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"snapframe/internal/presentation"
)

func TestDefaultTOMLMatchesDefault(t *testing.T) {
	cfg, err := Parse([]byte(defaultConfigTOML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseValid(t *testing.T) {
	data := []byte(`
[presentation]
padding = 64.0
corner_radius = 12.0
shadow_radius = 0.0
background = "rose"
ratio = "16:9"

[export]
file_name = "shot.png"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p := cfg.Presentation
	if p.Padding != 64 || p.CornerRadius != 12 || p.ShadowRadius != 0 {
		t.Errorf("numbers = %v/%v/%v", p.Padding, p.CornerRadius, p.ShadowRadius)
	}
	if p.Background != "Rose" {
		t.Errorf("background = %q, want Rose", p.Background)
	}
	if p.Ratio != "16:9" {
		t.Errorf("ratio = %q, want 16:9", p.Ratio)
	}
	if cfg.Export.FileName != "shot.png" {
		t.Errorf("file_name = %q, want shot.png", cfg.Export.FileName)
	}
	if cfg.Window != Default().Window {
		t.Errorf("window = %+v, want defaults", cfg.Window)
	}
}

func TestParseClampsAndFallsBack(t *testing.T) {
	data := []byte(`
[presentation]
padding = 999.0
inset = -5.0
background = "chartreuse"
ratio = "21:9"

[export]
file_name = "../escape.png"
`)
	cfg, err := Parse(data)
	if !errors.Is(err, presentation.ErrUnknownSwatch) || !errors.Is(err, presentation.ErrUnknownRatio) {
		t.Errorf("err = %v, want unknown swatch and ratio", err)
	}
	p := cfg.Presentation
	if p.Padding != 200 || p.Inset != 0 {
		t.Errorf("padding = %v, inset = %v; want 200, 0", p.Padding, p.Inset)
	}
	if p.Background != Default().Presentation.Background || p.Ratio != "auto" {
		t.Errorf("background = %q, ratio = %q; want defaults", p.Background, p.Ratio)
	}
	if cfg.Export.FileName != "snapframe.png" {
		t.Errorf("file_name = %q, want default", cfg.Export.FileName)
	}
}

func TestParseInvalidTOML(t *testing.T) {
	if _, err := Parse([]byte("[presentation\npadding = ")); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestLoadFromCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapframe", "config.toml")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	s := presentation.Default()
	s.SetPadding(12)
	if err := s.SetBackground("Slate"); err != nil {
		t.Fatal(err)
	}
	if err := SaveTo(path, Default().WithPresentation(s)); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	got := cfg.PresentationState()
	if got.Padding != 12 || got.Background.Name != "Slate" {
		t.Errorf("reloaded padding = %v, background = %q", got.Padding, got.Background.Name)
	}
	if got.Zoom != 1.0 {
		t.Errorf("zoom = %v, want 1.0 regardless of config", got.Zoom)
	}
}
