package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(path, encodePNG(t, 12, 7), 0o644); err != nil {
		t.Fatal(err)
	}

	layer, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if layer.Width() != 12 || layer.Height() != 7 {
		t.Errorf("size = %dx%d, want 12x7", layer.Width(), layer.Height())
	}
	if layer.Source != SourceFile || layer.Format != "png" {
		t.Errorf("source/format = %v/%q", layer.Source, layer.Format)
	}
	if layer.Name() != "shot.png" {
		t.Errorf("Name() = %q", layer.Name())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestFromClipboardTakesFirstImage(t *testing.T) {
	items := []ClipboardItem{
		{MIME: "text/plain", Data: []byte("hello")},
		{MIME: "image/png", Data: encodePNG(t, 3, 3)},
		{MIME: "image/png", Data: encodePNG(t, 9, 9)},
	}
	layer, err := FromClipboard(items)
	if err != nil {
		t.Fatalf("FromClipboard: %v", err)
	}
	if layer.Width() != 3 {
		t.Errorf("picked item of width %d, want the first image (3)", layer.Width())
	}
	if layer.Source != SourceClipboard || layer.Name() != "pasted image" {
		t.Errorf("source = %v, name = %q", layer.Source, layer.Name())
	}

	_, err = FromClipboard([]ClipboardItem{{MIME: "text/plain", Data: []byte("x")}})
	if !errors.Is(err, ErrNoImageItem) {
		t.Errorf("err = %v, want ErrNoImageItem", err)
	}
}

func TestIsSupportedFormat(t *testing.T) {
	for _, p := range []string{"a.PNG", "b.webp", "c.tif"} {
		if !IsSupportedFormat(p) {
			t.Errorf("%s should be supported", p)
		}
	}
	if IsSupportedFormat("notes.txt") {
		t.Error("txt should not be supported")
	}
}
