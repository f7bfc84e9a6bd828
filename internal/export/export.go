// Package export writes the composed frame to a PNG file or the clipboard.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"snapframe/internal/render"
)

// DefaultFileName is used when no file name is configured.
const DefaultFileName = "snapframe.png"

// Rasterizer turns a scene into encoded image bytes.
type Rasterizer interface {
	Rasterize(ctx context.Context, sc render.Scene) ([]byte, error)
}

// Clipboard accepts an encoded PNG payload.
type Clipboard interface {
	WriteImage(png []byte) error
}

// SceneSource provides the current scene. It reports false when nothing is loaded.
type SceneSource interface {
	Scene() (render.Scene, bool)
}

// Exporter rasterizes scenes and hands the bytes to a file or the clipboard.
type Exporter struct {
	Source     SceneSource
	Rasterizer Rasterizer
	Clipboard  Clipboard

	// FileName is the name saved files get. Empty means DefaultFileName.
	FileName string
}

// New creates an exporter with the PNG rasterizer.
func New(src SceneSource, cb Clipboard, fileName string) *Exporter {
	return &Exporter{
		Source:     src,
		Rasterizer: render.PNGRasterizer{},
		Clipboard:  cb,
		FileName:   fileName,
	}
}

// Name returns the fixed file name for saved exports.
func (e *Exporter) Name() string {
	if e.FileName == "" {
		return DefaultFileName
	}
	return e.FileName
}

// Save rasterizes the current scene into w. It writes nothing and returns
// false when no image is loaded or the rasterizer yields no bytes.
func (e *Exporter) Save(ctx context.Context, w io.Writer) (bool, error) {
	sc, ok := e.Source.Scene()
	if !ok {
		return false, nil
	}
	data, err := e.Rasterizer.Rasterize(ctx, sc)
	if err != nil {
		return false, fmt.Errorf("rasterize: %w", err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if _, err := w.Write(data); err != nil {
		return false, fmt.Errorf("write export: %w", err)
	}
	return true, nil
}

// SaveFile writes the export into dir under Name and returns the path written.
// The path is empty when there was nothing to export; no file is created then.
func (e *Exporter) SaveFile(ctx context.Context, dir string) (string, error) {
	var buf bytes.Buffer
	ok, err := e.Save(ctx, &buf)
	if err != nil || !ok {
		return "", err
	}
	path := filepath.Join(dir, e.Name())
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Copy rasterizes the current scene and places it on the clipboard as an
// image. Nothing is written when there is no scene or the rasterizer yields
// no bytes.
func (e *Exporter) Copy(ctx context.Context) (bool, error) {
	if e.Clipboard == nil {
		return false, fmt.Errorf("clipboard unavailable")
	}
	sc, ok := e.Source.Scene()
	if !ok {
		return false, nil
	}
	data, err := e.Rasterizer.Rasterize(ctx, sc)
	if err != nil {
		return false, fmt.Errorf("rasterize: %w", err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := e.Clipboard.WriteImage(data); err != nil {
		return false, fmt.Errorf("write clipboard: %w", err)
	}
	return true, nil
}

// fixedScene is a scene captured at one instant.
type fixedScene struct{ sc render.Scene }

func (f fixedScene) Scene() (render.Scene, bool) { return f.sc, true }

// snapshot returns a copy of e whose source is frozen at the current scene.
func (e *Exporter) snapshot() (*Exporter, bool) {
	sc, ok := e.Source.Scene()
	if !ok {
		return nil, false
	}
	cp := *e
	cp.Source = fixedScene{sc: sc}
	return &cp, true
}

// SaveFileAsync snapshots the scene on the calling goroutine and writes the
// file in the background. done, if set, receives the outcome on the
// background goroutine.
func (e *Exporter) SaveFileAsync(dir string, done func(path string, err error)) {
	snap, ok := e.snapshot()
	if !ok {
		return
	}
	go func() {
		path, err := snap.SaveFile(context.Background(), dir)
		if err != nil {
			log.Printf("Export failed: %v", err)
		} else if path != "" {
			log.Printf("Exported %s", path)
		}
		if done != nil {
			done(path, err)
		}
	}()
}

// CopyAsync snapshots the scene on the calling goroutine and copies it in the
// background.
func (e *Exporter) CopyAsync(done func(copied bool, err error)) {
	snap, ok := e.snapshot()
	if !ok {
		return
	}
	go func() {
		copied, err := snap.Copy(context.Background())
		if err != nil {
			log.Printf("Copy failed: %v", err)
		}
		if done != nil {
			done(copied, err)
		}
	}()
}
