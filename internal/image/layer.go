// Package image provides image loading for file and clipboard sources.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"snapframe/pkg/geometry"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Source indicates where an image came from.
type Source int

const (
	SourceUnknown Source = iota
	SourceFile
	SourceClipboard
)

func (s Source) String() string {
	switch s {
	case SourceFile:
		return "File"
	case SourceClipboard:
		return "Clipboard"
	default:
		return "Unknown"
	}
}

// ErrNoImageItem is returned when a paste carries no image payload.
var ErrNoImageItem = errors.New("clipboard holds no image")

// Layer is the loaded base image.
type Layer struct {
	Path   string      // Original file path, empty for pasted images
	Image  image.Image // Decoded image data
	Source Source
	Format string // Decoder name reported by image.Decode
}

// Load loads an image from the specified path.
func Load(path string) (*Layer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	layer, err := Decode(file, SourceFile)
	if err != nil {
		return nil, err
	}
	layer.Path = path
	return layer, nil
}

// Decode reads any registered image format from r.
func Decode(r io.Reader, src Source) (*Layer, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return &Layer{Image: img, Source: src, Format: format}, nil
}

// Width returns the image width in pixels.
func (l *Layer) Width() int {
	if l == nil || l.Image == nil {
		return 0
	}
	return l.Image.Bounds().Dx()
}

// Height returns the image height in pixels.
func (l *Layer) Height() int {
	if l == nil || l.Image == nil {
		return 0
	}
	return l.Image.Bounds().Dy()
}

// Size returns the image dimensions.
func (l *Layer) Size() geometry.Size {
	return geometry.NewSize(float64(l.Width()), float64(l.Height()))
}

// Name is a short label for status lines.
func (l *Layer) Name() string {
	if l.Path != "" {
		return filepath.Base(l.Path)
	}
	return "pasted image"
}

// ClipboardItem is one representation offered by a paste.
type ClipboardItem struct {
	MIME string
	Data []byte
}

// FirstImageItem returns the first item whose MIME type is an image type.
func FirstImageItem(items []ClipboardItem) (ClipboardItem, bool) {
	for _, it := range items {
		if strings.HasPrefix(strings.ToLower(it.MIME), "image/") && len(it.Data) > 0 {
			return it, true
		}
	}
	return ClipboardItem{}, false
}

// FromClipboard decodes the first image item of a paste.
func FromClipboard(items []ClipboardItem) (*Layer, error) {
	it, ok := FirstImageItem(items)
	if !ok {
		return nil, ErrNoImageItem
	}
	return Decode(bytes.NewReader(it.Data), SourceClipboard)
}

// SupportedFormats returns the list of supported image file extensions.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".tiff", ".tif"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
