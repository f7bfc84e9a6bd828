// Package clipboard adapts the system clipboard to the session's paste and
// copy operations.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"snapframe/internal/image"
)

// MIME types reported for clipboard items.
const (
	MIMEPNG  = "image/png"
	MIMEText = "text/plain"
)

var (
	initOnce sync.Once
	initErr  error
)

// System is the process-wide system clipboard.
type System struct{}

// Init prepares the system clipboard. It is safe to call more than once.
func Init() (System, error) {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return System{}, fmt.Errorf("clipboard init: %w", initErr)
	}
	return System{}, nil
}

// Items returns what the clipboard currently holds, image first.
func (System) Items() []image.ClipboardItem {
	var items []image.ClipboardItem
	if data := clipboard.Read(clipboard.FmtImage); len(data) > 0 {
		items = append(items, image.ClipboardItem{MIME: MIMEPNG, Data: data})
	}
	if data := clipboard.Read(clipboard.FmtText); len(data) > 0 {
		items = append(items, image.ClipboardItem{MIME: MIMEText, Data: data})
	}
	return items
}

// WriteImage replaces the clipboard contents with a PNG payload.
func (System) WriteImage(png []byte) error {
	if len(png) == 0 {
		return nil
	}
	clipboard.Write(clipboard.FmtImage, png)
	return nil
}

// PasteImage decodes the first image item on the clipboard.
func (s System) PasteImage() (*image.Layer, error) {
	return image.FromClipboard(s.Items())
}
