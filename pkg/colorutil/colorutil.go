// Package colorutil provides shared color utilities for snapframe.
package colorutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Common colors used throughout the application.
var (
	// Annotation is the stroke and text color of every annotation element.
	Annotation = color.NRGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF}

	// Selection outlines the active element on screen. Never exported.
	Selection = color.NRGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
)

// Swatch is a named background option.
type Swatch struct {
	Name  string
	Color color.NRGBA
}

// Swatches is the fixed set of background options, in display order.
var Swatches = []Swatch{
	{Name: "Ocean", Color: color.NRGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}},
	{Name: "Slate", Color: color.NRGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF}},
	{Name: "Rose", Color: color.NRGBA{R: 0xEC, G: 0x48, B: 0x99, A: 0xFF}},
	{Name: "Amber", Color: color.NRGBA{R: 0xF5, G: 0x9E, B: 0x0B, A: 0xFF}},
	{Name: "Paper", Color: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
}

// SwatchNames returns the swatch names in display order.
func SwatchNames() []string {
	names := make([]string, len(Swatches))
	for i, s := range Swatches {
		names[i] = s.Name
	}
	return names
}

// SwatchByName looks a swatch up by its case-insensitive name.
func SwatchByName(name string) (Swatch, bool) {
	for _, s := range Swatches {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Swatch{}, false
}

// SwatchByColor returns the swatch whose color equals c.
func SwatchByColor(c color.NRGBA) (Swatch, bool) {
	for _, s := range Swatches {
		if s.Color == c {
			return s, true
		}
	}
	return Swatch{}, false
}

// LookupSwatch resolves a swatch by name or by its "#rrggbb" color.
func LookupSwatch(s string) (Swatch, bool) {
	if sw, ok := SwatchByName(s); ok {
		return sw, true
	}
	c, err := ParseHex(s)
	if err != nil {
		return Swatch{}, false
	}
	return SwatchByColor(c)
}

// ParseHex parses "#rrggbb" or "rrggbb" into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// Hex formats a color as "#rrggbb", dropping alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
