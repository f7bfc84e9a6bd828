// Package presentation holds the framing parameters applied around the loaded image.
package presentation

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"snapframe/pkg/colorutil"
)

// Range is an inclusive numeric range a control clamps to.
type Range struct {
	Min, Max float64
}

// Clamp returns v limited to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Declared control ranges.
var (
	PaddingRange      = Range{Min: 0, Max: 200}
	InsetRange        = Range{Min: 0, Max: 100}
	CornerRadiusRange = Range{Min: 0, Max: 50}
	ShadowRadiusRange = Range{Min: 0, Max: 100}
	ZoomRange         = Range{Min: 0.1, Max: 3.0}
)

// ZoomStep is the increment applied by ZoomIn and ZoomOut.
const ZoomStep = 0.1

var (
	ErrUnknownSwatch = errors.New("unknown background swatch")
	ErrUnknownRatio  = errors.New("unknown aspect ratio preset")
)

// Ratio is an aspect-ratio preset. It is stored and shown but does not
// change the composed output.
type Ratio int

const (
	RatioAuto Ratio = iota
	Ratio4x3
	Ratio3x2
	Ratio16x9
)

var ratioNames = []string{"auto", "4:3", "3:2", "16:9"}

func (r Ratio) String() string {
	if r < 0 || int(r) >= len(ratioNames) {
		return "unknown"
	}
	return ratioNames[r]
}

// RatioNames lists the presets in display order.
func RatioNames() []string {
	return append([]string(nil), ratioNames...)
}

// ParseRatio maps a preset name back to its Ratio.
func ParseRatio(s string) (Ratio, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range ratioNames {
		if n == s {
			return Ratio(i), nil
		}
	}
	return RatioAuto, fmt.Errorf("%w: %q", ErrUnknownRatio, s)
}

// State is the set of independent framing parameters. Fields are exported
// for reading; writes go through the setters so ranges hold.
type State struct {
	Padding      float64
	Inset        float64
	CornerRadius float64
	ShadowRadius float64
	Background   colorutil.Swatch
	Ratio        Ratio
	Zoom         float64
}

// Default returns the initial framing.
func Default() State {
	return State{
		Padding:      40,
		CornerRadius: 8,
		ShadowRadius: 20,
		Background:   colorutil.Swatches[0],
		Ratio:        RatioAuto,
		Zoom:         1.0,
	}
}

func (s *State) SetPadding(v float64) { s.Padding = PaddingRange.Clamp(v) }
func (s *State) SetInset(v float64) { s.Inset = InsetRange.Clamp(v) }
func (s *State) SetCornerRadius(v float64) { s.CornerRadius = CornerRadiusRange.Clamp(v) }
func (s *State) SetShadowRadius(v float64) { s.ShadowRadius = ShadowRadiusRange.Clamp(v) }

// SetBackground selects one of the fixed swatches by name or by its
// "#rrggbb" color.
func (s *State) SetBackground(name string) error {
	sw, ok := colorutil.LookupSwatch(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSwatch, name)
	}
	s.Background = sw
	return nil
}

// BackgroundColor returns the color of the selected swatch.
func (s State) BackgroundColor() color.NRGBA {
	return s.Background.Color
}

// SetRatio selects an aspect-ratio preset by name.
func (s *State) SetRatio(name string) error {
	r, err := ParseRatio(name)
	if err != nil {
		return err
	}
	s.Ratio = r
	return nil
}

// SetZoom sets the zoom factor, rounded to one decimal and clamped.
func (s *State) SetZoom(z float64) {
	s.Zoom = ZoomRange.Clamp(math.Round(z*10) / 10)
}

// ZoomIn increases the zoom factor by one step.
func (s *State) ZoomIn() { s.SetZoom(s.Zoom + ZoomStep) }

// ZoomOut decreases the zoom factor by one step.
func (s *State) ZoomOut() { s.SetZoom(s.Zoom - ZoomStep) }

// ResetZoom returns to 100%.
func (s *State) ResetZoom() { s.Zoom = 1.0 }
