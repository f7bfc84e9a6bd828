package render

import (
	"log"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// TextSize is the annotation text size in frame pixels.
const TextSize = 20

var (
	parseOnce  sync.Once
	parsedFont *truetype.Font
)

// textFace wraps a face built for a single compose call. truetype faces
// cache glyphs and are not safe for concurrent use.
type textFace struct {
	face font.Face
}

func newTextFace() *textFace {
	parseOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			log.Printf("render: failed to parse font, using fallback: %v", err)
			return
		}
		parsedFont = f
	})
	if parsedFont == nil {
		return &textFace{face: basicfont.Face7x13}
	}
	return &textFace{face: truetype.NewFace(parsedFont, &truetype.Options{
		Size:    TextSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})}
}
