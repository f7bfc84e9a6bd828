package render

import (
	"image"
	"image/draw"

	"github.com/fogleman/gg"

	"snapframe/internal/annotation"
	"snapframe/pkg/colorutil"
	"snapframe/pkg/geometry"
)

// Chrome is on-screen decoration drawn over a composed preview. It is never
// part of an export.
type Chrome struct {
	// Selected is outlined when set.
	Selected annotation.Element

	// Placeholder draws a faded text label at PlaceholderAt.
	Placeholder   bool
	PlaceholderAt geometry.Point2D
}

// DrawChrome draws c over a preview produced by Compose at the same scale.
func DrawChrome(preview image.Image, c Chrome, scale float64) image.Image {
	if c.Selected == nil && !c.Placeholder {
		return preview
	}
	b := preview.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), preview, b.Min, draw.Src)

	dc := gg.NewContextForRGBA(dst)
	dc.Scale(scale, scale)

	if c.Selected != nil {
		r := c.Selected.Bounds()
		if a, ok := c.Selected.(annotation.Arrow); ok {
			r = a.Extents()
		}
		r = r.Inset(-4)
		dc.SetColor(colorutil.Selection)
		dc.SetLineWidth(1.5 * scale)
		dc.SetDash(6*scale, 4*scale)
		dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		dc.Stroke()
		dc.SetDash()
	}

	if c.Placeholder {
		face := newTextFace()
		dc.SetFontFace(face.face)
		dc.SetColor(colorutil.WithAlpha(colorutil.Annotation, 0x80))
		dc.DrawStringAnchored(annotation.DefaultTextContent,
			c.PlaceholderAt.X+textPadding, c.PlaceholderAt.Y+textPadding, 0, 1)
	}
	return dst
}
