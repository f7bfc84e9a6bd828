// Package render rasterizes a framed, annotated image.
package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"snapframe/internal/annotation"
	"snapframe/internal/presentation"
	"snapframe/pkg/colorutil"
	"snapframe/pkg/geometry"
)

const (
	shadowRings   = 12
	shadowAlpha   = 0.06
	strokeWidth   = 3.0
	textPadding   = 6.0
	textLineSpace = 1.3
)

// Scene is everything the composed output depends on.
type Scene struct {
	Image        image.Image
	Presentation presentation.State
	Elements     []annotation.Element
}

// FrameSize is the composed output size for an image at zoom 1.
func FrameSize(img geometry.Size, p presentation.State) geometry.Size {
	return geometry.NewSize(img.Width+2*p.Padding, img.Height+2*p.Padding)
}

// ImageRect is the region the image occupies inside the frame.
func ImageRect(img geometry.Size, p presentation.State) geometry.Rect {
	return geometry.NewRect(p.Padding, p.Padding, img.Width, img.Height)
}

// Compose draws the scene at the given scale. Export uses scale 1; the
// on-screen preview passes the zoom factor.
func Compose(sc Scene, scale float64) image.Image {
	return compose(sc, scale).Image()
}

func compose(sc Scene, scale float64) *gg.Context {
	if scale <= 0 {
		scale = 1
	}
	b := sc.Image.Bounds()
	imgSize := geometry.NewSize(float64(b.Dx()), float64(b.Dy()))
	frame := FrameSize(imgSize, sc.Presentation)

	w := int(math.Ceil(frame.Width * scale))
	h := int(math.Ceil(frame.Height * scale))
	dc := gg.NewContext(max(w, 1), max(h, 1))

	dc.SetColor(sc.Presentation.BackgroundColor())
	dc.Clear()
	dc.Scale(scale, scale)

	rect := ImageRect(imgSize, sc.Presentation)
	radius := sc.Presentation.CornerRadius

	drawShadow(dc, rect, radius, sc.Presentation.ShadowRadius)

	dc.DrawRoundedRectangle(rect.X, rect.Y, rect.Width, rect.Height, radius)
	dc.Clip()
	dc.DrawImage(sc.Image, int(math.Round(rect.X))-b.Min.X, int(math.Round(rect.Y))-b.Min.Y)
	dc.ResetClip()

	face := newTextFace()
	for _, e := range sc.Elements {
		drawElement(dc, e, scale, face)
	}
	return dc
}

// drawShadow stacks translucent rounded rectangles that grow outward, so
// overlap is densest near the image edge.
func drawShadow(dc *gg.Context, r geometry.Rect, radius, spread float64) {
	if spread <= 0 {
		return
	}
	offsetY := spread / 4
	dc.SetRGBA(0, 0, 0, shadowAlpha)
	for i := shadowRings; i >= 1; i-- {
		grow := spread * float64(i) / shadowRings
		dc.DrawRoundedRectangle(r.X-grow, r.Y-grow+offsetY, r.Width+2*grow, r.Height+2*grow, radius+grow)
		dc.Fill()
	}
}

func drawElement(dc *gg.Context, e annotation.Element, scale float64, face *textFace) {
	dc.SetColor(colorutil.Annotation)
	dc.SetLineWidth(strokeWidth * scale)

	switch el := e.(type) {
	case annotation.Rectangle:
		n := el.Bounds()
		dc.DrawRectangle(n.X, n.Y, n.Width, n.Height)
		dc.Stroke()

	case annotation.Arrow:
		tail, head := el.Tail(), el.Head()
		dc.DrawLine(tail.X, tail.Y, head.X, head.Y)
		dc.Stroke()
		drawArrowHead(dc, el)

	case annotation.Text:
		n := el.Bounds()
		dc.SetFontFace(face.face)
		dc.DrawStringWrapped(el.Content, n.X+textPadding, n.Y+textPadding, 0, 0,
			math.Max(n.Width-2*textPadding, 1), textLineSpace, gg.AlignLeft)
	}
}

// drawArrowHead fills a fixed-size triangle at the head, pointing away from the tail.
func drawArrowHead(dc *gg.Context, a annotation.Arrow) {
	tri, ok := a.HeadPolygon()
	if !ok {
		return
	}
	dc.MoveTo(tri[0].X, tri[0].Y)
	for _, p := range tri[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.Fill()
}
