// Package annotation defines the elements drawn over the framed image.
package annotation

import (
	"snapframe/pkg/geometry"
)

// Kind identifies an element variant.
type Kind int

const (
	KindText Kind = iota
	KindRectangle
	KindArrow
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindRectangle:
		return "rectangle"
	case KindArrow:
		return "arrow"
	default:
		return "unknown"
	}
}

// Defaults for newly placed text elements.
const (
	DefaultTextContent = "Text goes here"
	DefaultTextWidth   = 200
	DefaultTextHeight  = 40
)

// Element is one of Text, Rectangle or Arrow. Elements are values: every
// mutation returns a modified copy.
type Element interface {
	Kind() Kind
	// Origin is the anchor position in composed-frame coordinates.
	Origin() geometry.Point2D
	// Extent is the signed size of the element.
	Extent() geometry.Size
	// Bounds is the normalized box spanned by Origin and Extent.
	Bounds() geometry.Rect
	// Translate returns a copy moved by d.
	Translate(d geometry.Point2D) Element

	sealed()
}

// Text is an editable label.
type Text struct {
	Position geometry.Point2D
	Size     geometry.Size
	Content  string
	Editing  bool
}

// NewText returns a placeholder label at p, already in edit mode.
func NewText(p geometry.Point2D) Text {
	return Text{
		Position: p,
		Size:     geometry.NewSize(DefaultTextWidth, DefaultTextHeight),
		Content:  DefaultTextContent,
		Editing:  true,
	}
}

func (t Text) Kind() Kind { return KindText }
func (t Text) Origin() geometry.Point2D { return t.Position }
func (t Text) Extent() geometry.Size { return t.Size }
func (t Text) Bounds() geometry.Rect { return geometry.RectFrom(t.Position, t.Size).Normalize() }
func (t Text) sealed() {}
func (t Text) Translate(d geometry.Point2D) Element {
	t.Position = t.Position.Add(d)
	return t
}

// Rectangle is an outlined box. Its size keeps the sign of the drag that drew it.
type Rectangle struct {
	Position geometry.Point2D
	Size     geometry.Size
}

func (r Rectangle) Kind() Kind { return KindRectangle }
func (r Rectangle) Origin() geometry.Point2D { return r.Position }
func (r Rectangle) Extent() geometry.Size { return r.Size }
func (r Rectangle) Bounds() geometry.Rect { return geometry.RectFrom(r.Position, r.Size).Normalize() }
func (r Rectangle) sealed() {}
func (r Rectangle) Translate(d geometry.Point2D) Element {
	r.Position = r.Position.Add(d)
	return r
}

// Arrowhead geometry, in frame pixels.
const (
	ArrowHeadSize = 14.0
	ArrowHeadSpan = 0.5 // half-width of the head relative to its length
	ArrowHitSlop  = 4.0
)

// Arrow runs from Position to Position+Size with a head at the far end.
type Arrow struct {
	Position geometry.Point2D
	Size     geometry.Size
}

// Tail returns the start of the shaft.
func (a Arrow) Tail() geometry.Point2D { return a.Position }

// Head returns the point the arrow points at.
func (a Arrow) Head() geometry.Point2D {
	return a.Position.Add(geometry.Pt(a.Size.Width, a.Size.Height))
}

// HeadPolygon returns the fixed-size arrowhead triangle, tip first. A
// zero-length arrow has no head.
func (a Arrow) HeadPolygon() ([]geometry.Point2D, bool) {
	return geometry.ArrowHead(a.Tail(), a.Head(), ArrowHeadSize, ArrowHeadSpan)
}

// Extents returns the bounds of the shaft unioned with the arrowhead.
func (a Arrow) Extents() geometry.Rect {
	r := a.Bounds()
	if tri, ok := a.HeadPolygon(); ok {
		r = r.Union(geometry.BoundsOf(tri))
	}
	return r
}

func (a Arrow) Kind() Kind { return KindArrow }
func (a Arrow) Origin() geometry.Point2D { return a.Position }
func (a Arrow) Extent() geometry.Size { return a.Size }
func (a Arrow) Bounds() geometry.Rect { return geometry.RectFrom(a.Position, a.Size).Normalize() }
func (a Arrow) sealed() {}
func (a Arrow) Translate(d geometry.Point2D) Element {
	a.Position = a.Position.Add(d)
	return a
}

// NewShape builds a rectangle or arrow from a drag anchor and release point.
// The size is release minus anchor, component-wise, without normalization.
func NewShape(kind Kind, anchor, release geometry.Point2D) (Element, bool) {
	d := release.Sub(anchor)
	size := geometry.NewSize(d.X, d.Y)
	switch kind {
	case KindRectangle:
		return Rectangle{Position: anchor, Size: size}, true
	case KindArrow:
		return Arrow{Position: anchor, Size: size}, true
	default:
		return nil, false
	}
}
