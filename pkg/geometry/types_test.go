package geometry

import (
	"math"
	"testing"
)

func TestRectNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"positive", NewRect(10, 10, 100, 50), NewRect(10, 10, 100, 50)},
		{"negative width", NewRect(110, 10, -100, 50), NewRect(10, 10, 100, 50)},
		{"negative both", NewRect(110, 60, -100, -50), NewRect(10, 10, 100, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectContainsSigned(t *testing.T) {
	r := NewRect(100, 100, -50, -50)
	if !r.Contains(Pt(75, 75)) {
		t.Error("signed rect should contain its interior")
	}
	if r.Contains(Pt(125, 125)) {
		t.Error("signed rect should not contain points past its origin")
	}
}

func TestAffineInverseRoundTrip(t *testing.T) {
	view := Scale(2.5, 0.4)
	inv, ok := view.Inverse()
	if !ok {
		t.Fatal("scale transform should be invertible")
	}
	p := Pt(33, 47)
	back := inv.Apply(view.Apply(p))
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
		t.Errorf("round trip = %+v, want %+v", back, p)
	}

	if _, ok := Scale(0, 1).Inverse(); ok {
		t.Error("degenerate transform reported invertible")
	}
}

func TestArrowHead(t *testing.T) {
	tri, ok := ArrowHead(Pt(0, 0), Pt(100, 0), 14, 0.5)
	if !ok {
		t.Fatal("ArrowHead reported degenerate arrow")
	}
	if tri[0] != Pt(100, 0) {
		t.Errorf("tip = %+v, want head", tri[0])
	}
	b := BoundsOf(tri)
	if b != NewRect(86, -7, 14, 14) {
		t.Errorf("bounds = %+v, want 86,-7 14x14", b)
	}

	if _, ok := ArrowHead(Pt(5, 5), Pt(5, 5), 14, 0.5); ok {
		t.Error("zero-length arrow should have no head")
	}
}
