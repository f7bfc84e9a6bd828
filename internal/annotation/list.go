package annotation

import (
	"errors"
	"fmt"

	"snapframe/pkg/geometry"
)

// ErrIndexOutOfRange is returned by indexed operations on a List.
var ErrIndexOutOfRange = errors.New("element index out of range")

// None marks the absence of an active element.
const None = -1

// List is an ordered, append-only sequence of elements. Operations that
// change it return a new List and leave the receiver untouched.
type List struct {
	items []Element
}

// NewList builds a list holding the given elements in order.
func NewList(elems ...Element) List {
	return List{items: append([]Element(nil), elems...)}
}

// Len returns the number of elements.
func (l List) Len() int { return len(l.items) }

// At returns the element at index i.
func (l List) At(i int) (Element, error) {
	if i < 0 || i >= len(l.items) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(l.items))
	}
	return l.items[i], nil
}

// Elements returns a copy of the elements in insertion order.
func (l List) Elements() []Element {
	return append([]Element(nil), l.items...)
}

// Append returns a new list with e at the end, and e's index.
func (l List) Append(e Element) (List, int) {
	items := make([]Element, len(l.items), len(l.items)+1)
	copy(items, l.items)
	items = append(items, e)
	return List{items: items}, len(l.items)
}

// Replace returns a new list with the element at i swapped for e.
func (l List) Replace(i int, e Element) (List, error) {
	if i < 0 || i >= len(l.items) {
		return l, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(l.items))
	}
	items := append([]Element(nil), l.items...)
	items[i] = e
	return List{items: items}, nil
}

// HitTest returns the index of the last-drawn element whose hit region
// contains p, or None. Arrows are hit on their head and within
// ArrowHitSlop of their box so a flat shaft can still be grabbed.
func (l List) HitTest(p geometry.Point2D) int {
	for i := len(l.items) - 1; i >= 0; i-- {
		if hitRegion(l.items[i]).Contains(p) {
			return i
		}
	}
	return None
}

// HitTestText is HitTest restricted to text elements.
func (l List) HitTestText(p geometry.Point2D) int {
	for i := len(l.items) - 1; i >= 0; i-- {
		if t, ok := l.items[i].(Text); ok && t.Bounds().Contains(p) {
			return i
		}
	}
	return None
}

func hitRegion(e Element) geometry.Rect {
	if a, ok := e.(Arrow); ok {
		return a.Extents().Inset(-ArrowHitSlop)
	}
	return e.Bounds()
}

// EditingIndices returns the indices of text elements in edit mode.
func (l List) EditingIndices() []int {
	var out []int
	for i, e := range l.items {
		if t, ok := e.(Text); ok && t.Editing {
			out = append(out, i)
		}
	}
	return out
}
