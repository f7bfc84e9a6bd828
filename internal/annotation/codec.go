package annotation

import (
	"encoding/json"
	"fmt"

	"snapframe/pkg/geometry"
)

// record is the tagged wire form of an element.
type record struct {
	Type    string   `json:"type"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Width   *float64 `json:"width"`
	Height  *float64 `json:"height"`
	Content string   `json:"content,omitempty"`
	Editing bool     `json:"isEditing,omitempty"`
}

func toRecord(e Element) record {
	p, s := e.Origin(), e.Extent()
	w, h := s.Width, s.Height
	r := record{Type: e.Kind().String(), X: p.X, Y: p.Y, Width: &w, Height: &h}
	if t, ok := e.(Text); ok {
		r.Content = t.Content
		r.Editing = t.Editing
	}
	return r
}

// dimension returns *v, or fallback when the field was absent.
func dimension(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func (r record) element() (Element, error) {
	pos := geometry.Pt(r.X, r.Y)
	size := geometry.NewSize(dimension(r.Width, 0), dimension(r.Height, 0))
	switch r.Type {
	case "text":
		size = geometry.NewSize(dimension(r.Width, DefaultTextWidth), dimension(r.Height, DefaultTextHeight))
		return Text{Position: pos, Size: size, Content: r.Content, Editing: r.Editing}, nil
	case "rectangle":
		return Rectangle{Position: pos, Size: size}, nil
	case "arrow":
		return Arrow{Position: pos, Size: size}, nil
	default:
		return nil, fmt.Errorf("unknown element type %q", r.Type)
	}
}

// MarshalJSON encodes the list as an array of tagged records.
func (l List) MarshalJSON() ([]byte, error) {
	recs := make([]record, len(l.items))
	for i, e := range l.items {
		recs[i] = toRecord(e)
	}
	return json.Marshal(recs)
}

// UnmarshalJSON decodes an array of tagged records. Text without a width or
// height gets the default size. At most one text stays in edit mode: when
// several records set isEditing, only the last keeps it.
func (l *List) UnmarshalJSON(data []byte) error {
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return err
	}
	items := make([]Element, 0, len(recs))
	for i, r := range recs {
		e, err := r.element()
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		items = append(items, e)
	}
	editing := None
	for i, e := range items {
		if t, ok := e.(Text); ok && t.Editing {
			if editing != None {
				prev := items[editing].(Text)
				prev.Editing = false
				items[editing] = prev
			}
			editing = i
		}
	}
	l.items = items
	return nil
}
