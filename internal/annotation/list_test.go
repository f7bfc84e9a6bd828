package annotation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"snapframe/pkg/geometry"
)

func TestAppendPreservesOrder(t *testing.T) {
	var l List
	l, i0 := l.Append(NewText(geometry.Pt(1, 2)))
	l2, i1 := l.Append(Rectangle{Position: geometry.Pt(3, 4)})

	if i0 != 0 || i1 != 1 {
		t.Errorf("indices = %d, %d, want 0, 1", i0, i1)
	}
	if l.Len() != 1 {
		t.Errorf("Append mutated the receiver: len = %d", l.Len())
	}
	if l2.Len() != 2 {
		t.Fatalf("len = %d, want 2", l2.Len())
	}
	e, err := l2.At(1)
	if err != nil {
		t.Fatalf("At(1): %v", err)
	}
	if e.Kind() != KindRectangle {
		t.Errorf("At(1).Kind() = %v, want rectangle", e.Kind())
	}
}

func TestReplaceBoundsChecked(t *testing.T) {
	l := NewList(Rectangle{}, Arrow{})

	moved := Arrow{Position: geometry.Pt(5, 5)}
	got, err := l.Replace(1, moved)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if diff := cmp.Diff([]Element{Rectangle{}, moved}, got.Elements()); diff != "" {
		t.Errorf("Replace mismatch (-want +got):\n%s", diff)
	}
	if orig, _ := l.At(1); orig != (Arrow{}) {
		t.Errorf("Replace mutated the receiver: %+v", orig)
	}

	for _, i := range []int{-1, 2} {
		if _, err := l.Replace(i, moved); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Replace(%d) err = %v, want ErrIndexOutOfRange", i, err)
		}
		if _, err := l.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d) err = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestHitTestTopmostAndSigned(t *testing.T) {
	l := NewList(
		Rectangle{Position: geometry.Pt(0, 0), Size: geometry.NewSize(100, 100)},
		// drawn up and to the left from (80, 80)
		Arrow{Position: geometry.Pt(80, 80), Size: geometry.NewSize(-40, -40)},
	)

	if got := l.HitTest(geometry.Pt(50, 50)); got != 1 {
		t.Errorf("overlap hit = %d, want 1 (topmost)", got)
	}
	if got := l.HitTest(geometry.Pt(10, 10)); got != 0 {
		t.Errorf("hit = %d, want 0", got)
	}
	if got := l.HitTest(geometry.Pt(500, 500)); got != None {
		t.Errorf("miss = %d, want None", got)
	}
}

func TestNewShapeKeepsSign(t *testing.T) {
	e, ok := NewShape(KindRectangle, geometry.Pt(110, 60), geometry.Pt(10, 10))
	if !ok {
		t.Fatal("NewShape rejected rectangle")
	}
	want := Rectangle{Position: geometry.Pt(110, 60), Size: geometry.NewSize(-100, -50)}
	if e != want {
		t.Errorf("NewShape = %+v, want %+v", e, want)
	}
	if _, ok := NewShape(KindText, geometry.Pt(0, 0), geometry.Pt(1, 1)); ok {
		t.Error("NewShape should reject text")
	}
}

func TestListJSON(t *testing.T) {
	data := []byte(`[
		{"type":"text","x":50,"y":60,"width":200,"height":40,"content":"Text goes here","isEditing":true},
		{"type":"rectangle","x":10,"y":10,"width":100,"height":50},
		{"type":"arrow","x":5,"y":5,"width":-20,"height":30}
	]`)
	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := []Element{
		Text{Position: geometry.Pt(50, 60), Size: geometry.NewSize(200, 40), Content: "Text goes here", Editing: true},
		Rectangle{Position: geometry.Pt(10, 10), Size: geometry.NewSize(100, 50)},
		Arrow{Position: geometry.Pt(5, 5), Size: geometry.NewSize(-20, 30)},
	}
	if diff := cmp.Diff(want, l.Elements()); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}

	if err := json.Unmarshal([]byte(`[{"type":"ellipse"}]`), &l); err == nil {
		t.Error("unknown type should fail to decode")
	}
}

func TestEditingIndices(t *testing.T) {
	l := NewList(NewText(geometry.Pt(0, 0)), Rectangle{}, Text{Content: "idle"})
	if diff := cmp.Diff([]int{0}, l.EditingIndices()); diff != "" {
		t.Errorf("EditingIndices mismatch (-want +got):\n%s", diff)
	}
}

func TestHitTestFlatArrow(t *testing.T) {
	// horizontal arrow from (10, 50) to (110, 50)
	l := NewList(Arrow{Position: geometry.Pt(10, 50), Size: geometry.NewSize(100, 0)})

	tests := []struct {
		p    geometry.Point2D
		want int
	}{
		{geometry.Pt(60, 50), 0},
		{geometry.Pt(60, 50.5), 0},
		{geometry.Pt(60, 52), 0},
		{geometry.Pt(108, 54), 0}, // on the head
		{geometry.Pt(60, 70), None},
		{geometry.Pt(130, 50), None},
	}
	for _, tt := range tests {
		if got := l.HitTest(tt.p); got != tt.want {
			t.Errorf("HitTest(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestHitTestTextSkipsShapes(t *testing.T) {
	l := NewList(
		Text{Position: geometry.Pt(0, 0), Size: geometry.NewSize(200, 40)},
		Rectangle{Position: geometry.Pt(50, 20)},
	)
	if got := l.HitTest(geometry.Pt(50, 20)); got != 1 {
		t.Errorf("HitTest = %d, want 1", got)
	}
	if got := l.HitTestText(geometry.Pt(50, 20)); got != 0 {
		t.Errorf("HitTestText = %d, want 0", got)
	}
	if got := l.HitTestText(geometry.Pt(300, 20)); got != None {
		t.Errorf("HitTestText miss = %d, want None", got)
	}
}

func TestListJSONNormalizesText(t *testing.T) {
	data := []byte(`[
		{"type":"text","x":1,"y":2,"content":"a","isEditing":true},
		{"type":"text","x":3,"y":4,"width":0,"height":10,"content":"b","isEditing":true},
		{"type":"rectangle","x":5,"y":6}
	]`)
	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := []Element{
		Text{Position: geometry.Pt(1, 2), Size: geometry.NewSize(DefaultTextWidth, DefaultTextHeight), Content: "a"},
		Text{Position: geometry.Pt(3, 4), Size: geometry.NewSize(0, 10), Content: "b", Editing: true},
		Rectangle{Position: geometry.Pt(5, 6)},
	}
	if diff := cmp.Diff(want, l.Elements()); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, l.EditingIndices()); diff != "" {
		t.Errorf("EditingIndices mismatch (-want +got):\n%s", diff)
	}
}
