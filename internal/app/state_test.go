package app

import (
	"image"
	"testing"

	"snapframe/internal/annotation"
	snapimage "snapframe/internal/image"
	"snapframe/internal/presentation"
	"snapframe/pkg/geometry"
)

func TestParseTool(t *testing.T) {
	for _, want := range []Tool{ToolNone, ToolText, ToolRectangle, ToolArrow} {
		got, err := ParseTool(want.String())
		if err != nil || got != want {
			t.Errorf("ParseTool(%q) = %v, %v", want.String(), got, err)
		}
	}
	if _, err := ParseTool("lasso"); err == nil {
		t.Error("ParseTool(lasso) should fail")
	}
}

func TestSceneRequiresImage(t *testing.T) {
	s := NewState(presentation.Default())
	if _, ok := s.Scene(); ok {
		t.Error("Scene without image should report false")
	}
	if got := s.FrameSize(); got != (geometry.Size{}) {
		t.Errorf("FrameSize = %+v, want zero", got)
	}
}

func TestSceneIsSnapshot(t *testing.T) {
	s := NewState(presentation.Default())
	s.LoadImage(&snapimage.Layer{Image: image.NewRGBA(image.Rect(0, 0, 100, 50))})
	s.Elements, _ = s.Elements.Append(annotation.Rectangle{Size: geometry.NewSize(5, 5)})

	sc, ok := s.Scene()
	if !ok {
		t.Fatal("Scene reported no image")
	}
	s.Elements, _ = s.Elements.Append(annotation.Rectangle{})
	s.UpdatePresentation(func(p *presentation.State) { p.SetPadding(0) })

	if len(sc.Elements) != 1 {
		t.Errorf("snapshot elements = %d, want 1", len(sc.Elements))
	}
	if sc.Presentation.Padding != presentation.Default().Padding {
		t.Errorf("snapshot padding = %v, changed after capture", sc.Presentation.Padding)
	}
	if got := s.FrameSize(); got != geometry.NewSize(100, 50) {
		t.Errorf("FrameSize = %+v, want 100x50 with zero padding", got)
	}
}

func TestLoadImageEmits(t *testing.T) {
	s := NewState(presentation.Default())
	var loaded, selection int
	s.On(EventImageLoaded, func(interface{}) { loaded++ })
	s.On(EventSelectionChanged, func(data interface{}) {
		if data.(int) != annotation.None {
			t.Errorf("selection event = %v, want None", data)
		}
		selection++
	})

	s.Active = 3
	s.Tool = ToolArrow
	s.LoadImage(&snapimage.Layer{Image: image.NewRGBA(image.Rect(0, 0, 1, 1))})

	if loaded != 1 || selection != 1 {
		t.Errorf("loaded = %d, selection = %d, want 1, 1", loaded, selection)
	}
	if s.Active != annotation.None || s.Tool != ToolNone {
		t.Errorf("active = %d, tool = %v after load", s.Active, s.Tool)
	}
	if _, ok := s.ActiveElement(); ok {
		t.Error("ActiveElement after load should be empty")
	}
}
