// Package app holds the editing session: the loaded image, framing parameters,
// annotation list and transient gesture state.
package app

import (
	"fmt"
	"log"
	"sync"

	"snapframe/internal/annotation"
	"snapframe/internal/image"
	"snapframe/internal/presentation"
	"snapframe/internal/render"
	"snapframe/pkg/geometry"
)

// Tool is the current creation tool.
type Tool int

const (
	ToolNone Tool = iota
	ToolText
	ToolRectangle
	ToolArrow
)

func (t Tool) String() string {
	switch t {
	case ToolText:
		return "text"
	case ToolRectangle:
		return "rectangle"
	case ToolArrow:
		return "arrow"
	default:
		return "none"
	}
}

// ParseTool maps a tool name to a Tool.
func ParseTool(s string) (Tool, error) {
	for _, t := range []Tool{ToolNone, ToolText, ToolRectangle, ToolArrow} {
		if t.String() == s {
			return t, nil
		}
	}
	return ToolNone, fmt.Errorf("unknown tool %q", s)
}

// ShapeKind returns the element kind a drawing tool creates.
func (t Tool) ShapeKind() (annotation.Kind, bool) {
	switch t {
	case ToolRectangle:
		return annotation.KindRectangle, true
	case ToolArrow:
		return annotation.KindArrow, true
	default:
		return 0, false
	}
}

// Gesture is the ephemeral pointer state of one pointer-down..pointer-up sequence.
type Gesture struct {
	Drawing  bool
	Anchor   geometry.Point2D
	Dragging bool
	Last     geometry.Point2D

	// Hover is the last pointer position seen over the frame, used for the
	// text tool's placeholder preview.
	Hover    geometry.Point2D
	HasHover bool
}

// State is the single session aggregate. Handlers receive it by reference
// and all mutation happens on the UI goroutine.
type State struct {
	mu sync.RWMutex

	Image        *image.Layer
	Presentation presentation.State
	Elements     annotation.List
	Active       int // annotation.None when nothing is selected
	Tool         Tool
	Gesture      Gesture

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different session events.
type EventType int

const (
	EventImageLoaded EventType = iota
	EventElementsChanged
	EventSelectionChanged
	EventToolChanged
	EventPresentationChanged
	EventGestureChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a session with the given initial framing.
func NewState(p presentation.State) *State {
	return &State{
		Presentation: p,
		Active:       annotation.None,
		listeners:    make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// HasImage reports whether an image is loaded.
func (s *State) HasImage() bool {
	return s.Image != nil && s.Image.Image != nil
}

// LoadImage replaces the current image. Annotations, selection, tool and
// gesture state belong to the previous image and are discarded.
func (s *State) LoadImage(layer *image.Layer) {
	s.Image = layer
	s.Elements = annotation.List{}
	s.Active = annotation.None
	s.Tool = ToolNone
	s.Gesture = Gesture{}

	log.Printf("Loaded %s (%dx%d, %s)", layer.Name(), layer.Width(), layer.Height(), layer.Format)
	s.Emit(EventImageLoaded, layer)
	s.Emit(EventElementsChanged, nil)
	s.Emit(EventSelectionChanged, annotation.None)
	s.Emit(EventToolChanged, ToolNone)
}

// LoadImageFile loads an image from disk and makes it current.
func (s *State) LoadImageFile(path string) error {
	layer, err := image.Load(path)
	if err != nil {
		return err
	}
	s.LoadImage(layer)
	return nil
}

// ActiveElement returns the selected element, if any.
func (s *State) ActiveElement() (annotation.Element, bool) {
	if s.Active == annotation.None {
		return nil, false
	}
	e, err := s.Elements.At(s.Active)
	if err != nil {
		return nil, false
	}
	return e, true
}

// UpdatePresentation applies fn to the framing parameters and notifies listeners.
func (s *State) UpdatePresentation(fn func(p *presentation.State)) {
	fn(&s.Presentation)
	s.Emit(EventPresentationChanged, s.Presentation)
}

// FrameSize returns the composed frame size at zoom 1.
func (s *State) FrameSize() geometry.Size {
	if !s.HasImage() {
		return geometry.Size{}
	}
	return render.FrameSize(s.Image.Size(), s.Presentation)
}

// Scene returns a point-in-time copy of everything the composed output
// depends on. It reports false when no image is loaded.
func (s *State) Scene() (render.Scene, bool) {
	if !s.HasImage() {
		return render.Scene{}, false
	}
	return render.Scene{
		Image:        s.Image.Image,
		Presentation: s.Presentation,
		Elements:     s.Elements.Elements(),
	}, true
}
