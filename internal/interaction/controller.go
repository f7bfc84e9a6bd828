// Package interaction interprets pointer, keyboard and tool input against the
// session's annotation list.
package interaction

import (
	"log"

	"snapframe/internal/annotation"
	"snapframe/internal/app"
	"snapframe/pkg/geometry"
)

// Controller drives the gesture state machine. All methods run on the UI
// goroutine and mutate the session they were created with.
type Controller struct {
	state *app.State
}

// New creates a controller bound to a session.
func New(state *app.State) *Controller {
	return &Controller{state: state}
}

// SelectTool activates t. Selecting the active tool again turns it off.
// Any activation clears the element selection. Without an image this is a no-op.
func (c *Controller) SelectTool(t app.Tool) {
	s := c.state
	if !s.HasImage() {
		return
	}
	if s.Tool == t {
		s.Tool = app.ToolNone
	} else {
		s.Tool = t
	}
	s.Gesture = app.Gesture{}
	c.setActive(annotation.None)
	s.Emit(app.EventToolChanged, s.Tool)
}

// PointerDown handles a primary-button press at p in frame coordinates.
// It reports whether the press landed on an element, in which case the
// caller must not treat it as an outside click.
func (c *Controller) PointerDown(p geometry.Point2D) bool {
	s := c.state
	if !s.HasImage() {
		return false
	}

	switch s.Tool {
	case app.ToolText:
		c.placeText(p)
		return true

	case app.ToolRectangle, app.ToolArrow:
		s.Gesture.Drawing = true
		s.Gesture.Anchor = p
		s.Emit(app.EventGestureChanged, nil)
		return true
	}

	hit := s.Elements.HitTest(p)
	if hit == annotation.None {
		return false
	}
	if hit == s.Active {
		s.Gesture.Dragging = true
		s.Gesture.Last = p
		s.Emit(app.EventGestureChanged, nil)
		return true
	}
	c.setActive(hit)
	return true
}

// PointerMove handles pointer motion at p.
func (c *Controller) PointerMove(p geometry.Point2D) {
	s := c.state
	if s.Tool == app.ToolText {
		s.Gesture.Hover = p
		s.Gesture.HasHover = true
		s.Emit(app.EventGestureChanged, nil)
		return
	}
	if !s.Gesture.Dragging {
		return
	}

	delta := p.Sub(s.Gesture.Last)
	s.Gesture.Last = p
	e, ok := s.ActiveElement()
	if !ok {
		s.Gesture.Dragging = false
		return
	}
	c.replace(s.Active, e.Translate(delta))
}

// PointerUp completes the current gesture at p.
func (c *Controller) PointerUp(p geometry.Point2D) {
	s := c.state
	switch {
	case s.Gesture.Drawing:
		anchor := s.Gesture.Anchor
		s.Gesture.Drawing = false
		kind, ok := s.Tool.ShapeKind()
		if !ok {
			return
		}
		shape, _ := annotation.NewShape(kind, anchor, p)
		s.Elements, _ = s.Elements.Append(shape)
		s.Tool = app.ToolNone
		s.Emit(app.EventElementsChanged, nil)
		s.Emit(app.EventToolChanged, s.Tool)

	case s.Gesture.Dragging:
		s.Gesture.Dragging = false
		s.Emit(app.EventGestureChanged, nil)
	}
}

// PointerLeave clears the hover point when the pointer leaves the frame.
func (c *Controller) PointerLeave() {
	if c.state.Gesture.HasHover {
		c.state.Gesture.HasHover = false
		c.state.Emit(app.EventGestureChanged, nil)
	}
}

// DoubleClick enters edit mode on the topmost text element under p,
// regardless of the current tool or of shapes drawn over it. Any other
// element in edit mode leaves it first. It reports whether p is over any
// element.
func (c *Controller) DoubleClick(p geometry.Point2D) bool {
	s := c.state
	hit := s.Elements.HitTestText(p)
	if hit == annotation.None {
		return s.Elements.HitTest(p) != annotation.None
	}
	e, _ := s.Elements.At(hit)
	t := e.(annotation.Text)
	c.stopEditing(hit)
	t.Editing = true
	c.replace(hit, t)
	c.setActive(hit)
	return true
}

// EditText overwrites the content of the text element at i while it is in
// edit mode.
func (c *Controller) EditText(i int, content string) {
	e, err := c.state.Elements.At(i)
	if err != nil {
		log.Printf("EditText: %v", err)
		return
	}
	t, ok := e.(annotation.Text)
	if !ok || !t.Editing {
		return
	}
	t.Content = content
	c.replace(i, t)
}

// Blur leaves edit mode on the text element at i. Selection is kept.
func (c *Controller) Blur(i int) {
	e, err := c.state.Elements.At(i)
	if err != nil {
		return
	}
	if t, ok := e.(annotation.Text); ok && t.Editing {
		t.Editing = false
		c.replace(i, t)
	}
}

// Select makes element i active, as a click on it would. Out-of-range
// indices are ignored.
func (c *Controller) Select(i int) {
	if _, err := c.state.Elements.At(i); err != nil {
		return
	}
	c.setActive(i)
}

// Escape clears the selection.
func (c *Controller) Escape() {
	c.setActive(annotation.None)
}

// ClickOutside clears the selection after a click outside the frame.
func (c *Controller) ClickOutside() {
	c.setActive(annotation.None)
}

func (c *Controller) placeText(p geometry.Point2D) {
	s := c.state
	c.stopEditing(annotation.None)
	var idx int
	s.Elements, idx = s.Elements.Append(annotation.NewText(p))
	s.Tool = app.ToolNone
	s.Gesture = app.Gesture{}
	s.Emit(app.EventElementsChanged, nil)
	s.Emit(app.EventToolChanged, s.Tool)
	c.setActive(idx)
}

// stopEditing takes every text element except keep out of edit mode.
func (c *Controller) stopEditing(keep int) {
	for _, i := range c.state.Elements.EditingIndices() {
		if i != keep {
			c.Blur(i)
		}
	}
}

func (c *Controller) replace(i int, e annotation.Element) {
	list, err := c.state.Elements.Replace(i, e)
	if err != nil {
		log.Printf("replace element: %v", err)
		return
	}
	c.state.Elements = list
	c.state.Emit(app.EventElementsChanged, i)
}

func (c *Controller) setActive(i int) {
	if c.state.Active == i {
		return
	}
	c.state.Active = i
	c.state.Emit(app.EventSelectionChanged, i)
}
