package canvas

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"snapframe/internal/annotation"
)

// textEditor is the entry laid over a text element while it is in edit mode.
type textEditor struct {
	widget.Entry
	canvas  *AnnotationCanvas
	index   int
	syncing bool
}

func newTextEditor(ic *AnnotationCanvas) *textEditor {
	e := &textEditor{canvas: ic, index: annotation.None}
	e.ExtendBaseWidget(e)
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.OnChanged = func(s string) {
		if e.syncing || e.index == annotation.None {
			return
		}
		ic.ctrl.EditText(e.index, s)
	}
	e.Hide()
	return e
}

// FocusLost leaves edit mode but keeps the element selected.
func (e *textEditor) FocusLost() {
	e.Entry.FocusLost()
	if e.index != annotation.None {
		e.canvas.ctrl.Blur(e.index)
	}
}

// TypedKey clears the selection on Escape without leaving edit mode.
func (e *textEditor) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		e.canvas.ctrl.Escape()
		return
	}
	e.Entry.TypedKey(ev)
}

// syncEditor shows the editor over the element in edit mode, or hides it.
func (ic *AnnotationCanvas) syncEditor() {
	e := ic.editor
	if e == nil {
		return
	}
	idx := ic.editingIndex()
	if idx == annotation.None {
		if e.Visible() {
			e.index = annotation.None
			e.Hide()
		}
		return
	}

	el, _ := ic.state.Elements.At(idx)
	t := el.(annotation.Text)
	entering := e.index != idx || !e.Visible()
	e.index = idx
	if e.Text != t.Content {
		e.syncing = true
		e.SetText(t.Content)
		e.syncing = false
	}
	ic.layoutEditor()
	if entering {
		e.Show()
		if c := fyne.CurrentApp().Driver().CanvasForObject(ic); c != nil {
			c.Focus(e)
		}
	}
}

// layoutEditor places the editor over its element at the current zoom.
func (ic *AnnotationCanvas) layoutEditor() {
	e := ic.editor
	if e == nil || e.index == annotation.None {
		return
	}
	el, err := ic.state.Elements.At(e.index)
	if err != nil {
		return
	}
	b := el.Bounds()
	z := float32(ic.state.Presentation.Zoom)
	e.Move(ic.toScreen(b.TopLeft()))
	e.Resize(fyne.NewSize(float32(b.Width)*z, float32(b.Height)*z))
}
