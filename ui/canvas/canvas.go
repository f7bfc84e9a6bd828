// Package canvas provides the interactive frame preview with zoom, drawing
// tools, selection and in-place text editing.
package canvas

import (
	"image"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"snapframe/internal/annotation"
	"snapframe/internal/app"
	"snapframe/internal/interaction"
	"snapframe/internal/presentation"
	"snapframe/internal/render"
	"snapframe/pkg/geometry"
)

// AnnotationCanvas shows the composed frame at the current zoom and routes
// pointer input to the interaction controller.
type AnnotationCanvas struct {
	widget.BaseWidget

	state *app.State
	ctrl  *interaction.Controller

	// Display state
	raster  *fynecanvas.Raster
	mu      sync.Mutex
	preview image.Image
	imgSize fyne.Size

	// Container
	scroll   *zoomScroll
	content  *frameContent
	backdrop *backdrop
	editor   *textEditor
}

// zoomScroll is a widget that wraps a scroll container but intercepts wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *AnnotationCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *AnnotationCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	// Use wheel for zoom, not scroll
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

// Refresh refreshes the scroll container.
func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

// Resize sets the size of the scroll container.
func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// backdrop fills the viewport behind the frame. Taps that reach it landed
// outside the composed frame.
type backdrop struct {
	widget.BaseWidget
	canvas *AnnotationCanvas
}

func newBackdrop(ic *AnnotationCanvas) *backdrop {
	b := &backdrop{canvas: ic}
	b.ExtendBaseWidget(b)
	return b
}

func (b *backdrop) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(fynecanvas.NewRectangle(nil))
}

func (b *backdrop) Tapped(*fyne.PointEvent) {
	b.canvas.ctrl.ClickOutside()
}

// frameContent wraps the raster to handle mouse events in frame space.
type frameContent struct {
	widget.BaseWidget
	canvas *AnnotationCanvas
	raster *fynecanvas.Raster
	last   fyne.Position
	held   bool
}

func newFrameContent(ic *AnnotationCanvas, raster *fynecanvas.Raster) *frameContent {
	fc := &frameContent{
		canvas: ic,
		raster: raster,
	}
	fc.ExtendBaseWidget(fc)
	return fc
}

func (fc *frameContent) CreateRenderer() fyne.WidgetRenderer {
	return &frameContentRenderer{content: fc}
}

func (fc *frameContent) MinSize() fyne.Size {
	return fc.canvas.imgSize
}

// MouseDown forwards plain primary presses. Presses with a modifier held
// neither select, draw nor drag.
func (fc *frameContent) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || ev.Modifier != 0 {
		return
	}
	fc.held = true
	fc.last = ev.Position
	fc.canvas.ctrl.PointerDown(fc.canvas.toFrame(ev.Position))
}

func (fc *frameContent) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	fc.release(ev.Position)
}

func (fc *frameContent) release(pos fyne.Position) {
	if !fc.held {
		return
	}
	fc.held = false
	fc.canvas.ctrl.PointerUp(fc.canvas.toFrame(pos))
}

func (fc *frameContent) MouseIn(ev *desktop.MouseEvent) {
	fc.MouseMoved(ev)
}

func (fc *frameContent) MouseMoved(ev *desktop.MouseEvent) {
	fc.move(ev.Position)
}

func (fc *frameContent) MouseOut() {
	fc.canvas.ctrl.PointerLeave()
}

// Dragged covers drivers that report motion with a held button as a drag
// rather than a hover.
func (fc *frameContent) Dragged(ev *fyne.DragEvent) {
	fc.move(ev.Position)
}

func (fc *frameContent) DragEnd() {
	fc.release(fc.last)
}

func (fc *frameContent) move(pos fyne.Position) {
	if pos == fc.last && fc.held {
		return
	}
	fc.last = pos
	fc.canvas.ctrl.PointerMove(fc.canvas.toFrame(pos))
}

// Tapped swallows taps on the frame so the backdrop only sees outside clicks.
func (fc *frameContent) Tapped(*fyne.PointEvent) {}

func (fc *frameContent) DoubleTapped(ev *fyne.PointEvent) {
	fc.canvas.ctrl.DoubleClick(fc.canvas.toFrame(ev.Position))
}

type frameContentRenderer struct {
	content *frameContent
}

func (r *frameContentRenderer) Layout(size fyne.Size) {
	r.content.raster.Resize(size)
	r.content.canvas.layoutEditor()
}

func (r *frameContentRenderer) MinSize() fyne.Size {
	return r.content.canvas.imgSize
}

func (r *frameContentRenderer) Refresh() {
	r.content.raster.Refresh()
}

func (r *frameContentRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content.raster, r.content.canvas.editor}
}

func (r *frameContentRenderer) Destroy() {}

// NewAnnotationCanvas creates a canvas bound to a session and its controller.
func NewAnnotationCanvas(state *app.State, ctrl *interaction.Controller) *AnnotationCanvas {
	ic := &AnnotationCanvas{
		state:   state,
		ctrl:    ctrl,
		imgSize: fyne.NewSize(400, 300),
	}

	// Create the raster for drawing
	ic.raster = fynecanvas.NewRaster(ic.draw)
	ic.raster.ScaleMode = fynecanvas.ImageScaleSmooth
	ic.raster.SetMinSize(ic.imgSize)

	ic.editor = newTextEditor(ic)
	ic.content = newFrameContent(ic, ic.raster)
	ic.backdrop = newBackdrop(ic)

	// Frame centered over the backdrop, wheel zooms
	ic.scroll = newZoomScroll(container.NewStack(ic.backdrop, container.NewCenter(ic.content)), ic)

	for _, ev := range []app.EventType{
		app.EventImageLoaded,
		app.EventElementsChanged,
		app.EventSelectionChanged,
		app.EventToolChanged,
		app.EventPresentationChanged,
		app.EventGestureChanged,
	} {
		state.On(ev, func(interface{}) { ic.Refresh() })
	}

	ic.ExtendBaseWidget(ic)
	return ic
}

// Container returns the canvas object to place in a window.
func (ic *AnnotationCanvas) Container() fyne.CanvasObject {
	return ic
}

// ZoomIn increases the zoom level by one step.
func (ic *AnnotationCanvas) ZoomIn() {
	ic.state.UpdatePresentation(func(p *presentation.State) { p.ZoomIn() })
}

// ZoomOut decreases the zoom level by one step.
func (ic *AnnotationCanvas) ZoomOut() {
	ic.state.UpdatePresentation(func(p *presentation.State) { p.ZoomOut() })
}

// ResetZoom returns to 100%.
func (ic *AnnotationCanvas) ResetZoom() {
	ic.state.UpdatePresentation(func(p *presentation.State) { p.ResetZoom() })
}

// toFrame maps a position on the zoomed content to frame coordinates.
func (ic *AnnotationCanvas) toFrame(pos fyne.Position) geometry.Point2D {
	z := ic.state.Presentation.Zoom
	inv, ok := geometry.Scale(z, z).Inverse()
	if !ok {
		inv = geometry.Identity()
	}
	return inv.Apply(geometry.Pt(float64(pos.X), float64(pos.Y)))
}

// toScreen maps frame coordinates to a position on the zoomed content.
func (ic *AnnotationCanvas) toScreen(p geometry.Point2D) fyne.Position {
	z := ic.state.Presentation.Zoom
	q := geometry.Scale(z, z).Apply(p)
	return fyne.NewPos(float32(q.X), float32(q.Y))
}

// Refresh recomposes the preview from the session and redraws.
func (ic *AnnotationCanvas) Refresh() {
	ic.updatePreview()
	ic.updateContentSize()
	ic.syncEditor()
	ic.raster.Refresh()
}

// updatePreview composes the frame at the current zoom and adds on-screen
// chrome. It runs on the event goroutine so draw never touches the session.
func (ic *AnnotationCanvas) updatePreview() {
	sc, ok := ic.state.Scene()
	if !ok {
		ic.mu.Lock()
		ic.preview = nil
		ic.mu.Unlock()
		return
	}

	zoom := sc.Presentation.Zoom
	preview := render.Compose(sc, zoom)

	var chrome render.Chrome
	if e, ok := ic.state.ActiveElement(); ok {
		chrome.Selected = e
	}
	if ic.state.Tool == app.ToolText && ic.state.Gesture.HasHover {
		chrome.Placeholder = true
		chrome.PlaceholderAt = ic.state.Gesture.Hover
	}
	preview = render.DrawChrome(preview, chrome, zoom)

	ic.mu.Lock()
	ic.preview = preview
	ic.mu.Unlock()
}

// updateContentSize updates the content size based on frame and zoom.
func (ic *AnnotationCanvas) updateContentSize() {
	frame := ic.state.FrameSize()
	if frame.Width == 0 || frame.Height == 0 {
		ic.imgSize = fyne.NewSize(400, 300)
	} else {
		zoom := ic.state.Presentation.Zoom
		ic.imgSize = fyne.NewSize(
			float32(math.Ceil(frame.Width*zoom)),
			float32(math.Ceil(frame.Height*zoom)),
		)
	}

	ic.raster.SetMinSize(ic.imgSize)
	if ic.content != nil {
		ic.content.Resize(ic.imgSize)
		ic.content.Refresh()
	}
	if ic.scroll != nil {
		ic.scroll.Refresh()
	}
}

// draw is the raster drawing function.
func (ic *AnnotationCanvas) draw(w, h int) image.Image {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	if ic.preview == nil {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return ic.preview
}

// editingIndex returns the element in edit mode, or annotation.None.
func (ic *AnnotationCanvas) editingIndex() int {
	idx := ic.state.Elements.EditingIndices()
	if len(idx) == 0 {
		return annotation.None
	}
	return idx[len(idx)-1]
}

// CreateRenderer implements fyne.Widget.
func (ic *AnnotationCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &annotationCanvasRenderer{canvas: ic}
}

type annotationCanvasRenderer struct {
	canvas *AnnotationCanvas
}

func (r *annotationCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.scroll.Resize(size)
}

func (r *annotationCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *annotationCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *annotationCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.scroll}
}

func (r *annotationCanvasRenderer) Destroy() {}
