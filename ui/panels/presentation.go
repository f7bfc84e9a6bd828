package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"snapframe/internal/app"
	"snapframe/internal/presentation"
	"snapframe/pkg/colorutil"
)

// PresentationPanel edits the framing parameters. Each control writes one
// field; ranges are enforced by the sliders and the presentation setters.
type PresentationPanel struct {
	state     *app.State
	container fyne.CanvasObject

	padding *widget.Slider
	inset   *widget.Slider
	radius  *widget.Slider
	shadow  *widget.Slider

	paddingLabel *widget.Label
	insetLabel   *widget.Label
	radiusLabel  *widget.Label
	shadowLabel  *widget.Label

	background *widget.Select
	ratio      *widget.Select

	saveButton     *widget.Button
	copyButton     *widget.Button
	defaultsButton *widget.Button

	onSave     func()
	onCopy     func()
	onDefaults func()
}

// NewPresentationPanel creates the panel, initialised from the session's framing.
func NewPresentationPanel(state *app.State) *PresentationPanel {
	pp := &PresentationPanel{state: state}
	p := state.Presentation

	// Initialize labels first (before any callbacks can fire)
	pp.paddingLabel = widget.NewLabel(formatPixels(p.Padding))
	pp.insetLabel = widget.NewLabel(formatPixels(p.Inset))
	pp.radiusLabel = widget.NewLabel(formatPixels(p.CornerRadius))
	pp.shadowLabel = widget.NewLabel(formatPixels(p.ShadowRadius))

	pp.padding = newRangeSlider(presentation.PaddingRange, p.Padding, pp.paddingLabel,
		func(s *presentation.State, v float64) { s.SetPadding(v) }, state)
	pp.inset = newRangeSlider(presentation.InsetRange, p.Inset, pp.insetLabel,
		func(s *presentation.State, v float64) { s.SetInset(v) }, state)
	pp.radius = newRangeSlider(presentation.CornerRadiusRange, p.CornerRadius, pp.radiusLabel,
		func(s *presentation.State, v float64) { s.SetCornerRadius(v) }, state)
	pp.shadow = newRangeSlider(presentation.ShadowRadiusRange, p.ShadowRadius, pp.shadowLabel,
		func(s *presentation.State, v float64) { s.SetShadowRadius(v) }, state)

	pp.background = widget.NewSelect(colorutil.SwatchNames(), func(selected string) {
		state.UpdatePresentation(func(s *presentation.State) {
			_ = s.SetBackground(selected)
		})
	})
	pp.background.SetSelected(p.Background.Name)

	pp.ratio = widget.NewSelect(presentation.RatioNames(), func(selected string) {
		state.UpdatePresentation(func(s *presentation.State) {
			_ = s.SetRatio(selected)
		})
	})
	pp.ratio.SetSelected(p.Ratio.String())

	pp.saveButton = widget.NewButton("Save PNG", func() {
		if pp.onSave != nil {
			pp.onSave()
		}
	})
	pp.copyButton = widget.NewButton("Copy to Clipboard", func() {
		if pp.onCopy != nil {
			pp.onCopy()
		}
	})
	pp.defaultsButton = widget.NewButton("Use as Default", func() {
		if pp.onDefaults != nil {
			pp.onDefaults()
		}
	})
	pp.setExportEnabled(state.HasImage())
	state.On(app.EventImageLoaded, func(interface{}) {
		pp.setExportEnabled(state.HasImage())
	})

	pp.container = container.NewVBox(
		widget.NewCard("Frame", "", container.NewVBox(
			labeledRow("Padding", pp.paddingLabel), pp.padding,
			labeledRow("Inset", pp.insetLabel), pp.inset,
			labeledRow("Corner radius", pp.radiusLabel), pp.radius,
			labeledRow("Shadow", pp.shadowLabel), pp.shadow,
		)),
		widget.NewCard("Background", "", container.NewVBox(
			pp.background,
			widget.NewLabel("Aspect ratio"),
			pp.ratio,
		)),
		widget.NewCard("Export", "", container.NewVBox(
			pp.saveButton,
			pp.copyButton,
			pp.defaultsButton,
		)),
	)
	return pp
}

// Container returns the panel container.
func (pp *PresentationPanel) Container() fyne.CanvasObject {
	return pp.container
}

// OnSave sets the handler for the Save PNG button.
func (pp *PresentationPanel) OnSave(fn func()) { pp.onSave = fn }

// OnCopy sets the handler for the Copy button.
func (pp *PresentationPanel) OnCopy(fn func()) { pp.onCopy = fn }

// OnDefaults sets the handler for the Use as Default button.
func (pp *PresentationPanel) OnDefaults(fn func()) { pp.onDefaults = fn }

func (pp *PresentationPanel) setExportEnabled(enabled bool) {
	for _, b := range []*widget.Button{pp.saveButton, pp.copyButton} {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

func newRangeSlider(r presentation.Range, value float64, label *widget.Label,
	set func(*presentation.State, float64), state *app.State) *widget.Slider {
	s := widget.NewSlider(r.Min, r.Max)
	s.Step = 1
	s.SetValue(value)
	s.OnChanged = func(val float64) {
		label.SetText(formatPixels(val))
		state.UpdatePresentation(func(p *presentation.State) { set(p, val) })
	}
	return s
}

func labeledRow(name string, value *widget.Label) fyne.CanvasObject {
	return container.NewBorder(nil, nil, widget.NewLabel(name), value)
}
