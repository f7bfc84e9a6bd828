// Package panels provides UI panels for the application.
package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"snapframe/internal/annotation"
	"snapframe/internal/app"
	"snapframe/internal/interaction"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	container *container.AppTabs

	// Tab content
	presentationPanel *PresentationPanel
	elementsPanel     *ElementsPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State, ctrl *interaction.Controller) *SidePanel {
	sp := &SidePanel{state: state}

	sp.presentationPanel = NewPresentationPanel(state)
	sp.elementsPanel = NewElementsPanel(state, ctrl)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Frame", container.NewVScroll(sp.presentationPanel.Container())),
		container.NewTabItem("Elements", sp.elementsPanel.Container()),
	)
	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// Presentation returns the framing panel.
func (sp *SidePanel) Presentation() *PresentationPanel {
	return sp.presentationPanel
}

// ElementsPanel lists the annotation elements in stacking order and lets
// the user select one.
type ElementsPanel struct {
	state     *app.State
	ctrl      *interaction.Controller
	container fyne.CanvasObject

	list     *widget.List
	empty    *widget.Label
	updating bool
}

// NewElementsPanel creates the elements list.
func NewElementsPanel(state *app.State, ctrl *interaction.Controller) *ElementsPanel {
	ep := &ElementsPanel{state: state, ctrl: ctrl}

	ep.empty = widget.NewLabel("No annotations yet. Pick a tool and click the frame.")
	ep.empty.Wrapping = fyne.TextWrapWord

	ep.list = widget.NewList(
		func() int { return state.Elements.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			e, err := state.Elements.At(id)
			if err != nil {
				return
			}
			obj.(*widget.Label).SetText(describeElement(e))
		},
	)
	ep.list.OnSelected = func(id widget.ListItemID) {
		if ep.updating {
			return
		}
		ctrl.Select(id)
	}

	state.On(app.EventElementsChanged, func(interface{}) { ep.Sync() })
	state.On(app.EventSelectionChanged, func(interface{}) { ep.Sync() })

	ep.container = container.NewBorder(ep.empty, nil, nil, nil, ep.list)
	ep.Sync()
	return ep
}

// Container returns the panel container.
func (ep *ElementsPanel) Container() fyne.CanvasObject {
	return ep.container
}

// Sync refreshes the list and mirrors the session's selection.
func (ep *ElementsPanel) Sync() {
	ep.updating = true
	defer func() { ep.updating = false }()

	if ep.state.Elements.Len() == 0 {
		ep.empty.Show()
	} else {
		ep.empty.Hide()
	}
	ep.list.Refresh()
	if ep.state.Active == annotation.None {
		ep.list.UnselectAll()
	} else {
		ep.list.Select(ep.state.Active)
	}
}
