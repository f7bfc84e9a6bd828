// Package mainwindow provides the main application window.
package mainwindow

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"snapframe/internal/app"
	"snapframe/internal/config"
	"snapframe/internal/export"
	"snapframe/internal/image"
	"snapframe/internal/interaction"
	"snapframe/internal/version"
	"snapframe/ui/canvas"
	"snapframe/ui/panels"
	"snapframe/ui/prefs"
)

// Clipboard is the system clipboard as the window uses it.
type Clipboard interface {
	export.Clipboard
	PasteImage() (*image.Layer, error)
}

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	ctrl      *interaction.Controller
	cfg       config.Config
	prefs     *prefs.Prefs
	clipboard Clipboard
	exporter  *export.Exporter
	watcher   *app.SourceWatcher

	canvas    *canvas.AnnotationCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label
	zoomLabel *widget.Label

	toolButtons map[app.Tool]*widget.Button
}

// New creates a new main window. cb may be nil when the system clipboard
// is unavailable; paste and copy then report an error.
func New(fyneApp fyne.App, state *app.State, cfg config.Config, p *prefs.Prefs, cb Clipboard) *MainWindow {
	win := fyneApp.NewWindow("Snapframe")

	mw := &MainWindow{
		Window:    win,
		app:       fyneApp,
		state:     state,
		ctrl:      interaction.New(state),
		cfg:       cfg,
		prefs:     p,
		clipboard: cb,
	}
	var exportCB export.Clipboard
	if cb != nil {
		exportCB = cb
	}
	mw.exporter = export.New(state, exportCB, cfg.Export.FileName)

	mw.setupUI()
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()
	mw.setupSourceWatcher()

	w, h := p.WindowSize(cfg.Window.Width, cfg.Window.Height)
	mw.Resize(fyne.NewSize(w, h))
	mw.SetCloseIntercept(mw.onClose)

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewAnnotationCanvas(mw.state, mw.ctrl)

	mw.sidePanel = panels.NewSidePanel(mw.state, mw.ctrl)
	pp := mw.sidePanel.Presentation()
	pp.OnSave(mw.onSave)
	pp.OnCopy(mw.onCopy)
	pp.OnDefaults(mw.onSaveDefaults)

	mw.statusBar = widget.NewLabel("Open or paste an image to begin")
	mw.zoomLabel = widget.NewLabel(formatZoom(mw.state.Presentation.Zoom))

	toolbar := mw.createToolbar()

	canvasArea := container.NewBorder(
		toolbar,               // top
		nil,                   // bottom
		nil,                   // left
		nil,                   // right
		mw.canvas.Container(), // center
	)

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		canvasArea,
	)
	split.SetOffset(0.25)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
}

// createToolbar creates the tool buttons and zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	mw.toolButtons = make(map[app.Tool]*widget.Button)
	tools := container.NewHBox()
	for _, t := range []app.Tool{app.ToolText, app.ToolRectangle, app.ToolArrow} {
		btn := widget.NewButton(toolLabel(t), func() { mw.ctrl.SelectTool(t) })
		btn.Disable()
		mw.toolButtons[t] = btn
		tools.Add(btn)
	}

	zoomOutBtn := widget.NewButton("-", mw.onZoomOut)
	zoomInBtn := widget.NewButton("+", mw.onZoomIn)
	actualBtn := widget.NewButton("1:1", mw.onActualSize)

	return container.NewHBox(
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		mw.zoomLabel,
		zoomInBtn,
		actualBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", mw.onOpenImage),
		fyne.NewMenuItem("Paste Image", mw.onPaste),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save PNG", mw.onSave),
		fyne.NewMenuItem("Save PNG To...", mw.onSaveTo),
		fyne.NewMenuItem("Copy PNG", mw.onCopy),
		// Quit is appended by fyne
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Text", func() { mw.ctrl.SelectTool(app.ToolText) }),
		fyne.NewMenuItem("Rectangle", func() { mw.ctrl.SelectTool(app.ToolRectangle) }),
		fyne.NewMenuItem("Arrow", func() { mw.ctrl.SelectTool(app.ToolArrow) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Deselect", mw.ctrl.Escape),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
		fyne.NewMenuItem("Actual Size", mw.onActualSize),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, toolsMenu, viewMenu, helpMenu))
}

// setupShortcuts binds the window-level keyboard shortcuts. A focused text
// editor receives copy and paste itself.
func (mw *MainWindow) setupShortcuts() {
	c := mw.Canvas()
	c.AddShortcut(&fyne.ShortcutPaste{}, func(fyne.Shortcut) { mw.onPaste() })
	c.AddShortcut(&fyne.ShortcutCopy{}, func(fyne.Shortcut) { mw.onCopy() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { mw.onSave() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { mw.onOpenImage() })
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			mw.ctrl.Escape()
		}
	})

	mw.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		for _, u := range uris {
			if image.IsSupportedFormat(u.Path()) {
				mw.loadImageFile(u.Path())
				return
			}
		}
		mw.updateStatus("Dropped file is not a supported image")
	})
}

// setupEventHandlers registers for session events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventImageLoaded, func(data interface{}) {
		layer, ok := data.(*image.Layer)
		if !ok {
			return
		}
		mw.SetTitle("Snapframe - " + layer.Name())
		mw.updateStatus(fmt.Sprintf("%s  %d×%d", layer.Name(), layer.Width(), layer.Height()))
		for _, btn := range mw.toolButtons {
			btn.Enable()
		}
	})

	mw.state.On(app.EventToolChanged, func(interface{}) {
		for t, btn := range mw.toolButtons {
			if t == mw.state.Tool {
				btn.Importance = widget.HighImportance
			} else {
				btn.Importance = widget.MediumImportance
			}
			btn.Refresh()
		}
	})

	mw.state.On(app.EventPresentationChanged, func(interface{}) {
		mw.zoomLabel.SetText(formatZoom(mw.state.Presentation.Zoom))
	})
}

// setupSourceWatcher offers a reload when the opened file changes on disk.
func (mw *MainWindow) setupSourceWatcher() {
	w, err := app.NewSourceWatcher(300 * time.Millisecond)
	if err != nil {
		log.Printf("Source watcher disabled: %v", err)
		return
	}
	mw.watcher = w
	w.OnChange(func(path string) {
		dialog.ShowConfirm("Image Changed",
			filepath.Base(path)+" changed on disk.\nReload it? Annotations will be cleared.",
			func(reload bool) {
				if reload {
					mw.loadImageFile(path)
				}
			}, mw.Window)
	})
	mw.state.On(app.EventImageLoaded, func(data interface{}) {
		path := ""
		if layer, ok := data.(*image.Layer); ok && layer.Source == image.SourceFile {
			path = layer.Path
		}
		if err := w.Watch(path); err != nil {
			log.Printf("Source watcher: %v", err)
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.Dir(prefs.KeyLastDirectory)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefs.KeyLastDirectory, filepath.Dir(filePath))
}

// exportDir is where Save writes. It prefers the remembered export
// directory, then ~/Downloads, then the home directory.
func (mw *MainWindow) exportDir() string {
	if dir := mw.prefs.Dir(prefs.KeyExportDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	downloads := filepath.Join(home, "Downloads")
	if fi, err := os.Stat(downloads); err == nil && fi.IsDir() {
		return downloads
	}
	return home
}

// Menu action handlers

func (mw *MainWindow) onOpenImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		mw.loadImageFile(path)
	}, mw.Window)

	fd.SetFilter(storage.NewExtensionFileFilter(image.SupportedFormats()))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) loadImageFile(path string) {
	if err := mw.state.LoadImageFile(path); err != nil {
		log.Printf("Failed to load image: %v", err)
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onPaste() {
	if mw.clipboard == nil {
		dialog.ShowError(errors.New("system clipboard is unavailable"), mw.Window)
		return
	}
	layer, err := mw.clipboard.PasteImage()
	if errors.Is(err, image.ErrNoImageItem) {
		mw.updateStatus("Clipboard has no image")
		return
	}
	if err != nil {
		log.Printf("Paste failed: %v", err)
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.state.LoadImage(layer)
}

func (mw *MainWindow) onSave() {
	if !mw.state.HasImage() {
		return
	}
	mw.updateStatus("Exporting...")
	mw.exporter.SaveFileAsync(mw.exportDir(), func(path string, err error) {
		if err != nil {
			mw.updateStatus("Export failed: " + err.Error())
			return
		}
		mw.updateStatus("Saved " + path)
	})
}

func (mw *MainWindow) onSaveTo() {
	if !mw.state.HasImage() {
		return
	}
	fd := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil || dir == nil {
			return
		}
		mw.prefs.SetString(prefs.KeyExportDir, dir.Path())
		mw.onSave()
	}, mw.Window)
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onCopy() {
	if !mw.state.HasImage() {
		return
	}
	if mw.clipboard == nil {
		dialog.ShowError(errors.New("system clipboard is unavailable"), mw.Window)
		return
	}
	mw.exporter.CopyAsync(func(copied bool, err error) {
		switch {
		case err != nil:
			mw.updateStatus("Copy failed: " + err.Error())
		case copied:
			mw.updateStatus("Copied frame to clipboard")
		}
	})
}

func (mw *MainWindow) onSaveDefaults() {
	mw.cfg = mw.cfg.WithPresentation(mw.state.Presentation)
	if err := config.Save(mw.cfg); err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.updateStatus("Saved frame settings as default")
}

func (mw *MainWindow) onZoomIn() {
	mw.canvas.ZoomIn()
}

func (mw *MainWindow) onZoomOut() {
	mw.canvas.ZoomOut()
}

func (mw *MainWindow) onActualSize() {
	mw.canvas.ResetZoom()
}

func (mw *MainWindow) onClose() {
	size := mw.Canvas().Size()
	mw.prefs.SetWindowSize(size.Width, size.Height)
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
	if mw.watcher != nil {
		mw.watcher.Close()
	}
	mw.Close()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Snapframe",
		fmt.Sprintf("Snapframe v%s\n\n"+
			"Frame, annotate and export screenshots.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}

func toolLabel(t app.Tool) string {
	switch t {
	case app.ToolText:
		return "Text"
	case app.ToolRectangle:
		return "Rectangle"
	case app.ToolArrow:
		return "Arrow"
	default:
		return "None"
	}
}

func formatZoom(z float64) string {
	return fmt.Sprintf("%d%%", int(z*100+0.5))
}
