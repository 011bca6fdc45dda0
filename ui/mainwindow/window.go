// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"

	"chart-tracer/internal/app"
	"chart-tracer/internal/chartimage"
	"chart-tracer/internal/version"
	"chart-tracer/ui/canvas"
	"chart-tracer/ui/dialogs"
	"chart-tracer/ui/panels"
	"chart-tracer/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const prefKeyLastDir = "lastDirectory"

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.PatternCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	prefsDirty bool
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Chart Tracer")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.setupKeys()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewPatternCanvas()
	if z := mw.prefs.Float(prefs.KeyZoom); z > 0 {
		mw.canvas.SetCellSize(z)
	}
	mw.canvas.OnZoomChange(func(cellSize float64) {
		mw.prefs.SetFloat(prefs.KeyZoom, cellSize)
		mw.prefsDirty = true
	})

	mw.sidePanel = panels.NewSidePanel(mw.state)

	mw.statusBar = widget.NewLabel("Open a chart to begin")

	toolbar := mw.createToolbar()

	canvasArea := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
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
	mw.Resize(fyne.NewSize(1000, 700))
}

// createToolbar creates the toolbar with the advance button and zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	advanceBtn := widget.NewButton("Advance (Space)", func() {
		mw.state.Advance()
	})
	advanceBtn.Importance = widget.HighImportance

	zoomOutBtn := widget.NewButton("-", func() {
		mw.canvas.ZoomOut()
	})
	zoomInBtn := widget.NewButton("+", func() {
		mw.canvas.ZoomIn()
	})

	return container.NewHBox(
		advanceBtn,
		widget.NewSeparator(),
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Chart...", mw.onOpenChart),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset Progress", mw.onResetProgress),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.canvas.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.canvas.ZoomOut),
	)

	chartMenu := fyne.NewMenu("Chart",
		fyne.NewMenuItem("Summary...", mw.onSummary),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, chartMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventChartLoaded, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.SetTitle("Chart Tracer - " + filepath.Base(path))
			mw.updateStatus("Loaded " + path)
			mw.prefs.SetString(prefs.KeyLastChart, path)
			mw.prefsDirty = true
		}
	})

	mw.state.On(app.EventColorNeeded, func(data interface{}) {
		mw.promptForColorName()
	})

	mw.state.On(app.EventSegmentationDone, func(data interface{}) {
		mw.canvas.SetWalker(mw.state.Walker)
		mw.canvas.EnsureCursorVisible()
		mw.updateCursorStatus()
	})

	mw.state.On(app.EventProgressChanged, func(data interface{}) {
		mw.canvas.Refresh()
		if w := mw.state.Walker; w != nil && w.EnsureCurrentOnScreen {
			mw.canvas.EnsureCursorVisible()
			w.EnsureCurrentOnScreen = false
		}
		mw.updateCursorStatus()
	})
}

// setupKeys binds the keyboard: space advances, R resets.
func (mw *MainWindow) setupKeys() {
	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeySpace:
			mw.state.Advance()
		case fyne.KeyR:
			mw.onResetProgress()
		}
	})
}

// promptForColorName shows the naming dialog for the color segmentation is
// suspended on.
func (mw *MainWindow) promptForColorName() {
	c, ok := mw.state.PendingColor()
	if !ok {
		return
	}
	dialogs.NewColorNameDialog(c, mw.Window, func(fullName, oneChar string) {
		mw.state.NameColor(fullName, oneChar)
	}).Show()
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// updateCursorStatus shows the walk position and completion in the status bar.
func (mw *MainWindow) updateCursorStatus() {
	w := mw.state.Walker
	if w == nil {
		return
	}
	cur := w.Cursor()
	total := w.Grid().CellCount()
	if w.Done() {
		mw.updateStatus(fmt.Sprintf("Pattern complete - %d cells", total))
		return
	}
	mw.updateStatus(fmt.Sprintf("Row %d, cell %d of %d total cells", cur.Row+1, cur.Col, total))
}

// RestoreLastChart reopens the chart from the previous session, if any.
func (mw *MainWindow) RestoreLastChart() {
	path := mw.prefs.String(prefs.KeyLastChart)
	if path == "" {
		return
	}
	if err := mw.state.LoadChart(path); err != nil {
		mw.updateStatus("Could not reopen " + path)
	}
}

// OpenChart loads a chart from the given path, reporting errors in a dialog.
func (mw *MainWindow) OpenChart(path string) {
	if err := mw.state.LoadChart(path); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

// SavePreferences writes preferences to disk.
func (mw *MainWindow) SavePreferences() {
	if err := mw.prefs.Save(); err == nil {
		mw.prefsDirty = false
	}
}

// SavePreferencesIfChanged writes preferences only if they changed since the
// last save. Called periodically from the hot reload tick.
func (mw *MainWindow) SavePreferencesIfChanged() {
	if mw.prefsDirty {
		mw.SavePreferences()
	}
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.app.Preferences().String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.app.Preferences().SetString(prefKeyLastDir, filepath.Dir(filePath))
}

// Menu action handlers

func (mw *MainWindow) onOpenChart() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		mw.OpenChart(path)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter(chartimage.SupportedFormats()))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onResetProgress() {
	if mw.state.Walker == nil {
		return
	}
	dialog.ShowConfirm("Reset Progress",
		"Restart the pattern from the beginning?",
		func(confirmed bool) {
			if confirmed {
				mw.state.ResetProgress()
			}
		}, mw.Window)
}

func (mw *MainWindow) onSummary() {
	if mw.state.Walker == nil {
		mw.updateStatus("No chart loaded")
		return
	}
	dialogs.ShowSummary(mw.state.Summary(), mw.Window)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Chart Tracer",
		fmt.Sprintf("Chart Tracer v%s\n\n"+
			"Turns a hand-drawn bead chart into a pattern you can\n"+
			"follow cell by cell, with your place saved between sessions.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
