package panels

import (
	"chart-tracer/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	container *container.AppTabs

	previewPanel *PreviewPanel
	palettePanel *PalettePanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State) *SidePanel {
	sp := &SidePanel{state: state}

	sp.previewPanel = NewPreviewPanel(state)
	sp.palettePanel = NewPalettePanel(state)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Preview", sp.previewPanel.Container()),
		container.NewTabItem("Palette", sp.palettePanel.Container()),
	)

	sp.wireEvents()
	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

func (sp *SidePanel) wireEvents() {
	sp.state.On(app.EventSegmentationDone, func(data interface{}) {
		sp.palettePanel.Rebuild()
		sp.previewPanel.Update()
	})
	sp.state.On(app.EventProgressChanged, func(data interface{}) {
		sp.previewPanel.Update()
	})
}
