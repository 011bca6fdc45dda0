package panels

import (
	"fmt"
	"image/color"

	"chart-tracer/internal/app"
	"chart-tracer/internal/palette"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PalettePanel shows the legend for the segmented chart: one row per named
// color with its swatch, short code, full name, and cell count.
type PalettePanel struct {
	state *app.State

	rows      *fyne.Container
	container fyne.CanvasObject
}

// NewPalettePanel creates a new palette panel.
func NewPalettePanel(state *app.State) *PalettePanel {
	pp := &PalettePanel{
		state: state,
		rows:  container.NewVBox(),
	}
	pp.container = container.NewVScroll(pp.rows)
	pp.Rebuild()
	return pp
}

// Container returns the panel container.
func (pp *PalettePanel) Container() fyne.CanvasObject {
	return pp.container
}

// Rebuild regenerates the legend rows. Call after segmentation finishes or
// the palette changes.
func (pp *PalettePanel) Rebuild() {
	pp.rows.RemoveAll()

	pal := pp.paletteOrNil()
	if pal == nil || pal.Len() == 0 {
		pp.rows.Add(widget.NewLabel("No colors yet"))
		pp.rows.Refresh()
		return
	}

	counts := pp.state.Grid.CountByColor()
	for _, c := range pal.Colors() {
		swatch := fynecanvas.NewRectangle(c.NRGBA())
		swatch.SetMinSize(fyne.NewSize(24, 24))
		swatch.StrokeWidth = 1
		swatch.StrokeColor = color.NRGBA{0x60, 0x60, 0x60, 0xFF}

		oneChar, _ := pal.OneChar(c)
		fullName, _ := pal.FullName(c)

		code := widget.NewLabel(oneChar)
		code.TextStyle = fyne.TextStyle{Monospace: true}

		name := widget.NewLabel(fullName)
		count := widget.NewLabel(fmt.Sprintf("%d cells", counts[c]))

		pp.rows.Add(container.NewHBox(swatch, code, name, count))
	}
	pp.rows.Refresh()
}

func (pp *PalettePanel) paletteOrNil() *palette.Palette {
	if pp.state.Progress == nil {
		return nil
	}
	return pp.state.Progress.Palette
}
