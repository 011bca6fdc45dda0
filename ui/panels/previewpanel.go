// Package panels provides UI panels for the application.
package panels

import (
	"image/color"

	"chart-tracer/internal/app"
	"chart-tracer/internal/walker"
	"chart-tracer/pkg/rgb"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// previewBox shows one cell: a color swatch with the color's full name.
// An empty box (no cell) reads "End of line".
type previewBox struct {
	swatch    *fynecanvas.Rectangle
	label     *widget.Label
	container fyne.CanvasObject
}

func newPreviewBox() *previewBox {
	pb := &previewBox{
		swatch: fynecanvas.NewRectangle(color.Transparent),
		label:  widget.NewLabel(""),
	}
	pb.swatch.SetMinSize(fyne.NewSize(40, 40))
	pb.swatch.StrokeWidth = 1
	pb.swatch.StrokeColor = color.NRGBA{0x60, 0x60, 0x60, 0xFF}
	pb.container = container.NewHBox(pb.swatch, pb.label)
	return pb
}

func (pb *previewBox) set(cell *rgb.RGB, state *app.State) {
	if cell == nil {
		pb.swatch.FillColor = color.Transparent
		pb.label.SetText("End of line")
		pb.swatch.Refresh()
		return
	}

	pb.swatch.FillColor = cell.NRGBA()
	name := cell.Hex()
	if state.Progress != nil && state.Progress.Palette != nil {
		if full, err := state.Progress.Palette.FullName(*cell); err == nil {
			name = full
		}
	}
	pb.label.SetText(name)
	pb.swatch.Refresh()
}

func (pb *previewBox) hide() {
	pb.container.Hide()
}

func (pb *previewBox) show() {
	pb.container.Show()
}

// PreviewPanel shows the current cell and the next cell of the walk. While
// the walk is still inside the early rows, each preview shows three cells,
// one per lockstep row.
type PreviewPanel struct {
	state *app.State

	currentBoxes [3]*previewBox
	nextBoxes    [3]*previewBox
	doneLabel    *widget.Label
	container    fyne.CanvasObject
}

// NewPreviewPanel creates a new preview panel.
func NewPreviewPanel(state *app.State) *PreviewPanel {
	pp := &PreviewPanel{state: state}

	currentGroup := container.NewVBox()
	nextGroup := container.NewVBox()
	for i := range pp.currentBoxes {
		pp.currentBoxes[i] = newPreviewBox()
		pp.nextBoxes[i] = newPreviewBox()
		currentGroup.Add(pp.currentBoxes[i].container)
		nextGroup.Add(pp.nextBoxes[i].container)
	}

	pp.doneLabel = widget.NewLabel("")
	pp.doneLabel.Hide()

	pp.container = container.NewVBox(
		widget.NewCard("Current", "", currentGroup),
		widget.NewCard("Next", "", nextGroup),
		pp.doneLabel,
	)

	pp.Update()
	return pp
}

// Container returns the panel container.
func (pp *PreviewPanel) Container() fyne.CanvasObject {
	return pp.container
}

// Update refreshes the previews from the walker.
func (pp *PreviewPanel) Update() {
	w := pp.state.Walker
	if w == nil {
		for i := range pp.currentBoxes {
			pp.currentBoxes[i].hide()
			pp.nextBoxes[i].hide()
		}
		pp.doneLabel.Hide()
		return
	}

	pp.setPreview(pp.currentBoxes, w.Current)
	pp.setPreview(pp.nextBoxes, w.Next)

	if w.Done() {
		pp.doneLabel.SetText("Pattern complete")
		pp.doneLabel.Show()
	} else {
		pp.doneLabel.Hide()
	}
}

func (pp *PreviewPanel) setPreview(boxes [3]*previewBox, p walker.Preview) {
	if p.Triple {
		for i := range boxes {
			boxes[i].set(p.Tri[i], pp.state)
			boxes[i].show()
		}
		return
	}

	boxes[0].set(p.Cell, pp.state)
	boxes[0].show()
	boxes[1].hide()
	boxes[2].hide()
}
