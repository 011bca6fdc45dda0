// Package canvas provides the pattern canvas: a zoomable raster view of the
// walked chart.
package canvas

import (
	"image"
	"image/color"

	"chart-tracer/internal/walker"
	"chart-tracer/pkg/rgb"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	minCellSize     = 6.0
	maxCellSize     = 64.0
	defaultCellSize = 24.0
	zoomStep        = 1.25

	// Rows of context kept visible above and below the active row when the
	// canvas scrolls to follow the walk.
	overscrollRows = 2
)

// PatternCanvas renders the revealed portion of the walk as a brick layout:
// one square per cell, odd rows offset by half a cell. Only cells the walk
// has reached are drawn; the rest of the chart stays hidden.
type PatternCanvas struct {
	widget.BaseWidget

	walker *walker.Walker

	raster   *fynecanvas.Raster
	cellSize float64
	imgSize  fyne.Size

	scroll  *zoomScroll
	content *fyne.Container

	onZoomChange func(cellSize float64)
}

// zoomScroll wraps a scroll container but intercepts the wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *PatternCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *PatternCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	// Wheel zooms; the scrollbars still pan.
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

func (zs *zoomScroll) Offset() fyne.Position {
	return zs.scroll.Offset
}

func (zs *zoomScroll) SetOffset(off fyne.Position) {
	zs.scroll.Offset = off
	zs.scroll.Refresh()
}

func (zs *zoomScroll) Size() fyne.Size {
	return zs.scroll.Size()
}

func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// NewPatternCanvas creates an empty pattern canvas.
func NewPatternCanvas() *PatternCanvas {
	pc := &PatternCanvas{
		cellSize: defaultCellSize,
		imgSize:  fyne.NewSize(400, 300),
	}

	pc.raster = fynecanvas.NewRaster(pc.draw)
	pc.raster.ScaleMode = fynecanvas.ImageScalePixels
	pc.raster.SetMinSize(pc.imgSize)

	pc.content = container.NewWithoutLayout(pc.raster)
	pc.scroll = newZoomScroll(pc.content, pc)

	pc.ExtendBaseWidget(pc)
	return pc
}

// Container returns the canvas container for embedding in layouts.
func (pc *PatternCanvas) Container() fyne.CanvasObject {
	return pc.scroll
}

// SetWalker attaches the walk the canvas renders. Pass nil to clear.
func (pc *PatternCanvas) SetWalker(w *walker.Walker) {
	pc.walker = w
	pc.updateContentSize()
}

// CellSize returns the rendered size of one cell in pixels.
func (pc *PatternCanvas) CellSize() float64 {
	return pc.cellSize
}

// SetCellSize sets the rendered size of one cell in pixels, clamped.
func (pc *PatternCanvas) SetCellSize(size float64) {
	if size < minCellSize {
		size = minCellSize
	}
	if size > maxCellSize {
		size = maxCellSize
	}
	pc.cellSize = size
	pc.updateContentSize()

	if pc.onZoomChange != nil {
		pc.onZoomChange(size)
	}
}

// ZoomIn increases the cell size.
func (pc *PatternCanvas) ZoomIn() {
	pc.SetCellSize(pc.cellSize * zoomStep)
}

// ZoomOut decreases the cell size.
func (pc *PatternCanvas) ZoomOut() {
	pc.SetCellSize(pc.cellSize / zoomStep)
}

// OnZoomChange sets a callback for cell size changes.
func (pc *PatternCanvas) OnZoomChange(callback func(cellSize float64)) {
	pc.onZoomChange = callback
}

// Refresh redraws the canvas.
func (pc *PatternCanvas) Refresh() {
	pc.raster.Refresh()
}

// EnsureCursorVisible scrolls so the active row stays in view, keeping a few
// rows of context above and below it.
func (pc *PatternCanvas) EnsureCursorVisible() {
	if pc.walker == nil {
		return
	}

	frame := float64(pc.scroll.Size().Height)
	if frame <= 0 {
		return
	}
	content := float64(len(pc.walker.Grid())) * pc.cellSize
	current := float64(pc.walker.Cursor().Row) * pc.cellSize
	pad := overscrollRows * pc.cellSize

	offset := float64(pc.scroll.Offset().Y)
	if current < offset+pad {
		offset = current - pad
	} else if current+pad+pc.cellSize > offset+frame {
		offset = current + pad + pc.cellSize - frame
	}
	if offset > content-frame {
		offset = content - frame
	}
	if offset < 0 {
		offset = 0
	}

	pc.scroll.SetOffset(fyne.NewPos(pc.scroll.Offset().X, float32(offset)))
}

// updateContentSize sizes the raster to the full chart footprint so the
// scroll extent never changes while the walk advances.
func (pc *PatternCanvas) updateContentSize() {
	if pc.walker == nil || len(pc.walker.Grid()) == 0 {
		pc.imgSize = fyne.NewSize(400, 300)
	} else {
		grid := pc.walker.Grid()
		width := float32((float64(grid.MaxRowLen()) + 0.5) * pc.cellSize)
		height := float32(float64(len(grid)) * pc.cellSize)
		pc.imgSize = fyne.NewSize(width, height)
	}

	pc.raster.SetMinSize(pc.imgSize)
	pc.raster.Resize(pc.imgSize)
	pc.content.Resize(pc.imgSize)
	pc.raster.Refresh()
	pc.scroll.Refresh()
}

// draw is the raster drawing function.
func (pc *PatternCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(output, 0, 0, w, h, rgb.Separator.NRGBA())

	if pc.walker == nil {
		return output
	}

	cell := pc.cellSize
	for i, line := range pc.walker.Lines {
		y0 := int(float64(i) * cell)
		// Odd rows sit half a cell to the right, like beads on a wire.
		rowShift := 0.0
		if i%2 == 1 {
			rowShift = cell / 2
		}
		for j, c := range line {
			x0 := int(float64(j)*cell + rowShift)
			fillRect(output, x0+1, y0+1, x0+int(cell)-1, y0+int(cell)-1, c.NRGBA())
		}
	}

	for _, p := range pc.highlightCells() {
		rowShift := 0.0
		if p.Y%2 == 1 {
			rowShift = cell / 2
		}
		x0 := int(float64(p.X)*cell + rowShift)
		y0 := int(float64(p.Y) * cell)
		strokeRect(output, x0, y0, x0+int(cell), y0+int(cell), color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF})
	}

	return output
}

// highlightCells returns the (col, row) positions of the newest cells: the
// tails of the rows the walk is actively growing.
func (pc *PatternCanvas) highlightCells() []image.Point {
	w := pc.walker
	if w == nil || len(w.Lines) == 0 {
		return nil
	}

	var cells []image.Point
	if w.Cursor().Row < w.Config().EarlyRowBand {
		// The first rows grow in lockstep; mark each tail.
		for i := 0; i < len(w.Lines) && i < w.Config().EarlyRowBand; i++ {
			if n := len(w.Lines[i]); n > 0 {
				cells = append(cells, image.Point{X: n - 1, Y: i})
			}
		}
		return cells
	}

	last := len(w.Lines) - 1
	if n := len(w.Lines[last]); n > 0 {
		cells = append(cells, image.Point{X: n - 1, Y: last})
	}
	return cells
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	bounds := img.Bounds()
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if x1 > bounds.Max.X {
		x1 = bounds.Max.X
	}
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}
	cc := color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, cc)
		}
	}
}

func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	fillRect(img, x0, y0, x1, y0+2, c)
	fillRect(img, x0, y1-2, x1, y1, c)
	fillRect(img, x0, y0, x0+2, y1, c)
	fillRect(img, x1-2, y0, x1, y1, c)
}

// CreateRenderer implements fyne.Widget.
func (pc *PatternCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.scroll)
}
