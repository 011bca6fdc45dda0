package chart

import (
	"image"

	"chart-tracer/internal/palette"
	"chart-tracer/pkg/rgb"
)

// Result reports the outcome of a Build pass. Exactly one of the two states
// applies: segmentation finished (Done, with the grid and region areas), or it
// suspended on a color the palette does not know yet (Color).
type Result struct {
	Done  bool
	Grid  Grid
	Areas []int   // pixel area of each consumed region, in cell order
	Color rgb.RGB // the unregistered color, when !Done
}

// Builder consumes a mutable pixel buffer and produces grid rows. Scanning is
// resumable: when an unregistered color is found the builder remembers the
// exact pixel and Build returns, so the caller can obtain labels for the color
// and call Resume to continue from that same pixel.
type Builder struct {
	img   *image.RGBA
	rows  Grid
	row   []rgb.RGB
	areas []int

	// Resume point, in image coordinates.
	x, y int
}

// NewBuilder creates a builder over the pixel buffer. The buffer is consumed
// destructively: every processed region is repainted to the separator color.
func NewBuilder(img *image.RGBA) *Builder {
	return &Builder{
		img: img,
		x:   img.Bounds().Min.X,
		y:   img.Bounds().Min.Y,
	}
}

// Build scans pixels in raster order from the resume point. Separator pixels
// are skipped. A pixel of a registered color contributes one cell to the
// current row and its whole 4-connected region is flood-filled away. A pixel
// of an unregistered color suspends the scan.
//
// At the end of each scan line a non-empty current row is pushed; scan lines
// that contributed no cells emit nothing.
func (b *Builder) Build(pal *palette.Palette) Result {
	bounds := b.img.Bounds()

	for y := b.y; y < bounds.Max.Y; y++ {
		for x := b.x; x < bounds.Max.X; x++ {
			b.x, b.y = x, y

			c := rgb.At(b.img, x, y)
			if c == rgb.Separator {
				continue
			}
			if !pal.Has(c) {
				return Result{Color: c}
			}

			b.row = append(b.row, c)
			b.areas = append(b.areas, floodFill(b.img, x, y))
		}

		if len(b.row) > 0 {
			b.rows = append(b.rows, b.row)
			b.row = nil
		}
		b.x = bounds.Min.X
	}

	return Result{Done: true, Grid: b.rows, Areas: b.areas}
}

// Resume registers the label pair for the color at the remembered suspend
// pixel, then continues scanning from exactly that pixel.
func (b *Builder) Resume(pal *palette.Palette, fullName, oneChar string) Result {
	pal.Add(rgb.At(b.img, b.x, b.y), fullName, oneChar)
	return b.Build(pal)
}

// floodFill repaints the 4-connected region of img's color at (x, y) to the
// separator color and returns the region's pixel area. It uses an explicit
// stack rather than recursion so large regions cannot exhaust the call stack.
func floodFill(img *image.RGBA, x, y int) int {
	target := rgb.At(img, x, y)
	if target == rgb.Separator {
		return 0
	}

	bounds := img.Bounds()
	stack := []image.Point{{X: x, Y: y}}
	area := 0

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Already repainted, or never part of the region.
		if rgb.At(img, p.X, p.Y) != target {
			continue
		}
		rgb.Set(img, p.X, p.Y, rgb.Separator)
		area++

		if p.X > bounds.Min.X {
			stack = append(stack, image.Point{X: p.X - 1, Y: p.Y})
		}
		if p.Y > bounds.Min.Y {
			stack = append(stack, image.Point{X: p.X, Y: p.Y - 1})
		}
		if p.X+1 < bounds.Max.X {
			stack = append(stack, image.Point{X: p.X + 1, Y: p.Y})
		}
		if p.Y+1 < bounds.Max.Y {
			stack = append(stack, image.Point{X: p.X, Y: p.Y + 1})
		}
	}

	return area
}
