package chart

import (
	"image"
	"testing"

	"chart-tracer/internal/palette"
	"chart-tracer/pkg/rgb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = rgb.RGB{R: 0xFF}
	blue = rgb.RGB{B: 0xFF}
)

// testImage builds a w x h buffer filled with the separator color.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rgb.Set(img, x, y, rgb.Separator)
		}
	}
	return img
}

// paintRect fills the rectangle [x0,x1) x [y0,y1) with c.
func paintRect(img *image.RGBA, x0, y0, x1, y1 int, c rgb.RGB) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			rgb.Set(img, x, y, c)
		}
	}
}

func namedPalette() *palette.Palette {
	p := palette.New()
	p.Add(red, "Red", "R")
	p.Add(blue, "Blue", "B")
	return p
}

func TestBuildSingleRegion(t *testing.T) {
	img := testImage(4, 4)
	paintRect(img, 1, 1, 3, 3, red)

	res := NewBuilder(img).Build(namedPalette())
	require.True(t, res.Done)
	assert.Equal(t, Grid{{red}}, res.Grid)
	assert.Equal(t, []int{4}, res.Areas)
}

func TestBuildRowOrdering(t *testing.T) {
	// Two regions on the same scan band make one row; a region further down
	// makes a second row.
	img := testImage(10, 8)
	paintRect(img, 1, 1, 3, 3, red)
	paintRect(img, 5, 1, 8, 3, blue)
	paintRect(img, 2, 5, 4, 7, blue)

	res := NewBuilder(img).Build(namedPalette())
	require.True(t, res.Done)
	assert.Equal(t, Grid{{red, blue}, {blue}}, res.Grid)
	assert.Equal(t, []int{4, 6, 4}, res.Areas)
}

func TestBuildSuspendsOnUnknownColor(t *testing.T) {
	img := testImage(10, 4)
	paintRect(img, 1, 1, 3, 3, red)
	paintRect(img, 5, 1, 7, 3, blue)

	pal := palette.New()
	b := NewBuilder(img)

	res := b.Build(pal)
	require.False(t, res.Done)
	assert.Equal(t, red, res.Color)

	res = b.Resume(pal, "Red", "R")
	require.False(t, res.Done)
	assert.Equal(t, blue, res.Color)

	res = b.Resume(pal, "Blue", "B")
	require.True(t, res.Done)
	assert.Equal(t, Grid{{red, blue}}, res.Grid)

	// Both colors ended up registered.
	assert.True(t, pal.Has(red))
	assert.True(t, pal.Has(blue))
}

func TestBuildResumeMatchesPrenamedScan(t *testing.T) {
	// A suspended-and-resumed scan must produce the same grid as a scan whose
	// palette already knows every color.
	build := func(pal *palette.Palette, interactive bool) Result {
		img := testImage(12, 10)
		paintRect(img, 1, 1, 3, 3, red)
		paintRect(img, 6, 2, 9, 4, blue)
		paintRect(img, 2, 6, 5, 9, red)

		b := NewBuilder(img)
		res := b.Build(pal)
		for !res.Done {
			require.True(t, interactive, "unexpected suspension")
			res = b.Resume(pal, res.Color.Hex(), "x")
			// Registering under any labels is enough to continue.
		}
		return res
	}

	want := build(namedPalette(), false)
	got := build(palette.New(), true)
	assert.Equal(t, want.Grid, got.Grid)
	assert.Equal(t, want.Areas, got.Areas)
}

func TestBuildEdgeTouchingRegion(t *testing.T) {
	img := testImage(4, 4)
	paintRect(img, 0, 0, 2, 2, red)

	res := NewBuilder(img).Build(namedPalette())
	require.True(t, res.Done)
	assert.Equal(t, Grid{{red}}, res.Grid)
	assert.Equal(t, []int{4}, res.Areas)
}

func TestBuildDiagonalRegionsStaySeparate(t *testing.T) {
	// Two same-color squares touching only at a corner are 4-connected into
	// two regions, not one.
	img := testImage(6, 6)
	paintRect(img, 1, 1, 3, 3, red)
	paintRect(img, 3, 3, 5, 5, red)

	res := NewBuilder(img).Build(namedPalette())
	require.True(t, res.Done)
	require.Len(t, res.Areas, 2)
	assert.Equal(t, Grid{{red}, {red}}, res.Grid)
}

func TestBuildAllSeparator(t *testing.T) {
	res := NewBuilder(testImage(5, 5)).Build(palette.New())
	require.True(t, res.Done)
	assert.True(t, res.Grid.Empty())
	assert.Empty(t, res.Areas)
}

func TestBuildEmptyImage(t *testing.T) {
	res := NewBuilder(image.NewRGBA(image.Rect(0, 0, 0, 0))).Build(palette.New())
	require.True(t, res.Done)
	assert.True(t, res.Grid.Empty())
}

func TestBuildNonZeroOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 14, 24))
	for y := 20; y < 24; y++ {
		for x := 10; x < 14; x++ {
			rgb.Set(img, x, y, rgb.Separator)
		}
	}
	paintRect(img, 11, 21, 13, 23, red)

	res := NewBuilder(img).Build(namedPalette())
	require.True(t, res.Done)
	assert.Equal(t, Grid{{red}}, res.Grid)
}
