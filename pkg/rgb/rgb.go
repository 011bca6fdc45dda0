// Package rgb provides the shared RGB color value type for the chart tracer.
package rgb

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
)

// Separator is the outline color that delimits cells in a chart image.
// Pixels of this color are never part of a cell.
var Separator = RGB{R: 32, G: 32, B: 32}

// RGB is an 8-bit-per-channel color. It is comparable and usable as a map key;
// two colors are equal iff all three channels match exactly.
type RGB struct {
	R, G, B uint8
}

// New creates an RGB from three channel values.
func New(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// FromColor converts any color.Color to an RGB, discarding alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// At reads the color at (x, y) from an RGBA buffer. The coordinates must be
// inside the buffer's bounds.
func At(img *image.RGBA, x, y int) RGB {
	i := img.PixOffset(x, y)
	return RGB{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
}

// Set writes the color at (x, y) into an RGBA buffer, leaving alpha opaque.
func Set(img *image.RGBA, x, y int, c RGB) {
	i := img.PixOffset(x, y)
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = 0xFF
}

// Hex renders the color as "#RRGGBB" with uppercase hex digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NRGBA converts to a color.NRGBA with full opacity, for rendering.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler using the hex form, so maps
// keyed by RGB serialize as readable JSON objects.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting "#RRGGBB".
func (c *RGB) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", s, err)
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8)
	c.B = uint8(v)
	return nil
}
