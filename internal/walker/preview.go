package walker

import (
	"chart-tracer/pkg/rgb"
)

// Preview is the current or next cell(s) shown to the user. It is a tagged
// union: a single optional cell in the steady state, or a triple of optional
// cells (one per early-band row) while the cursor is inside the early band.
// Nil slots mean "end of line".
type Preview struct {
	Triple bool
	Cell   *rgb.RGB    // single-cell preview; nil past the end of the row
	Tri    [3]*rgb.RGB // triple preview, indexed by early-band row
}

// Single creates a single-cell preview.
func Single(c *rgb.RGB) Preview {
	return Preview{Cell: c}
}

// Triple3 creates a triple preview spanning the three early-band rows.
func Triple3(a, b, c *rgb.RGB) Preview {
	return Preview{Triple: true, Tri: [3]*rgb.RGB{a, b, c}}
}
