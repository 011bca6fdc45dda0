// Package walker drives a resumable cell-by-cell walk over a chart grid,
// exposing the revealed lines and current/next cell previews.
package walker

// Cursor is a position into the grid: the row being walked and how many cells
// of it have been revealed. It is persisted after every mutation so a walk can
// be resumed across sessions.
type Cursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Defaults tuned to the staggered charts this tool was written for. The first
// three grid rows interleave visually, so the walk starts inside that band.
const (
	DefaultEarlyRowBand = 3
	DefaultStartRow     = 2
	DefaultStartCol     = 1
)

// Config carries the tunable geometry constants of the walk. The zero value
// selects the defaults.
type Config struct {
	// EarlyRowBand is the number of leading grid rows that are revealed in
	// lockstep (the hex/offset adjacency band).
	EarlyRowBand int `json:"early_row_band"`

	// Start is the cursor position a fresh or reset walk begins at.
	Start Cursor `json:"start"`
}

// DefaultConfig returns the standard walk geometry.
func DefaultConfig() Config {
	return Config{
		EarlyRowBand: DefaultEarlyRowBand,
		Start:        Cursor{Row: DefaultStartRow, Col: DefaultStartCol},
	}
}

// normalized fills in defaults for zero-valued fields.
func (c Config) normalized() Config {
	if c.EarlyRowBand <= 0 {
		c.EarlyRowBand = DefaultEarlyRowBand
	}
	return c
}
