package walker

import (
	"fmt"

	"chart-tracer/internal/chart"
	"chart-tracer/pkg/rgb"
)

// Walker owns a grid and a cursor and derives, at every position, the revealed
// line prefix and the current/next previews. It performs no I/O; the UI drives
// it through Advance and Reset and persists the cursor after each mutation.
//
// Lines, Current, Next, and EnsureCurrentOnScreen are read by rendering code
// and mutated only by the walker itself.
type Walker struct {
	// Lines is the revealed prefix of the grid.
	Lines [][]rgb.RGB

	// Current and Next preview the cell under the cursor and the one after it.
	Current Preview
	Next    Preview

	// EnsureCurrentOnScreen is set by every Advance; the viewport reads it,
	// scrolls the current cell into view, and clears it.
	EnsureCurrentOnScreen bool

	grid   chart.Grid
	cfg    Config
	cursor Cursor
}

// New constructs a walker positioned at cursor. The cursor must be inside the
// grid: a steady-state row at or past the end of the grid is rejected.
func New(grid chart.Grid, cursor Cursor, cfg Config) (*Walker, error) {
	cfg = cfg.normalized()

	if cursor.Row < 0 || cursor.Col < 0 {
		return nil, fmt.Errorf("cursor (%d,%d) is negative", cursor.Row, cursor.Col)
	}
	if cursor.Row >= cfg.EarlyRowBand && cursor.Row >= len(grid) {
		return nil, fmt.Errorf("cursor row %d outside grid of %d rows", cursor.Row, len(grid))
	}

	w := &Walker{grid: grid, cfg: cfg, cursor: cursor}
	w.initLines()
	w.Current = w.currentPreview()
	w.Next = w.nextPreview()
	return w, nil
}

// Cursor returns the current position.
func (w *Walker) Cursor() Cursor {
	return w.cursor
}

// Grid returns the underlying grid.
func (w *Walker) Grid() chart.Grid {
	return w.grid
}

// Config returns the walk geometry.
func (w *Walker) Config() Config {
	return w.cfg
}

// initLines rebuilds the revealed lines from the cursor alone.
//
// Inside the early band the first three source rows are interleaved on the
// physical chart, so they are revealed in lockstep: the middle row runs one
// cell behind its neighbors. Past the band, lines are the leading full rows
// plus a partial line of Col+1 cells.
func (w *Walker) initLines() {
	if w.cursor.Row < w.cfg.EarlyRowBand {
		takes := [3]int{w.cursor.Col + 1, w.cursor.Col, w.cursor.Col + 1}
		w.Lines = nil
		for i := 0; i < 3 && i < len(w.grid); i++ {
			w.Lines = append(w.Lines, prefix(w.grid[i], takes[i]))
		}
		return
	}

	lines := make([][]rgb.RGB, 0, w.cursor.Row+1)
	for i := 0; i < w.cursor.Row; i++ {
		lines = append(lines, prefix(w.grid[i], len(w.grid[i])))
	}
	lines = append(lines, prefix(w.grid[w.cursor.Row-1], w.cursor.Col+1))
	w.Lines = lines
}

// Advance moves the walk forward one cell: the next preview becomes current,
// the revealed lines grow, and the cursor steps to the following cell or row.
//
// Calling Advance once Done reports true is a programming error; the walker
// deliberately does not guard against it beyond yielding nil previews at the
// grid edges.
func (w *Walker) Advance() {
	w.EnsureCurrentOnScreen = true
	w.cursor.Col++
	w.Current = w.Next

	if w.doneWithLine() {
		w.cursor.Row++
		w.cursor.Col = 0
		w.Lines = append(w.Lines, nil)
		w.Current = Single(cellAt(w.grid, w.cursor.Row, 0))
	}

	if w.cursor.Row < w.cfg.EarlyRowBand {
		// Grow the three interleaved lines wherever the source row still has
		// a cell at the new length.
		for i := 0; i < 3 && i < len(w.grid) && i < len(w.Lines); i++ {
			if n := len(w.Lines[i]); n < len(w.grid[i]) {
				w.Lines[i] = append(w.Lines[i], w.grid[i][n])
			}
		}
	} else if n := len(w.Lines); n > 0 {
		last := w.Lines[n-1]
		if len(last) < len(w.grid[w.cursor.Row]) {
			w.Lines[n-1] = append(last, w.grid[w.cursor.Row][len(last)])
		}
	}

	w.Next = w.nextPreview()
}

// Reset restores the cursor to the configured start position and rebuilds the
// revealed lines and previews from scratch. The grid is untouched.
func (w *Walker) Reset() {
	w.cursor = w.cfg.Start
	w.initLines()
	w.Current = w.currentPreview()
	w.Next = w.nextPreview()
}

// Done reports whether the cursor has reached the final cell of the final
// row. An empty grid is immediately done.
func (w *Walker) Done() bool {
	if len(w.grid) == 0 {
		return true
	}
	lastLen := len(w.grid[len(w.grid)-1])
	if lastLen == 0 {
		lastLen = 1
	}
	return w.cursor.Row >= len(w.grid)-1 && w.cursor.Col >= lastLen-1
}

// doneWithLine reports whether the line being built has reached its full
// length: the longest of the interleaved rows inside the early band, the
// cursor's own row past it.
func (w *Walker) doneWithLine() bool {
	if w.cursor.Row < w.cfg.EarlyRowBand {
		max := 0
		for i := 0; i < 3 && i < len(w.grid); i++ {
			if len(w.grid[i]) > max {
				max = len(w.grid[i])
			}
		}
		return w.cursor.Col >= max
	}
	return w.cursor.Col >= len(w.grid[w.cursor.Row])
}

// currentPreview derives the current-cell preview from the cursor position.
func (w *Walker) currentPreview() Preview {
	if w.cursor.Row >= w.cfg.EarlyRowBand {
		return Single(cellAt(w.grid, w.cursor.Row, w.cursor.Col-1))
	}
	return Triple3(
		cellAt(w.grid, 0, w.cursor.Col),
		cellAt(w.grid, 1, w.cursor.Col-1),
		cellAt(w.grid, 2, w.cursor.Col),
	)
}

// nextPreview derives the next-cell preview from the cursor position.
func (w *Walker) nextPreview() Preview {
	if w.cursor.Row >= w.cfg.EarlyRowBand {
		return Single(cellAt(w.grid, w.cursor.Row, w.cursor.Col))
	}
	return Triple3(
		cellAt(w.grid, 0, w.cursor.Col+1),
		cellAt(w.grid, 1, w.cursor.Col),
		cellAt(w.grid, 2, w.cursor.Col+1),
	)
}

// cellAt returns a copy of grid[row][col], or nil when either index is out of
// range.
func cellAt(g chart.Grid, row, col int) *rgb.RGB {
	if row < 0 || row >= len(g) {
		return nil
	}
	if col < 0 || col >= len(g[row]) {
		return nil
	}
	c := g[row][col]
	return &c
}

// prefix copies the first n cells of a row, saturating at the row length.
func prefix(row []rgb.RGB, n int) []rgb.RGB {
	if n > len(row) {
		n = len(row)
	}
	out := make([]rgb.RGB, n)
	copy(out, row[:n])
	return out
}
