package walker

import (
	"testing"

	"chart-tracer/internal/chart"
	"chart-tracer/pkg/rgb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cA = rgb.RGB{R: 1}
	cB = rgb.RGB{R: 2}
	cC = rgb.RGB{R: 3}
	cD = rgb.RGB{R: 4}
	cE = rgb.RGB{R: 5}
	cF = rgb.RGB{R: 6}
	cG = rgb.RGB{R: 7}
	cH = rgb.RGB{R: 8}
	cI = rgb.RGB{R: 9}
	cJ = rgb.RGB{R: 10}
	cK = rgb.RGB{R: 11}
	cL = rgb.RGB{R: 12}
)

// testGrid is three interleaved rows followed by two steady rows.
func testGrid() chart.Grid {
	return chart.Grid{
		{cA, cB, cC},
		{cD, cE},
		{cF, cG, cH},
		{cI, cJ},
		{cK, cL},
	}
}

func newAtStart(t *testing.T, g chart.Grid) *Walker {
	w, err := New(g, DefaultConfig().Start, DefaultConfig())
	require.NoError(t, err)
	return w
}

func cell(c rgb.RGB) *rgb.RGB { return &c }

func TestNewRejectsBadCursor(t *testing.T) {
	g := testGrid()

	_, err := New(g, Cursor{Row: -1, Col: 0}, DefaultConfig())
	assert.Error(t, err)

	_, err = New(g, Cursor{Row: 0, Col: -2}, DefaultConfig())
	assert.Error(t, err)

	_, err = New(g, Cursor{Row: len(g), Col: 0}, DefaultConfig())
	assert.Error(t, err)
}

func TestNewEarlyBandLines(t *testing.T) {
	w := newAtStart(t, testGrid())

	// At the default start the outer rows run one cell ahead of the middle.
	require.Len(t, w.Lines, 3)
	assert.Equal(t, []rgb.RGB{cA, cB}, w.Lines[0])
	assert.Equal(t, []rgb.RGB{cD}, w.Lines[1])
	assert.Equal(t, []rgb.RGB{cF, cG}, w.Lines[2])
}

func TestNewEarlyBandPreviews(t *testing.T) {
	w := newAtStart(t, testGrid())

	require.True(t, w.Current.Triple)
	assert.Equal(t, cell(cB), w.Current.Tri[0])
	assert.Equal(t, cell(cD), w.Current.Tri[1])
	assert.Equal(t, cell(cG), w.Current.Tri[2])

	require.True(t, w.Next.Triple)
	assert.Equal(t, cell(cC), w.Next.Tri[0])
	assert.Equal(t, cell(cE), w.Next.Tri[1])
	assert.Equal(t, cell(cH), w.Next.Tri[2])
}

func TestNewSteadyStateLines(t *testing.T) {
	w, err := New(testGrid(), Cursor{Row: 3, Col: 1}, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, w.Lines, 4)
	assert.Equal(t, []rgb.RGB{cA, cB, cC}, w.Lines[0])
	assert.Equal(t, []rgb.RGB{cD, cE}, w.Lines[1])
	assert.Equal(t, []rgb.RGB{cF, cG, cH}, w.Lines[2])
	assert.Equal(t, []rgb.RGB{cF, cG}, w.Lines[3])

	require.False(t, w.Current.Triple)
	assert.Equal(t, cell(cI), w.Current.Cell)
	require.False(t, w.Next.Triple)
	assert.Equal(t, cell(cJ), w.Next.Cell)
}

func TestAdvanceThroughEarlyBand(t *testing.T) {
	w := newAtStart(t, testGrid())

	w.Advance()
	assert.Equal(t, Cursor{Row: 2, Col: 2}, w.Cursor())
	assert.True(t, w.EnsureCurrentOnScreen)

	// Current took the old next; the lines grew in lockstep.
	require.True(t, w.Current.Triple)
	assert.Equal(t, cell(cC), w.Current.Tri[0])
	assert.Equal(t, cell(cE), w.Current.Tri[1])
	assert.Equal(t, cell(cH), w.Current.Tri[2])
	assert.Equal(t, []rgb.RGB{cA, cB, cC}, w.Lines[0])
	assert.Equal(t, []rgb.RGB{cD, cE}, w.Lines[1])
	assert.Equal(t, []rgb.RGB{cF, cG, cH}, w.Lines[2])

	// The interleaved rows are exhausted; next shows end of line everywhere.
	require.True(t, w.Next.Triple)
	assert.Nil(t, w.Next.Tri[0])
	assert.Nil(t, w.Next.Tri[1])
	assert.Nil(t, w.Next.Tri[2])
}

func TestAdvanceIntoSteadyState(t *testing.T) {
	w := newAtStart(t, testGrid())
	w.Advance() // finish the interleaved rows
	w.Advance() // roll over into row 3

	assert.Equal(t, Cursor{Row: 3, Col: 0}, w.Cursor())
	require.Len(t, w.Lines, 4)
	assert.Equal(t, []rgb.RGB{cI}, w.Lines[3])

	require.False(t, w.Current.Triple)
	assert.Equal(t, cell(cI), w.Current.Cell)
	require.False(t, w.Next.Triple)
	assert.Equal(t, cell(cI), w.Next.Cell)
}

func TestAdvanceToCompletion(t *testing.T) {
	w := newAtStart(t, testGrid())

	steps := 0
	for !w.Done() {
		w.Advance()
		steps++
		require.Less(t, steps, 100, "walk never finished")
	}

	assert.Equal(t, 5, steps)
	assert.Equal(t, Cursor{Row: 4, Col: 1}, w.Cursor())

	// Every cell of every row is revealed.
	require.Len(t, w.Lines, 5)
	for i, row := range testGrid() {
		assert.Equal(t, []rgb.RGB(row), w.Lines[i], "row %d", i)
	}
}

func TestLinesGrowMonotonically(t *testing.T) {
	w := newAtStart(t, testGrid())

	prev := snapshotLens(w)
	for !w.Done() {
		w.Advance()
		cur := snapshotLens(w)
		require.GreaterOrEqual(t, len(cur), len(prev))
		for i := range prev {
			assert.GreaterOrEqual(t, cur[i], prev[i], "line %d shrank", i)
		}
		prev = cur
	}
}

func snapshotLens(w *Walker) []int {
	lens := make([]int, len(w.Lines))
	for i, l := range w.Lines {
		lens[i] = len(l)
	}
	return lens
}

func TestResetRestoresStart(t *testing.T) {
	w := newAtStart(t, testGrid())
	fresh := newAtStart(t, testGrid())

	w.Advance()
	w.Advance()
	w.Advance()
	w.Reset()

	assert.Equal(t, fresh.Cursor(), w.Cursor())
	assert.Equal(t, fresh.Lines, w.Lines)
	assert.Equal(t, fresh.Current, w.Current)
	assert.Equal(t, fresh.Next, w.Next)
}

func TestDoneEmptyGrid(t *testing.T) {
	w, err := New(chart.Grid{}, DefaultConfig().Start, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, w.Done())
	assert.Empty(t, w.Lines)
}

func TestSmallGridInsideEarlyBand(t *testing.T) {
	// A two-row chart never leaves the early band.
	g := chart.Grid{{cA, cB}, {cC, cD}}
	w, err := New(g, Cursor{Row: 0, Col: 0}, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, w.Lines, 2)
	assert.Equal(t, []rgb.RGB{cA}, w.Lines[0])
	assert.Equal(t, []rgb.RGB{}, w.Lines[1])

	for !w.Done() {
		w.Advance()
	}
	assert.Equal(t, []rgb.RGB{cA, cB}, w.Lines[0])
	assert.Equal(t, []rgb.RGB{cC, cD}, w.Lines[1])
}

func TestConfigCustomBand(t *testing.T) {
	// With the band disabled, the walk is single-preview from row zero.
	cfg := Config{EarlyRowBand: 0, Start: Cursor{Row: 0, Col: 0}}
	g := chart.Grid{{cA, cB}, {cC}}

	w, err := New(g, cfg.Start, cfg)
	require.NoError(t, err)

	// EarlyRowBand of zero is replaced by the default.
	assert.Equal(t, DefaultEarlyRowBand, w.Config().EarlyRowBand)
	assert.True(t, w.Current.Triple)
}
