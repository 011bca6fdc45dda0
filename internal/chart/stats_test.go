package chart

import (
	"testing"

	"chart-tracer/pkg/rgb"

	"github.com/stretchr/testify/assert"
)

func TestGridHelpers(t *testing.T) {
	g := Grid{{red, blue, red}, {blue}}

	assert.False(t, g.Empty())
	assert.Equal(t, 4, g.CellCount())
	assert.Equal(t, 3, g.MaxRowLen())
	assert.Equal(t, map[rgb.RGB]int{red: 2, blue: 2}, g.CountByColor())

	var empty Grid
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.CellCount())
	assert.Equal(t, 0, empty.MaxRowLen())
}

func TestSummarize(t *testing.T) {
	g := Grid{{red, blue}, {blue, red}}
	areas := []int{4, 4, 6, 6}

	s := Summarize(g, areas)
	assert.Equal(t, 2, s.Rows)
	assert.Equal(t, 4, s.Cells)
	assert.Equal(t, 2, s.Colors)
	assert.InDelta(t, 2.0, s.MeanRowLen, 1e-9)
	assert.InDelta(t, 0.0, s.StdDevRowLen, 1e-9)
	assert.InDelta(t, 5.0, s.MeanArea, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Equal(t, 0, s.Rows)
	assert.Equal(t, 0, s.Cells)
	assert.Equal(t, 0, s.Colors)
}
