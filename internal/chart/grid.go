// Package chart converts a chart image into a logical grid of colored cells.
package chart

import (
	"chart-tracer/pkg/rgb"
)

// Grid is the finalized output of segmentation: an ordered sequence of rows,
// each an ordered sequence of cell colors. Rows may have unequal length and
// are never empty. Every color in the grid is registered in the palette that
// was consulted while building it.
type Grid [][]rgb.RGB

// Empty reports whether the grid has no rows.
func (g Grid) Empty() bool {
	return len(g) == 0
}

// CellCount returns the total number of cells across all rows.
func (g Grid) CellCount() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}

// MaxRowLen returns the length of the longest row, or 0 for an empty grid.
func (g Grid) MaxRowLen() int {
	max := 0
	for _, row := range g {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// CountByColor returns the number of cells of each color.
func (g Grid) CountByColor() map[rgb.RGB]int {
	counts := make(map[rgb.RGB]int)
	for _, row := range g {
		for _, c := range row {
			counts[c]++
		}
	}
	return counts
}
