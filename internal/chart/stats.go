package chart

import (
	"gonum.org/v1/gonum/stat"

	"chart-tracer/pkg/rgb"
)

// Summary describes a segmented chart: totals plus distribution statistics
// over row lengths and region pixel areas. It backs the summary dialog and
// the segtest output.
type Summary struct {
	Rows   int
	Cells  int
	Colors int

	MeanRowLen   float64
	StdDevRowLen float64
	MeanArea     float64
	StdDevArea   float64

	CountByColor map[rgb.RGB]int
}

// Summarize computes chart statistics from a grid and the per-region pixel
// areas recorded during segmentation. Areas may be nil when unknown (e.g. a
// grid restored without re-segmenting).
func Summarize(g Grid, areas []int) Summary {
	counts := g.CountByColor()

	s := Summary{
		Rows:         len(g),
		Cells:        g.CellCount(),
		Colors:       len(counts),
		CountByColor: counts,
	}

	if len(g) > 0 {
		lens := make([]float64, len(g))
		for i, row := range g {
			lens[i] = float64(len(row))
		}
		s.MeanRowLen = stat.Mean(lens, nil)
		if len(lens) > 1 {
			s.StdDevRowLen = stat.StdDev(lens, nil)
		}
	}

	if len(areas) > 0 {
		fa := make([]float64, len(areas))
		for i, a := range areas {
			fa[i] = float64(a)
		}
		s.MeanArea = stat.Mean(fa, nil)
		if len(fa) > 1 {
			s.StdDevArea = stat.StdDev(fa, nil)
		}
	}

	return s
}
