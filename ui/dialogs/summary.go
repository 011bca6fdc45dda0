package dialogs

import (
	"fmt"

	"chart-tracer/internal/chart"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// ShowSummary displays segmentation statistics for the loaded chart.
func ShowSummary(s chart.Summary, window fyne.Window) {
	text := fmt.Sprintf(
		"Rows: %d\n"+
			"Cells: %d\n"+
			"Colors: %d\n\n"+
			"Row length: %.1f ± %.1f cells\n"+
			"Region area: %.1f ± %.1f px",
		s.Rows, s.Cells, s.Colors,
		s.MeanRowLen, s.StdDevRowLen,
		s.MeanArea, s.StdDevArea)

	dialog.ShowInformation("Chart Summary", text, window)
}
