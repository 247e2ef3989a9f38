package components

import (
	"math"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/lesson"
	"github.com/abhisek/daepyo/internal/ui/theme"
)

// DataChips renders a dataset as a row of value chips, drawing the
// highlighted indices in the outlier or mode style. Chips wrap onto more
// rows when they do not fit in width.
func DataChips(data []float64, h lesson.Highlight, width int) string {
	chipStyle := theme.Chip
	switch h.Kind {
	case lesson.HighlightOutlier:
		chipStyle = theme.ChipOutlier
	case lesson.HighlightMode:
		chipStyle = theme.ChipMode
	}

	var rows []string
	var row []string
	rowWidth := 0
	for i, v := range data {
		style := theme.Chip
		if h.Has(i) {
			style = chipStyle
		}
		chip := style.Render(FormatValue(v))
		w := lipgloss.Width(chip) + 1
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, chip, " ")
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// FormatValue prints whole numbers without a decimal point and everything
// else with one decimal place.
func FormatValue(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
