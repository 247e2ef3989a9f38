package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Ratio   float64 // 0..1
	Caption string  // shown after the bar, e.g. "2/5 (40%)"
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, ratio float64, caption string, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Ratio:   ratio,
		Caption: caption,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	caption := ""
	if p.Caption != "" {
		caption = "  " + p.Caption
	}

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(caption)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Ratio)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if caption != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(caption)
	}
	return result
}
