package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/feedback"
	"github.com/abhisek/daepyo/internal/ui/theme"
)

// ToneColor maps a feedback tone to its card color.
func ToneColor(t feedback.Tone) color.Color {
	switch t {
	case feedback.TonePositive:
		return theme.Success
	case feedback.ToneEncouraging:
		return theme.Warning
	default:
		return theme.Error
	}
}

// FeedbackCard renders a feedback card at content width cw.
func FeedbackCard(f feedback.Feedback, cw int) string {
	c := ToneColor(f.Tone)

	body := lipgloss.NewStyle().Foreground(c).Bold(true).Render(f.Headline)
	if f.Body != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Text).Render(f.Body)
	}
	if f.Notice != "" {
		body += "\n\n" + theme.Hint.Render(f.Notice)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(c).
		Width(cw).
		Padding(0, 1).
		Render(body)
}
