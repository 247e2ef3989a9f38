package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Below these the home screen drops the mascot and key point, and the
	// header drops the screen title.
	CompactWidth         = 90
	CompactContentHeight = 32
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// IsCompact reports whether a screen should use its condensed layout for the
// given terminal width and content-area height.
func IsCompact(width, contentHeight int) bool {
	return width < CompactWidth || contentHeight < CompactContentHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"터미널 창이 너무 작아요!\n\n최소 %d x %d 크기로\n늘려주세요\n\n현재: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// Header is the top bar of every screen.
type Header struct {
	// Screen is the active screen's title.
	Screen string

	// Progress is the session's "n/5 (p%)" display.
	Progress string

	// Remote is true when answers go to the AI judge first.
	Remote bool
}

// ModeLabel names how answers are graded.
func (h Header) ModeLabel() string {
	if h.Remote {
		return "AI 채점"
	}
	return "기본 채점"
}

// Render draws the header bar: app name on the left, screen title centered,
// grading mode and progress on the right.
func (h Header) Render(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  📊 대푯값")

	center := ""
	if width >= CompactWidth {
		center = lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(h.Screen)
	}

	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.ModeLabel()+"   ") +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(h.Progress)

	innerWidth := max(width-4, 0) // border + padding
	leftLen, centerLen, rightLen := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((innerWidth-centerLen)/2-leftLen, 1)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return bar(content, width)
}

// RenderFooter renders the footer with key hints. Hints that would overflow
// the bar are dropped from the end, keeping at least one.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")
	for len(parts) > 1 && lipgloss.Width(content) > width-4 {
		parts = parts[:len(parts)-1]
		content = "  " + strings.Join(parts, "   ")
	}
	return bar(content, width)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// BodyHeight is what is left of height once header and footer are drawn.
func BodyHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(BodyHeight(header, footer, height)).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
