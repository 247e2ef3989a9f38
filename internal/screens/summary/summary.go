package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/lesson"
	"github.com/abhisek/daepyo/internal/router"
	"github.com/abhisek/daepyo/internal/screen"
	"github.com/abhisek/daepyo/internal/session"
	"github.com/abhisek/daepyo/internal/ui/layout"
	"github.com/abhisek/daepyo/internal/ui/theme"
)

// SummaryScreen celebrates a finished lesson.
type SummaryScreen struct {
	summary session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "학습 완료"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "홈으로"},
		{Key: "Esc", Description: "홈으로"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.ArcadeYellow).Bold(true).
		Render("🎉 🎈 🎉 🎈 🎉"))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Bold(true).
		Render("🎉 모든 활동을 완료했습니다! 다음 단계로 넘어가세요!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("걸린 시간: %d:%02d    진도율: %s", mins, secs, sum.Progress.Display)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 48)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, id := range sum.Completed {
		line := theme.Done.Render("✓ ") + lipgloss.NewStyle().Foreground(theme.Text).Render(lesson.InteractionLabel(id))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	for _, id := range sum.Remaining {
		line := lipgloss.NewStyle().Foreground(theme.TextDim).Render("○ " + lesson.InteractionLabel(id))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Accent).
		Render("💡 완벽한 대푯값은 없어요! 상황과 목적에 맞는 가장 적절한 대푯값을 선택하는 것이 중요합니다! ✨"))

	return b.String()
}
