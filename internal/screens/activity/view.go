package activity

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/lesson"
	"github.com/abhisek/daepyo/internal/ui/components"
	"github.com/abhisek/daepyo/internal/ui/theme"
)

func (s *ScenarioScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	s.reason.SetWidth(cw - 4)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("📊 " + s.sc.Title))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Bold(true).Render("데이터:"))
	b.WriteString("\n")
	b.WriteString(components.DataChips(s.sc.Data, s.sc.Highlight, cw))
	b.WriteString("\n\n")

	b.WriteString(components.ArcadeCard(renderMeasures(s), cw))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Width(cw).
		Render("❓ " + s.sc.Question))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Bold(true).Render("💭 당신의 답변"))
	b.WriteString("\n")
	b.WriteString(fieldLabel("가장 적절한 대푯값:", s.focus == focusLabel))
	b.WriteString("\n")
	b.WriteString(s.picker.View())
	b.WriteString("\n\n")
	b.WriteString(fieldLabel("이유를 설명해주세요:", s.focus == focusReason))
	b.WriteString("\n")
	b.WriteString(s.reason.View())
	b.WriteString("\n")

	b.WriteString(s.renderStatus("답변 제출", s.focus == focusSubmit, cw,
		"🤖 AI가 답변을 분석하고 있습니다...", "답변을 확인하고 있습니다..."))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (s *ExampleScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	s.text.SetWidth(cw - 4)

	color := theme.StatColor(s.stat.Color())

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).
		Render(fmt.Sprintf("%s %s은 어떤 상황에서 쓰면 좋을까?", s.stat.Emoji(), s.stat.Name())))
	b.WriteString("\n\n")

	b.WriteString(fieldLabel(
		fmt.Sprintf("%s을 사용하는 것이 좋다고 생각하는 구체적인 상황이나 예시를 적어보세요:", s.stat.Name()),
		s.focus == focusText))
	b.WriteString("\n")
	b.WriteString(s.text.View())
	b.WriteString("\n")

	label := "✅ 확인해보기"
	if s.svc.Remote() {
		label = "🤖 AI가 확인해보기"
	}
	b.WriteString(s.renderStatus(label, s.focus == focusCheck, cw,
		"🤖 AI가 분석하고 있습니다...", "예시를 확인하고 있습니다..."))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

// renderStatus draws the submit button followed by the spinner, the inline
// validation message or the feedback card.
func (f *form) renderStatus(button string, focused bool, cw int, remoteWait, localWait string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.SubmitButton{Label: button, Focused: focused, Busy: f.judging}.View())
	b.WriteString("\n\n")

	switch {
	case f.judging:
		b.WriteString(f.judgingText(remoteWait, localWait))
	case f.errMsg != "":
		b.WriteString(theme.ErrorText.Render(f.errMsg))
	case f.outcome != nil:
		b.WriteString(components.FeedbackCard(f.outcome.Feedback, cw))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("진도율: " + f.outcome.Progress.Display))
	}
	return b.String()
}

func renderMeasures(s *ScenarioScreen) string {
	if s.measuresErr != nil {
		return theme.ErrorText.Render("📈 대푯값을 계산할 수 없어요: 자료가 비어 있습니다")
	}
	m := s.measures
	parts := []string{
		fmt.Sprintf("%s %s: %.1f", lesson.StatMean.Emoji(), lesson.StatMean.Name(), m.Mean),
		fmt.Sprintf("%s %s: %.1f", lesson.StatMedian.Emoji(), lesson.StatMedian.Name(), m.Median),
		fmt.Sprintf("%s %s: %s", lesson.StatMode.Emoji(), lesson.StatMode.Name(), components.FormatValue(m.Mode)),
	}
	return lipgloss.NewStyle().Foreground(theme.Text).
		Render("📈 대푯값 보기\n" + strings.Join(parts, "    "))
}

func fieldLabel(text string, focused bool) string {
	if focused {
		return theme.Selected.Render("▸ " + text)
	}
	return theme.Unselected.Render("  " + text)
}
