package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/ui/components"
	"github.com/abhisek/daepyo/internal/ui/theme"
)

const (
	titleText    = "🤔 어떤 대푯값이 좋을까?"
	subtitleText = "같은 자료라도 상황과 목적에 따라 적절한 대푯값이 달라질 수 있어요! 🎯"
	keyPointText = "🎯 핵심 포인트! 💡 완벽한 대푯값은 없어요! 상황과 목적에 맞는 가장 적절한 대푯값을 선택하는 것이 중요합니다! ✨"
	finishedText = "🎉 모든 활동을 완료했습니다! 다음 단계로 넘어가세요!"
)

func renderTitle(cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(titleText)
	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(subtitleText)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + sub)
}

// renderProgressBox shows lesson progress in a double-bordered box.
func renderProgressBox(ratio float64, display string, cw int) string {
	bar := components.NewProgressBar("진도율", ratio, display, cw-6)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(bar.View())
}

func renderModeLine(remote bool, cw int) string {
	text := "🎭 시뮬레이션 모드로 동작합니다"
	fg := theme.TextDim
	if remote {
		text = "🤖 실제 AI 모드로 동작합니다!"
		fg = theme.Secondary
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

func renderKeyPoint(cw int) string {
	return components.ArcadeCard(
		lipgloss.NewStyle().Foreground(theme.Accent).Render(keyPointText), cw)
}

func renderFinished(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(finishedText)
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(v MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(v))
}
