package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/ui/theme"
)

const bannerArt = `╔═══════════════════════════════╗
║   📊  대 푯 값  D A E P Y O   ║
╚═══════════════════════════════╝`

const bannerCompact = "📊 대푯값"

const tagline = "평균 · 중앙값 · 최빈값, 언제 무엇을 쓸까?"

// RenderBanner returns the title banner in the primary color. Terminals
// narrower than 40 columns get the one-line form.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
