package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // nothing done yet
	MascotWorking                          // some activities complete
	MascotCelebrating                      // every activity complete
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ▁▃▅ │
└─────┘`

const mascotWorking = `┌─────┐
│ ◉ ◉ │ ?
│  ▿  │
│ ▂▅▃ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ▃▅█ │
└─╥═╥─┘
  ╚═╝`

// variantFor picks the mascot for the current number of completed activities.
func variantFor(completed, total int) MascotVariant {
	switch {
	case total > 0 && completed >= total:
		return MascotCelebrating
	case completed > 0:
		return MascotWorking
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotWorking:
		art = mascotWorking
		fg = theme.ArcadeCyan
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
