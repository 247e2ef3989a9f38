package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/lesson"
	"github.com/abhisek/daepyo/internal/ui/theme"
)

// StatPicker chooses one statistic. Its first option is the placeholder,
// which counts as "nothing chosen".
type StatPicker struct {
	Options  []string
	Selected int
	Focused  bool
}

// NewStatPicker creates a picker showing the placeholder.
func NewStatPicker() StatPicker {
	opts := []string{lesson.Placeholder}
	for _, s := range lesson.AllStats() {
		opts = append(opts, s.Name())
	}
	return StatPicker{Options: opts}
}

// Update moves the selection with the arrow keys when focused.
func (p StatPicker) Update(msg tea.Msg) (StatPicker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "up", "h", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right", "down", "l", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}
	return p, nil
}

// Value is the chosen label, the placeholder included.
func (p StatPicker) Value() string {
	return p.Options[p.Selected]
}

// Reset returns to the placeholder.
func (p *StatPicker) Reset() {
	p.Selected = 0
}

// View renders the options on one line.
func (p StatPicker) View() string {
	parts := make([]string, 0, len(p.Options))
	for i, opt := range p.Options {
		switch {
		case i == p.Selected && p.Focused:
			parts = append(parts, theme.Selected.Render("◉ "+opt))
		case i == p.Selected:
			parts = append(parts, theme.Unselected.Render("◉ "+opt))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render("○ "+opt))
		}
	}
	return strings.Join(parts, "   ")
}
