package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/ui/theme"
)

// MenuButtonWidth is the fixed width of a bordered menu button.
const MenuButtonWidth = 30

// MenuItem is one activity or command on the home menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd

	// Done marks an item whose activity is already complete.
	Done bool
}

// Menu is a vertical list of buttons. Navigation wraps at both ends and the
// digit keys 1-9 pick an item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch k := kmsg.String(); k {
	case "up", "k":
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case "down", "j":
		m.Selected = (m.Selected + 1) % len(m.Items)
	case "enter", "space":
		return m, m.activate()
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			if i := int(k[0] - '1'); i < len(m.Items) {
				m.Selected = i
				return m, m.activate()
			}
		}
	}

	return m, nil
}

func (m Menu) activate() tea.Cmd {
	if item := m.Items[m.Selected]; item.Action != nil {
		return item.Action()
	}
	return nil
}

// View renders the items as bordered buttons centered in cw columns. In
// compact mode the buttons lose their borders so everything fits.
func (m Menu) View(cw int, compact bool) string {
	rows := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		selected := i == m.Selected
		if !compact {
			rows = append(rows, ArcadeButton(item.Label, selected, item.Done, MenuButtonWidth))
			continue
		}

		label := item.Label
		if item.Done {
			label += " ✓"
		}
		switch {
		case selected:
			rows = append(rows, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+label+" "))
		case item.Done:
			rows = append(rows, theme.Done.Render("   "+label))
		default:
			rows = append(rows, lipgloss.NewStyle().Foreground(theme.Text).Render("   "+label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}
