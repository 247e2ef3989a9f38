package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/ui/theme"
)

// TextArea wraps bubbles/textarea for free-text answers.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates an unfocused multi-line input.
func NewTextArea(placeholder string, width, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 500
	ta.SetWidth(width)
	ta.SetHeight(height)
	return TextArea{Model: ta}
}

// Focus gives the input keyboard focus.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextArea) Focused() bool {
	return t.Model.Focused()
}

// SetWidth resizes the input.
func (t *TextArea) SetWidth(w int) {
	t.Model.SetWidth(w)
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current text.
func (t *TextArea) SetValue(s string) {
	t.Model.SetValue(s)
}

// Reset clears the text.
func (t *TextArea) Reset() {
	t.Model.Reset()
}

// View renders the input inside a border that lights up when focused.
func (t TextArea) View() string {
	border := theme.Border
	if t.Model.Focused() {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(t.Model.View())
}
