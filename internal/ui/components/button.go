package components

import (
	"github.com/abhisek/daepyo/internal/ui/theme"
)

// SubmitButton is the button under an answer form. It cannot be pressed
// while the answer is being judged.
type SubmitButton struct {
	Label   string
	Focused bool
	Busy    bool
}

// View renders the button.
func (b SubmitButton) View() string {
	switch {
	case b.Busy:
		return theme.ButtonInactive.Render("⏳ " + b.Label)
	case b.Focused:
		return theme.ButtonActive.Render("▸ " + b.Label)
	default:
		return theme.ButtonInactive.Render(b.Label)
	}
}
