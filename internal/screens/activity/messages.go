package activity

import (
	"github.com/abhisek/daepyo/internal/session"
)

// judgedMsg carries the result of a submission back to the screen.
type judgedMsg struct {
	Outcome *session.Outcome
	Err     error
}
