// Package activity holds the two lesson activity screens: answering a
// scenario and giving an example of when a statistic fits.
package activity

import (
	"context"
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/daepyo/internal/session"
	"github.com/abhisek/daepyo/internal/ui/components"
)

// form is the submit/judge/feedback cycle shared by both screens. Input is
// ignored while a submission is being judged.
type form struct {
	svc     *session.Service
	sess    *session.Session
	spinner spinner.Model
	judging bool
	outcome *session.Outcome
	errMsg  string
}

func newForm(svc *session.Service, sess *session.Session) form {
	return form{
		svc:     svc,
		sess:    sess,
		spinner: components.NewSpinner(),
	}
}

// start runs submit off the UI goroutine and starts the spinner.
func (f *form) start(submit func(ctx context.Context) (*session.Outcome, error)) tea.Cmd {
	f.judging = true
	f.errMsg = ""
	return tea.Batch(
		f.spinner.Tick,
		func() tea.Msg {
			out, err := submit(context.Background())
			return judgedMsg{Outcome: out, Err: err}
		},
	)
}

// finish applies a judged result.
func (f *form) finish(msg judgedMsg) {
	f.judging = false
	if msg.Err != nil {
		var verr *session.ValidationError
		if errors.As(msg.Err, &verr) {
			f.errMsg = verr.Message
			return
		}
		slog.Error("tui: submission failed", "session", f.sess.ID, "error", msg.Err)
		f.errMsg = "채점 중 문제가 생겼어요. 다시 시도해주세요."
		return
	}
	f.outcome = msg.Outcome
}

// tick advances the spinner while judging.
func (f *form) tick(msg spinner.TickMsg) tea.Cmd {
	if !f.judging {
		return nil
	}
	var cmd tea.Cmd
	f.spinner, cmd = f.spinner.Update(msg)
	return cmd
}

func (f *form) judgingText(remote, local string) string {
	if f.svc.Remote() {
		return f.spinner.View() + " " + remote
	}
	return f.spinner.View() + " " + local
}
