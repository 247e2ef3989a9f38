// Package session tracks a student's progress through the lesson and
// handles their submissions.
package session

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/abhisek/daepyo/internal/evaluate"
	"github.com/abhisek/daepyo/internal/feedback"
	"github.com/abhisek/daepyo/internal/lesson"
	"github.com/abhisek/daepyo/internal/store"
)

// ScenarioSubmission is a student's answer to a scenario.
type ScenarioSubmission struct {
	ScenarioID int
	Label      string // statistic key or Korean name; the placeholder is rejected
	Reason     string
}

// ExampleSubmission is a student's example of when a statistic fits.
type ExampleSubmission struct {
	Stat string
	Text string
}

// Outcome is what a successful submission returns.
type Outcome struct {
	InteractionID string            `json:"interaction_id"`
	Result        evaluate.Result   `json:"result"`
	Feedback      feedback.Feedback `json:"feedback"`
	Progress      ProgressUpdate    `json:"progress"`
}

// Service handles submissions. Every surface (terminal, HTTP, one-shot
// CLI) goes through it.
type Service struct {
	eval   *evaluate.Service
	events store.EventRepo
}

// NewService creates a Service. events may be nil.
func NewService(eval *evaluate.Service, events store.EventRepo) *Service {
	return &Service{eval: eval, events: events}
}

// Remote reports whether answers are sent to a remote judge.
func (s *Service) Remote() bool {
	return s.eval.Remote()
}

// Start begins a new session.
func (s *Service) Start(ctx context.Context) *Session {
	sess := New()
	s.record(ctx, sess, store.SessionStarted)
	slog.Info("session: started", "session", sess.ID)
	return sess
}

// Reset ends sess and starts over under a new ID.
func (s *Service) Reset(ctx context.Context, sess *Session) {
	s.record(ctx, sess, store.SessionReset)
	old := sess.ID
	sess.Reset()
	s.record(ctx, sess, store.SessionStarted)
	slog.Info("session: reset", "old", old, "session", sess.ID)
}

// End records that the student left.
func (s *Service) End(ctx context.Context, sess *Session) {
	s.record(ctx, sess, store.SessionEnded)
	slog.Info("session: ended", "session", sess.ID, "progress", sess.Progress.Display())
}

// SubmitScenario validates and grades a scenario answer, then marks the
// scenario complete whatever the verdict. Invalid input returns a
// *ValidationError and changes nothing.
func (s *Service) SubmitScenario(ctx context.Context, sess *Session, sub ScenarioSubmission) (*Outcome, error) {
	sc, err := lesson.ScenarioByID(sub.ScenarioID)
	if err != nil {
		return nil, &ValidationError{Field: "scenario", Message: err.Error()}
	}
	label, err := lesson.ParseStat(sub.Label)
	if err != nil {
		return nil, &ValidationError{Field: "label", Message: MsgScenarioIncomplete}
	}
	reason := strings.TrimSpace(sub.Reason)
	if reason == "" {
		return nil, &ValidationError{Field: "reason", Message: MsgScenarioIncomplete}
	}

	result := s.eval.Scenario(ctx, sc, label, reason)
	return s.complete(ctx, sess, sc.InteractionID(), result, feedback.ForScenario(result))
}

// CheckExample validates and grades an example, then marks the statistic
// complete whatever the verdict.
func (s *Service) CheckExample(ctx context.Context, sess *Session, sub ExampleSubmission) (*Outcome, error) {
	stat, err := lesson.ParseStat(sub.Stat)
	if err != nil {
		return nil, &ValidationError{Field: "stat", Message: err.Error()}
	}
	text := strings.TrimSpace(sub.Text)
	if text == "" {
		return nil, &ValidationError{Field: "text", Message: MsgExampleEmpty}
	}

	result, err := s.eval.Example(ctx, stat, text)
	if err != nil {
		return nil, err
	}
	return s.complete(ctx, sess, lesson.ExampleInteractionID(stat), result, feedback.ForExample(stat, result))
}

func (s *Service) complete(ctx context.Context, sess *Session, id string, result evaluate.Result, fb feedback.Feedback) (*Outcome, error) {
	update, err := sess.Progress.Mark(id)
	if err != nil {
		return nil, err
	}

	slog.Info("session: graded",
		"session", sess.ID,
		"interaction", id,
		"verdict", result.Verdict,
		"source", result.Source,
		"progress", update.Display)

	if update.Celebrate {
		s.record(ctx, sess, store.SessionCompleted)
	}

	return &Outcome{
		InteractionID: id,
		Result:        result,
		Feedback:      fb,
		Progress:      update,
	}, nil
}

func (s *Service) record(ctx context.Context, sess *Session, action string) {
	if s.events == nil {
		return
	}
	err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    sess.ID,
		Action:       action,
		Completed:    sess.Progress.Completed(),
		Total:        sess.Progress.Total(),
		DurationSecs: int(sess.Elapsed().Seconds()),
	})
	if err != nil {
		slog.Warn("session: failed to record event", "session", sess.ID, "action", action, "error", err)
	}
}

// ParseScenarioID parses a scenario ID from a path segment or flag.
func ParseScenarioID(v string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, &ValidationError{Field: "scenario", Message: "scenario id must be a number"}
	}
	return id, nil
}
