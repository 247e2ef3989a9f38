package session

import (
	"time"

	"github.com/abhisek/daepyo/internal/lesson"
)

// Summary is a read-only view of a session for status displays.
type Summary struct {
	SessionID string         `json:"session_id"`
	StartedAt time.Time      `json:"started_at"`
	Duration  time.Duration  `json:"duration_ns"`
	Progress  ProgressUpdate `json:"progress"`
	Completed []string       `json:"completed"`
	Remaining []string       `json:"remaining"`
}

// BuildSummary captures the current state of s.
func BuildSummary(s *Session) Summary {
	done := s.Progress.CompletedIDs()
	var remaining []string
	for _, id := range lesson.InteractionIDs() {
		if !s.Progress.IsDone(id) {
			remaining = append(remaining, id)
		}
	}
	if done == nil {
		done = []string{}
	}
	if remaining == nil {
		remaining = []string{}
	}
	return Summary{
		SessionID: s.ID,
		StartedAt: s.StartedAt,
		Duration:  s.Elapsed(),
		Progress:  s.Progress.Update(),
		Completed: done,
		Remaining: remaining,
	}
}
