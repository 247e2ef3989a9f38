package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is one student working through the lesson.
type Session struct {
	ID        string
	StartedAt time.Time
	Progress  *Progress
}

// New starts a fresh session.
func New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Progress:  NewProgress(),
	}
}

// Reset turns s into a brand-new session: new ID, new start time and no
// progress.
func (s *Session) Reset() {
	s.ID = uuid.NewString()
	s.StartedAt = time.Now()
	s.Progress.Reset()
}

// Elapsed is the time since the session started.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.StartedAt)
}
