package session

import (
	"fmt"
	"sync"

	"github.com/abhisek/daepyo/internal/lesson"
)

// Progress is the set of completed interactions in one session. It only
// grows; the only way back to zero is Reset when a new session starts.
// It is safe for concurrent use.
type Progress struct {
	mu         sync.Mutex
	done       map[string]bool
	celebrated bool
}

// ProgressUpdate is the progress after a submission.
type ProgressUpdate struct {
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
	Display   string `json:"display"`

	// Celebrate is true on exactly one update: the one that completed the
	// last interaction.
	Celebrate bool `json:"celebrate"`
}

// NewProgress returns an empty tracker.
func NewProgress() *Progress {
	return &Progress{done: make(map[string]bool)}
}

// Mark records id as completed. Marking an already completed id changes
// nothing. Unknown ids are rejected.
func (p *Progress) Mark(id string) (ProgressUpdate, error) {
	if !knownInteraction(id) {
		return ProgressUpdate{}, fmt.Errorf("unknown interaction %q", id)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.done[id] = true
	u := p.updateLocked()
	if u.Completed == u.Total && !p.celebrated {
		p.celebrated = true
		u.Celebrate = true
	}
	return u, nil
}

// IsDone reports whether id has been completed.
func (p *Progress) IsDone(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done[id]
}

// Completed is the number of distinct completed interactions.
func (p *Progress) Completed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.done)
}

// Total is the number of interactions in the lesson.
func (p *Progress) Total() int {
	return lesson.TotalInteractions()
}

// Ratio is Completed/Total in [0, 1].
func (p *Progress) Ratio() float64 {
	return float64(p.Completed()) / float64(p.Total())
}

// Percent is the completion percentage, rounded down.
func (p *Progress) Percent() int {
	return p.Completed() * 100 / p.Total()
}

// Finished reports whether every interaction is complete.
func (p *Progress) Finished() bool {
	return p.Completed() == p.Total()
}

// Display renders progress as "n/5 (p%)".
func (p *Progress) Display() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.updateLocked().Display
}

// Update returns the current progress without marking anything.
func (p *Progress) Update() ProgressUpdate {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.updateLocked()
}

// CompletedIDs lists completed interactions in lesson order.
func (p *Progress) CompletedIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var ids []string
	for _, id := range lesson.InteractionIDs() {
		if p.done[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Reset clears all progress, re-arming the completion signal.
func (p *Progress) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = make(map[string]bool)
	p.celebrated = false
}

func (p *Progress) updateLocked() ProgressUpdate {
	total := lesson.TotalInteractions()
	n := len(p.done)
	pct := n * 100 / total
	return ProgressUpdate{
		Completed: n,
		Total:     total,
		Percent:   pct,
		Display:   fmt.Sprintf("%d/%d (%d%%)", n, total, pct),
	}
}

func knownInteraction(id string) bool {
	for _, known := range lesson.InteractionIDs() {
		if id == known {
			return true
		}
	}
	return false
}
