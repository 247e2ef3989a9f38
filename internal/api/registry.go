package api

import (
	"sync"
	"time"

	"github.com/abhisek/daepyo/internal/session"
)

// entry serializes every request against one session. touched and closed
// are guarded by mu.
type entry struct {
	mu      sync.Mutex
	sess    *session.Session
	touched time.Time
	closed  bool
}

// idle reports whether the entry has gone unused for ttl as of now. The
// caller holds e.mu.
func (e *entry) idle(now time.Time, ttl time.Duration) bool {
	return !e.closed && now.Sub(e.touched) >= ttl
}

// registry holds the live sessions of the HTTP surface. Sessions are kept in
// memory only and vanish when the server stops or they sit idle too long.
type registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*entry)}
}

func (r *registry) add(sess *session.Session, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.ID] = &entry{sess: sess, touched: now}
}

func (r *registry) get(id string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	return e, ok
}

// rekey moves an entry after its session was reset under a new ID.
// The caller holds e.mu.
func (r *registry) rekey(oldID string, e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, oldID)
	r.sessions[e.sess.ID] = e
}

// remove drops e if it is still registered under id. The caller holds e.mu.
func (r *registry) remove(id string, e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sessions[id] == e {
		delete(r.sessions, id)
	}
}

// entries returns the registered entries in no particular order.
func (r *registry) entries() []*entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entry, 0, len(r.sessions))
	for _, e := range r.sessions {
		out = append(out, e)
	}
	return out
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
