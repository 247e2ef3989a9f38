package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/daepyo/internal/evaluate"
	"github.com/abhisek/daepyo/internal/session"
	"github.com/abhisek/daepyo/internal/store"
)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// newSweepServer returns a server on a fake clock whose session events land
// in a temporary store.
func newSweepServer(t *testing.T, ttl time.Duration) (*Server, *httptest.Server, *testClock, store.EventRepo) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := session.NewService(evaluate.NewService(nil), st.EventRepo())
	srv := NewServer(svc, Options{SessionTTL: ttl})
	clock := &testClock{t: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
	srv.now = clock.Now

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return srv, ts, clock, st.EventRepo()
}

func endedSessions(t *testing.T, repo store.EventRepo) []string {
	t.Helper()
	events, err := repo.QuerySessionEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	var ended []string
	for _, e := range events {
		if e.Action == store.SessionEnded {
			ended = append(ended, e.SessionID)
		}
	}
	return ended
}

func TestSweep_EndsOnlyIdleSessions(t *testing.T) {
	srv, ts, clock, repo := newSweepServer(t, time.Minute)

	idle := createSession(t, ts)
	busy := createSession(t, ts)

	clock.Advance(45 * time.Second)
	resp, _ := do(t, http.MethodPost, ts.URL+"/sessions/"+busy+"/examples/mean", exampleRequest{Text: "고르게"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	clock.Advance(30 * time.Second)
	assert.Equal(t, 1, srv.Sweep(context.Background()))

	resp, _ = do(t, http.MethodGet, ts.URL+"/sessions/"+idle, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, http.MethodGet, ts.URL+"/sessions/"+busy, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := do(t, http.MethodGet, ts.URL+"/healthz", nil)
	assert.Equal(t, float64(1), body["sessions"])
	assert.Equal(t, []string{idle}, endedSessions(t, repo))

	// Nothing new is idle yet, and a swept session is never ended twice.
	assert.Equal(t, 0, srv.Sweep(context.Background()))
	assert.Len(t, endedSessions(t, repo), 1)
}

func TestClose_EndsLiveSessions(t *testing.T) {
	srv, ts, _, repo := newSweepServer(t, time.Hour)
	a := createSession(t, ts)
	b := createSession(t, ts)

	srv.Close(context.Background())

	assert.ElementsMatch(t, []string{a, b}, endedSessions(t, repo))
	resp, _ := do(t, http.MethodPost, ts.URL+"/sessions/"+a+"/examples/mode", exampleRequest{Text: "인기"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRunSweeper_StopsWithContext(t *testing.T) {
	srv, ts, _, repo := newSweepServer(t, time.Hour)
	srv.opts.SweepInterval = time.Millisecond
	id := createSession(t, ts)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunSweeper(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
	assert.Equal(t, []string{id}, endedSessions(t, repo))
}

// withSessionID routes r as if chi had matched /sessions/{sessionID}.
func withSessionID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("sessionID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAcquire_RejectsEntryResetWhileWaiting(t *testing.T) {
	srv, _, _, _ := newSweepServer(t, time.Hour)
	sess := srv.svc.Start(context.Background())
	srv.sessions.add(sess, srv.now())
	oldID := sess.ID
	e, _ := srv.sessions.get(oldID)

	// A request that resolved oldID before a reset rekeyed the entry.
	srv.svc.Reset(context.Background(), sess)

	rec := httptest.NewRecorder()
	req := withSessionID(httptest.NewRequest(http.MethodGet, "/sessions/"+oldID, nil), oldID)
	got, ok := srv.acquire(rec, req)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The lock must have been released.
	require.True(t, e.mu.TryLock())
	e.mu.Unlock()
}

func TestAcquire_RejectsClosedEntry(t *testing.T) {
	srv, _, _, _ := newSweepServer(t, time.Hour)
	sess := srv.svc.Start(context.Background())
	srv.sessions.add(sess, srv.now())
	e, _ := srv.sessions.get(sess.ID)
	e.closed = true

	rec := httptest.NewRecorder()
	req := withSessionID(httptest.NewRequest(http.MethodGet, "/sessions/"+sess.ID, nil), sess.ID)
	_, ok := srv.acquire(rec, req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAcquire_TouchesEntry(t *testing.T) {
	srv, _, clock, _ := newSweepServer(t, time.Hour)
	sess := srv.svc.Start(context.Background())
	srv.sessions.add(sess, srv.now())
	e, _ := srv.sessions.get(sess.ID)

	clock.Advance(10 * time.Minute)
	rec := httptest.NewRecorder()
	req := withSessionID(httptest.NewRequest(http.MethodGet, "/sessions/"+sess.ID, nil), sess.ID)
	_, ok := srv.acquire(rec, req)
	require.True(t, ok)
	defer e.mu.Unlock()
	assert.Equal(t, clock.Now(), e.touched)
}
