// Package api is the JSON-over-HTTP surface of the lesson. It exposes the
// same session handlers the terminal UI uses.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/daepyo/internal/session"
)

const maxBodyBytes = 16 << 10

// Options configures the router.
type Options struct {
	// AllowedOrigins for CORS. Empty means local development origins.
	AllowedOrigins []string

	// RequestTimeout bounds a whole request, including a remote judge call.
	RequestTimeout time.Duration

	// SessionTTL is how long a session may go untouched before the sweeper
	// ends it.
	SessionTTL time.Duration

	// SweepInterval is how often RunSweeper looks for idle sessions.
	SweepInterval time.Duration
}

// DefaultOptions returns the options used by `daepyo serve`.
func DefaultOptions() Options {
	return Options{
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		RequestTimeout: 30 * time.Second,
		SessionTTL:     30 * time.Minute,
		SweepInterval:  time.Minute,
	}
}

// Server routes HTTP requests to a session.Service.
type Server struct {
	svc      *session.Service
	sessions *registry
	router   chi.Router
	opts     Options
	now      func() time.Time
}

// NewServer builds the router.
func NewServer(svc *session.Service, opts Options) *Server {
	defaults := DefaultOptions()
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = defaults.AllowedOrigins
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaults.RequestTimeout
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaults.SessionTTL
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = defaults.SweepInterval
	}

	s := &Server{
		svc:      svc,
		sessions: newRegistry(),
		opts:     opts,
		now:      time.Now,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger, middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.healthz)
	r.Get("/scenarios", s.listScenarios)
	r.Get("/examples", s.listExamples)

	r.Route("/sessions", func(sr chi.Router) {
		sr.Post("/", s.createSession)
		sr.Route("/{sessionID}", func(one chi.Router) {
			one.Get("/", s.getSession)
			one.Delete("/", s.resetSession)
			one.Post("/scenarios/{scenarioID}", s.submitScenario)
			one.Post("/examples/{stat}", s.checkExample)
		})
	})

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Sweep ends and forgets every session idle for at least SessionTTL. It
// returns how many were ended.
func (s *Server) Sweep(ctx context.Context) int {
	now := s.now()
	var n int
	for _, e := range s.sessions.entries() {
		e.mu.Lock()
		if e.idle(now, s.opts.SessionTTL) {
			s.close(ctx, e)
			n++
		}
		e.mu.Unlock()
	}
	if n > 0 {
		slog.Info("api: swept idle sessions", "ended", n, "live", s.sessions.len())
	}
	return n
}

// RunSweeper calls Sweep every SweepInterval until ctx is done, then ends
// the sessions that are still live.
func (s *Server) RunSweeper(ctx context.Context) error {
	ticker := time.NewTicker(s.opts.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Close(context.WithoutCancel(ctx))
			return nil
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Close ends every live session. Requests that arrive afterwards for those
// sessions get 404.
func (s *Server) Close(ctx context.Context) {
	for _, e := range s.sessions.entries() {
		e.mu.Lock()
		if !e.closed {
			s.close(ctx, e)
		}
		e.mu.Unlock()
	}
}

// close records the end of e's session and unregisters it. The caller holds
// e.mu.
func (s *Server) close(ctx context.Context, e *entry) {
	e.closed = true
	s.sessions.remove(e.sess.ID, e)
	s.svc.End(ctx, e.sess)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.Info("api: request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
