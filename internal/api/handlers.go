package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/daepyo/internal/lesson"
	"github.com/abhisek/daepyo/internal/measures"
	"github.com/abhisek/daepyo/internal/session"
)

type highlightView struct {
	Kind    string `json:"kind,omitempty"`
	Indices []int  `json:"indices"`
}

type measuresView struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Mode   float64 `json:"mode"`
}

type scenarioView struct {
	ID            int           `json:"id"`
	InteractionID string        `json:"interaction_id"`
	Title         string        `json:"title"`
	Question      string        `json:"question"`
	Data          []float64     `json:"data"`
	Highlight     highlightView `json:"highlight"`
	Measures      measuresView  `json:"measures"`
}

type exampleView struct {
	Stat          string `json:"stat"`
	Name          string `json:"name"`
	InteractionID string `json:"interaction_id"`
	Criteria      string `json:"criteria"`
}

type sessionView struct {
	ID        string                 `json:"id"`
	StartedAt time.Time              `json:"started_at"`
	Remote    bool                   `json:"remote"`
	Progress  session.ProgressUpdate `json:"progress"`
	Completed []string               `json:"completed"`
	Remaining []string               `json:"remaining"`
}

type outcomeView struct {
	*session.Outcome
	FeedbackHTML string `json:"feedback_html"`
}

type scenarioRequest struct {
	Label  string `json:"label"`
	Reason string `json:"reason"`
}

type exampleRequest struct {
	Text string `json:"text"`
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"remote":   s.svc.Remote(),
		"sessions": s.sessions.len(),
	})
}

func (s *Server) listScenarios(w http.ResponseWriter, r *http.Request) {
	all := lesson.Scenarios()
	out := make([]scenarioView, 0, len(all))
	for _, sc := range all {
		m, err := measures.Compute(sc.Data)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		indices := sc.Highlight.Indices
		if indices == nil {
			indices = []int{}
		}
		out = append(out, scenarioView{
			ID:            sc.ID,
			InteractionID: sc.InteractionID(),
			Title:         sc.Title,
			Question:      sc.Question,
			Data:          sc.Data,
			Highlight:     highlightView{Kind: string(sc.Highlight.Kind), Indices: indices},
			Measures:      measuresView{Mean: m.Mean, Median: m.Median, Mode: m.Mode},
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listExamples(w http.ResponseWriter, r *http.Request) {
	rules := lesson.Rules()
	out := make([]exampleView, 0, len(rules))
	for _, rule := range rules {
		out = append(out, exampleView{
			Stat:          string(rule.Stat),
			Name:          rule.Stat.Name(),
			InteractionID: lesson.ExampleInteractionID(rule.Stat),
			Criteria:      rule.Criteria,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	sess := s.svc.Start(r.Context())
	s.sessions.add(sess, s.now())
	writeJSON(w, http.StatusCreated, s.view(sess))
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	e, ok := s.acquire(w, r)
	if !ok {
		return
	}
	defer e.mu.Unlock()
	writeJSON(w, http.StatusOK, s.view(e.sess))
}

// resetSession starts the lesson over. The session gets a new ID, which the
// response carries; the old ID stops resolving.
func (s *Server) resetSession(w http.ResponseWriter, r *http.Request) {
	e, ok := s.acquire(w, r)
	if !ok {
		return
	}
	defer e.mu.Unlock()

	old := e.sess.ID
	s.svc.Reset(r.Context(), e.sess)
	s.sessions.rekey(old, e)
	writeJSON(w, http.StatusOK, s.view(e.sess))
}

func (s *Server) submitScenario(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.lookup(w, r); !ok {
		return
	}
	id, err := session.ParseScenarioID(chi.URLParam(r, "scenarioID"))
	if err != nil {
		writeSubmitErr(w, r, err)
		return
	}
	var req scenarioRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	e, ok := s.acquire(w, r)
	if !ok {
		return
	}
	defer e.mu.Unlock()

	out, err := s.svc.SubmitScenario(r.Context(), e.sess, session.ScenarioSubmission{
		ScenarioID: id,
		Label:      req.Label,
		Reason:     req.Reason,
	})
	if err != nil {
		writeSubmitErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, outcomeView{Outcome: out, FeedbackHTML: out.Feedback.HTML()})
}

func (s *Server) checkExample(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.lookup(w, r); !ok {
		return
	}
	var req exampleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	e, ok := s.acquire(w, r)
	if !ok {
		return
	}
	defer e.mu.Unlock()

	out, err := s.svc.CheckExample(r.Context(), e.sess, session.ExampleSubmission{
		Stat: chi.URLParam(r, "stat"),
		Text: req.Text,
	})
	if err != nil {
		writeSubmitErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, outcomeView{Outcome: out, FeedbackHTML: out.Feedback.HTML()})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*entry, bool) {
	id := chi.URLParam(r, "sessionID")
	e, ok := s.sessions.get(id)
	if !ok {
		writeErr(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return e, true
}

// acquire looks up the session named in the URL and locks it. The session
// may have been reset under a new ID or swept while the request waited for
// the lock; both answer 404. On success the caller must unlock e.mu.
func (s *Server) acquire(w http.ResponseWriter, r *http.Request) (*entry, bool) {
	e, ok := s.lookup(w, r)
	if !ok {
		return nil, false
	}
	e.mu.Lock()
	if !holds(e, chi.URLParam(r, "sessionID")) {
		e.mu.Unlock()
		writeErr(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	e.touched = s.now()
	return e, true
}

// holds reports whether e still serves the session id. The caller holds e.mu.
func holds(e *entry, id string) bool {
	return !e.closed && e.sess.ID == id
}

func (s *Server) view(sess *session.Session) sessionView {
	sum := session.BuildSummary(sess)
	return sessionView{
		ID:        sum.SessionID,
		StartedAt: sum.StartedAt,
		Remote:    s.svc.Remote(),
		Progress:  sum.Progress,
		Completed: sum.Completed,
		Remaining: sum.Remaining,
	}
}
