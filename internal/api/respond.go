package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/abhisek/daepyo/internal/session"
)

type errResp struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errResp{Error: msg})
}

// writeSubmitErr maps a handler error to a response: validation errors are
// the student's to fix, anything else is ours.
func writeSubmitErr(w http.ResponseWriter, r *http.Request, err error) {
	var verr *session.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errResp{Error: verr.Message, Field: verr.Field})
		return
	}
	slog.Error("api: submission failed", "path", r.URL.Path, "error", err)
	writeErr(w, http.StatusInternalServerError, "internal error")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
