package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-roster/internal/app"
	"github.com/mauv0809/fantasy-roster/internal/roster"
	"github.com/mauv0809/fantasy-roster/internal/session"
)

// ErrBadRequest marks malformed input such as a non-numeric player id.
var ErrBadRequest = errors.New("bad request")

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, roster.ErrRosterFull), errors.Is(err, roster.ErrAlreadyRostered):
		return http.StatusConflict
	case errors.Is(err, app.ErrUnknownPlayer), errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrUnknownView), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func pathInt(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrBadRequest, name, raw)
	}
	return id, nil
}

// withSession resolves the {id} path segment and calls fn with the session's controller.
func withSession(sessions *session.Manager, fn func(w http.ResponseWriter, r *http.Request, c *app.Controller)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.Get(r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		fn(w, r, s.Controller)
	}
}
