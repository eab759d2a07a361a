package handlers

import (
	"net/http"
	"strconv"

	"github.com/mauv0809/fantasy-roster/internal/app"
	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"github.com/mauv0809/fantasy-roster/internal/session"
)

// ScoreResponse is the aggregate score of a roster.
type ScoreResponse struct {
	Roster     []int   `json:"roster"`
	TotalScore float64 `json:"total_score"`
}

// SyncResponse is the outcome of one synchronization cycle.
type SyncResponse struct {
	Requested  []int             `json:"requested"`
	Updated    []int             `json:"updated"`
	Skipped    []int             `json:"skipped"`
	Failures   map[string]string `json:"failures"`
	TotalScore float64           `json:"total_score"`
}

func TeamHandler(sessions *session.Manager) http.HandlerFunc {
	return withSession(sessions, func(w http.ResponseWriter, r *http.Request, c *app.Controller) {
		writeJSON(w, http.StatusOK, c.Team(r.Context()))
	})
}

// StatsHandler returns the cached stats of the rostered players, keyed by player id.
func StatsHandler(sessions *session.Manager) http.HandlerFunc {
	return withSession(sessions, func(w http.ResponseWriter, r *http.Request, c *app.Controller) {
		cached := c.Stats()
		resp := make(map[string]fantasy.PlayerStats, len(cached))
		for id, s := range cached {
			resp[strconv.Itoa(id)] = s
		}
		writeJSON(w, http.StatusOK, resp)
	})
}

func ScoreHandler(sessions *session.Manager) http.HandlerFunc {
	return withSession(sessions, func(w http.ResponseWriter, r *http.Request, c *app.Controller) {
		writeJSON(w, http.StatusOK, ScoreResponse{Roster: c.Roster(), TotalScore: c.TotalScore()})
	})
}

func UpdatesHandler(sessions *session.Manager) http.HandlerFunc {
	return withSession(sessions, func(w http.ResponseWriter, r *http.Request, c *app.Controller) {
		writeJSON(w, http.StatusOK, c.Updates())
	})
}

// SyncHandler runs a full synchronization cycle. Per-player failures are reported in
// the body; the request itself succeeds.
func SyncHandler(sessions *session.Manager) http.HandlerFunc {
	return withSession(sessions, func(w http.ResponseWriter, r *http.Request, c *app.Controller) {
		result := c.Refresh(r.Context())
		resp := SyncResponse{
			Requested:  result.Requested,
			Updated:    result.Updated,
			Skipped:    result.Skipped,
			Failures:   make(map[string]string, len(result.Failures)),
			TotalScore: c.TotalScore(),
		}
		for _, f := range result.Failures {
			resp.Failures[strconv.Itoa(f.PlayerID)] = f.Err.Error()
		}
		writeJSON(w, http.StatusOK, resp)
	})
}
