package handlers

import (
	"net/http"

	"github.com/mauv0809/fantasy-roster/internal/app"
	"github.com/mauv0809/fantasy-roster/internal/session"
)

// RemoveResponse reports whether a removal changed the roster.
type RemoveResponse struct {
	Removed bool        `json:"removed"`
	Summary app.Summary `json:"summary"`
}

func GetRosterHandler(sessions *session.Manager) http.HandlerFunc {
	return withSession(sessions, func(w http.ResponseWriter, r *http.Request, c *app.Controller) {
		writeJSON(w, http.StatusOK, c.Summary())
	})
}

// AddPlayerHandler adds a player and responds once the stats are synchronized.
func AddPlayerHandler(sessions *session.Manager) http.HandlerFunc {
	return withSession(sessions, func(w http.ResponseWriter, r *http.Request, c *app.Controller) {
		playerID, err := pathInt(r, "playerID")
		if err != nil {
			writeError(w, err)
			return
		}
		if err := c.AddPlayer(playerID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, c.Summary())
	})
}

func RemovePlayerHandler(sessions *session.Manager) http.HandlerFunc {
	return withSession(sessions, func(w http.ResponseWriter, r *http.Request, c *app.Controller) {
		playerID, err := pathInt(r, "playerID")
		if err != nil {
			writeError(w, err)
			return
		}
		removed := c.RemovePlayer(playerID)
		writeJSON(w, http.StatusOK, RemoveResponse{Removed: removed, Summary: c.Summary()})
	})
}
