package handlers

import (
	"net/http"

	"github.com/mauv0809/fantasy-roster/internal/app"
	"github.com/mauv0809/fantasy-roster/internal/session"
)

func ListSessionsHandler(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries := []app.Summary{}
		for _, s := range sessions.List() {
			summaries = append(summaries, s.Controller.Summary())
		}
		writeJSON(w, http.StatusOK, summaries)
	}
}

func CreateSessionHandler(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessions.Create()
		writeJSON(w, http.StatusCreated, s.Controller.Summary())
	}
}

func GetSessionHandler(sessions *session.Manager) http.HandlerFunc {
	return withSession(sessions, func(w http.ResponseWriter, r *http.Request, c *app.Controller) {
		writeJSON(w, http.StatusOK, c.Summary())
	})
}

func DeleteSessionHandler(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Delete(r.PathValue("id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
