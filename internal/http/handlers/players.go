package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mauv0809/fantasy-roster/internal/app"
	"github.com/mauv0809/fantasy-roster/internal/catalog"
	"github.com/mauv0809/fantasy-roster/internal/history"
	"github.com/mauv0809/fantasy-roster/internal/session"
)

// ViewRequest is the body of PUT /api/sessions/{id}/view.
type ViewRequest struct {
	View string `json:"view"`
}

// ViewResponse reports the active view.
type ViewResponse struct {
	View app.View `json:"view"`
}

// HistoryResponse is a player's recorded stats with their trend.
type HistoryResponse struct {
	PlayerID int             `json:"player_id"`
	Name     string          `json:"name,omitempty"`
	Trend    history.Trend   `json:"trend"`
	Entries  []history.Entry `json:"entries"`
}

func SearchPlayersHandler(sessions *session.Manager) http.HandlerFunc {
	return withSession(sessions, func(w http.ResponseWriter, r *http.Request, c *app.Controller) {
		writeJSON(w, http.StatusOK, c.Search(r.URL.Query().Get("search")))
	})
}

func GetViewHandler(sessions *session.Manager) http.HandlerFunc {
	return withSession(sessions, func(w http.ResponseWriter, r *http.Request, c *app.Controller) {
		writeJSON(w, http.StatusOK, ViewResponse{View: c.ActiveView()})
	})
}

func SetViewHandler(sessions *session.Manager) http.HandlerFunc {
	return withSession(sessions, func(w http.ResponseWriter, r *http.Request, c *app.Controller) {
		var req ViewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, fmt.Errorf("%w: %v", ErrBadRequest, err))
			return
		}
		view, err := app.ParseView(req.View)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := c.SetView(view); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ViewResponse{View: c.ActiveView()})
	})
}

func PlayerHistoryHandler(cat *catalog.Catalog, store history.HistoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "stats history is disabled"})
			return
		}
		playerID, err := pathInt(r, "playerID")
		if err != nil {
			writeError(w, err)
			return
		}
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil || limit < 0 {
				writeError(w, fmt.Errorf("%w: limit %q", ErrBadRequest, raw))
				return
			}
		}

		entries, err := store.History(r.Context(), playerID, limit)
		if err != nil {
			writeError(w, err)
			return
		}
		resp := HistoryResponse{
			PlayerID: playerID,
			Trend:    history.TrendOf(entries),
			Entries:  entries,
		}
		if p, ok := cat.Player(playerID); ok {
			resp.Name = p.Name
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
