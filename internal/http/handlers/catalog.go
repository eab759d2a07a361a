package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-roster/internal/catalog"
	"github.com/mauv0809/fantasy-roster/internal/fantasy"
)

// CatalogResponse is the catalog together with its load state.
type CatalogResponse struct {
	State   catalog.LoadState `json:"state"`
	Error   string            `json:"error,omitempty"`
	Players []fantasy.Player  `json:"players"`
}

func catalogResponse(cat *catalog.Catalog, term string) CatalogResponse {
	resp := CatalogResponse{
		State:   cat.State(),
		Players: cat.Search(term),
	}
	if err := cat.Err(); err != nil {
		resp.Error = err.Error()
	}
	return resp
}

func CatalogHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalogResponse(cat, r.URL.Query().Get("search")))
	}
}

func ReloadCatalogHandler(cat *catalog.Catalog, client fantasy.FantasyClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Reloading player catalog")
		err := cat.Load(r.Context(), client)
		var failure *catalog.LoadFailure
		if errors.As(err, &failure) {
			resp := catalogResponse(cat, "")
			resp.Error = failure.Error()
			writeJSON(w, http.StatusBadGateway, resp)
			return
		}
		writeJSON(w, http.StatusOK, catalogResponse(cat, ""))
	}
}
