package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-roster/internal/catalog"
)

func HealthCheckHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request", "catalog", cat.State())
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}
