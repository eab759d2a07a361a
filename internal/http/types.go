package http

import (
	"net/http"

	"github.com/mauv0809/fantasy-roster/internal/catalog"
	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"github.com/mauv0809/fantasy-roster/internal/history"
	"github.com/mauv0809/fantasy-roster/internal/metrics"
	"github.com/mauv0809/fantasy-roster/internal/session"
)

type Server struct {
	Catalog        *catalog.Catalog
	Client         fantasy.FantasyClient
	Sessions       *session.Manager
	History        history.HistoryStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Router         *http.ServeMux
}
