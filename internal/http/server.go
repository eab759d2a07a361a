package http

import (
	"net/http"

	"github.com/mauv0809/fantasy-roster/internal/catalog"
	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"github.com/mauv0809/fantasy-roster/internal/history"
	"github.com/mauv0809/fantasy-roster/internal/http/handlers"
	"github.com/mauv0809/fantasy-roster/internal/metrics"
	"github.com/mauv0809/fantasy-roster/internal/session"
)

func NewServer(cat *catalog.Catalog, client fantasy.FantasyClient, sessions *session.Manager, historyStore history.HistoryStore, metricsSvc metrics.Metrics, metricsHandler http.Handler) *Server {
	server := &Server{
		Catalog:        cat,
		Client:         client,
		Sessions:       sessions,
		History:        historyStore,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(s.Catalog), paramsMiddleware))

	s.Router.Handle("GET /api/catalog", Chain(handlers.CatalogHandler(s.Catalog), paramsMiddleware))
	s.Router.Handle("POST /api/catalog/reload", Chain(handlers.ReloadCatalogHandler(s.Catalog, s.Client), paramsMiddleware))

	s.Router.Handle("GET /api/sessions", Chain(handlers.ListSessionsHandler(s.Sessions), paramsMiddleware))
	s.Router.Handle("POST /api/sessions", Chain(handlers.CreateSessionHandler(s.Sessions), paramsMiddleware))
	s.Router.Handle("GET /api/sessions/{id}", Chain(handlers.GetSessionHandler(s.Sessions), paramsMiddleware))
	s.Router.Handle("DELETE /api/sessions/{id}", Chain(handlers.DeleteSessionHandler(s.Sessions), paramsMiddleware))

	s.Router.Handle("GET /api/sessions/{id}/roster", Chain(handlers.GetRosterHandler(s.Sessions), paramsMiddleware))
	s.Router.Handle("POST /api/sessions/{id}/roster/{playerID}", Chain(handlers.AddPlayerHandler(s.Sessions), paramsMiddleware))
	s.Router.Handle("DELETE /api/sessions/{id}/roster/{playerID}", Chain(handlers.RemovePlayerHandler(s.Sessions), paramsMiddleware))

	s.Router.Handle("GET /api/sessions/{id}/team", Chain(handlers.TeamHandler(s.Sessions), paramsMiddleware))
	s.Router.Handle("GET /api/sessions/{id}/stats", Chain(handlers.StatsHandler(s.Sessions), paramsMiddleware))
	s.Router.Handle("GET /api/sessions/{id}/score", Chain(handlers.ScoreHandler(s.Sessions), paramsMiddleware))
	s.Router.Handle("GET /api/sessions/{id}/updates", Chain(handlers.UpdatesHandler(s.Sessions), paramsMiddleware))
	s.Router.Handle("POST /api/sessions/{id}/sync", Chain(handlers.SyncHandler(s.Sessions), paramsMiddleware))

	s.Router.Handle("GET /api/sessions/{id}/players", Chain(handlers.SearchPlayersHandler(s.Sessions), paramsMiddleware))
	s.Router.Handle("GET /api/sessions/{id}/view", Chain(handlers.GetViewHandler(s.Sessions), paramsMiddleware))
	s.Router.Handle("PUT /api/sessions/{id}/view", Chain(handlers.SetViewHandler(s.Sessions), paramsMiddleware))

	s.Router.Handle("GET /api/players/{playerID}/history", Chain(handlers.PlayerHistoryHandler(s.Catalog, s.History), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
