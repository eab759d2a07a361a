package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		SyncCycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fantasy_sync_cycles_total",
			Help: "The total number of stats synchronization cycles.",
		}),
		StatsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fantasy_stats_fetched_total",
			Help: "The total number of player stats fetched and committed to a cache.",
		}),
		StatsFetchFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fantasy_stats_fetch_failed_total",
			Help: "The total number of player stats fetches that failed.",
		}),
		StaleCommitsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fantasy_stats_stale_commits_skipped_total",
			Help: "Fetched stats dropped because the player left the roster while the fetch was in flight.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fantasy_stats_fetch_duration_seconds",
			Help:    "The duration of individual player stats fetches.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		RosterRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fantasy_roster_add_rejected_total",
			Help: "The total number of rejected roster additions, by reason.",
		}, []string{"reason"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fantasy_active_sessions",
			Help: "The number of open roster sessions.",
		}),
		ScoreNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fantasy_score_notifications_sent_total",
			Help: "The total number of score notifications successfully sent.",
		}),
		ScoreNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fantasy_score_notifications_failed_total",
			Help: "The total number of score notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fantasy_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.SyncCycles,
		s.StatsFetched,
		s.StatsFetchFailed,
		s.StaleCommitsSkipped,
		s.FetchDuration,
		s.RosterRejected,
		s.ActiveSessions,
		s.ScoreNotifSent,
		s.ScoreNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncSyncCycles() {
	s.SyncCycles.Inc()
}

func (s *Service) IncStatsFetched() {
	s.StatsFetched.Inc()
}

func (s *Service) IncStatsFetchFailed() {
	s.StatsFetchFailed.Inc()
}

func (s *Service) IncStaleCommitsSkipped() {
	s.StaleCommitsSkipped.Inc()
}

func (s *Service) ObserveFetchDuration(duration float64) {
	s.FetchDuration.Observe(duration)
}

func (s *Service) IncRosterRejected(reason string) {
	s.RosterRejected.WithLabelValues(reason).Inc()
}

func (s *Service) SetActiveSessions(count int) {
	s.ActiveSessions.Set(float64(count))
}

func (s *Service) IncScoreNotifSent() {
	s.ScoreNotifSent.Inc()
}

func (s *Service) IncScoreNotifFailed() {
	s.ScoreNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
