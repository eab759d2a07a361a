package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	SyncCycles          prometheus.Counter
	StatsFetched        prometheus.Counter
	StatsFetchFailed    prometheus.Counter
	StaleCommitsSkipped prometheus.Counter
	FetchDuration       prometheus.Histogram
	RosterRejected      *prometheus.CounterVec
	ActiveSessions      prometheus.Gauge
	ScoreNotifSent      prometheus.Counter
	ScoreNotifFailed    prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
