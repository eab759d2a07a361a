package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncSyncCycles()
	IncStatsFetched()
	IncStatsFetchFailed()
	IncStaleCommitsSkipped()
	ObserveFetchDuration(duration float64)
	IncRosterRejected(reason string)
	SetActiveSessions(count int)
	IncScoreNotifSent()
	IncScoreNotifFailed()
	SetStartupTime(duration float64)
}
