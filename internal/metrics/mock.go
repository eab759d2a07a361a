package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	syncCycles          int
	statsFetched        int
	statsFetchFailed    int
	staleCommitsSkipped int
	fetchDurations      []float64
	rosterRejected      map[string]int
	activeSessions      int
	scoreNotifSent      int
	scoreNotifFailed    int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		fetchDurations: make([]float64, 0),
		rosterRejected: make(map[string]int),
	}
}

func (m *Mock) IncSyncCycles() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncCycles++
}

func (m *Mock) IncStatsFetched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsFetched++
}

func (m *Mock) IncStatsFetchFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsFetchFailed++
}

func (m *Mock) IncStaleCommitsSkipped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staleCommitsSkipped++
}

func (m *Mock) ObserveFetchDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchDurations = append(m.fetchDurations, duration)
}

func (m *Mock) IncRosterRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rosterRejected[reason]++
}

func (m *Mock) SetActiveSessions(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeSessions = count
}

func (m *Mock) IncScoreNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoreNotifSent++
}

func (m *Mock) IncScoreNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoreNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// SyncCycles returns the number of times IncSyncCycles was called.
func (m *Mock) SyncCycles() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.syncCycles
}

// StatsFetched returns the number of times IncStatsFetched was called.
func (m *Mock) StatsFetched() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsFetched
}

// StatsFetchFailed returns the number of times IncStatsFetchFailed was called.
func (m *Mock) StatsFetchFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsFetchFailed
}

// StaleCommitsSkipped returns the number of times IncStaleCommitsSkipped was called.
func (m *Mock) StaleCommitsSkipped() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.staleCommitsSkipped
}

// FetchDurations returns the number of observed fetch durations.
func (m *Mock) FetchDurations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.fetchDurations)
}

// RosterRejected returns how often IncRosterRejected was called with reason.
func (m *Mock) RosterRejected(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rosterRejected[reason]
}

// ActiveSessions returns the last value passed to SetActiveSessions.
func (m *Mock) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeSessions
}

// ScoreNotifSent returns the number of times IncScoreNotifSent was called.
func (m *Mock) ScoreNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoreNotifSent
}

// ScoreNotifFailed returns the number of times IncScoreNotifFailed was called.
func (m *Mock) ScoreNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoreNotifFailed
}
