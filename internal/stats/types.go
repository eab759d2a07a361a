package stats

import (
	"fmt"
	"sync"

	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"github.com/mauv0809/fantasy-roster/internal/metrics"
)

// Cache maps player ids to their most recently synchronized stats.
// Every write replaces a single key atomically; an absent key means "never synced".
type Cache struct {
	mu      sync.RWMutex
	entries map[int]fantasy.PlayerStats
}

// Synchronizer fetches stats for a set of players and commits each outcome independently.
type Synchronizer struct {
	client        fantasy.FantasyClient
	cache         *Cache
	metrics       metrics.Metrics
	recorder      Recorder
	maxConcurrent int
}

// SyncFailure reports that one player's fetch failed. It never aborts a cycle.
type SyncFailure struct {
	PlayerID int
	Err      error
}

func (e *SyncFailure) Error() string {
	return fmt.Sprintf("sync failed for player %d: %v", e.PlayerID, e.Err)
}

func (e *SyncFailure) Unwrap() error {
	return e.Err
}

// Result summarizes one synchronization cycle.
type Result struct {
	Requested []int          `json:"requested"`
	Updated   []int          `json:"updated"`
	Skipped   []int          `json:"skipped"`
	Failures  []*SyncFailure `json:"-"`
}

// FailedIDs returns the ids whose fetch failed in this cycle.
func (r Result) FailedIDs() []int {
	ids := make([]int, 0, len(r.Failures))
	for _, f := range r.Failures {
		ids = append(ids, f.PlayerID)
	}
	return ids
}

// OK reports whether every requested fetch succeeded.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}
