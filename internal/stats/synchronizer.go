package stats

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"github.com/mauv0809/fantasy-roster/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxConcurrent bounds the number of in-flight fetches of one cycle.
const DefaultMaxConcurrent = 3

// NewSynchronizer creates a Synchronizer committing into cache. recorder may be nil.
func NewSynchronizer(client fantasy.FantasyClient, cache *Cache, metrics metrics.Metrics, recorder Recorder, maxConcurrent int) *Synchronizer {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &Synchronizer{
		client:        client,
		cache:         cache,
		metrics:       metrics,
		recorder:      recorder,
		maxConcurrent: maxConcurrent,
	}
}

// Cache returns the cache the synchronizer commits into.
func (s *Synchronizer) Cache() *Cache {
	return s.cache
}

// Sync runs one synchronization cycle for playerIDs. Each fetch is committed on its own:
// a failure leaves the player's cache entry untouched and never stops the other fetches.
// isMember, when set, is consulted right before a commit so that stats of players removed
// while their fetch was in flight are dropped.
func (s *Synchronizer) Sync(ctx context.Context, playerIDs []int, isMember MembershipFunc) Result {
	result := Result{
		Requested: append([]int(nil), playerIDs...),
		Updated:   []int{},
		Skipped:   []int{},
	}
	if len(playerIDs) == 0 {
		return result
	}

	s.metrics.IncSyncCycles()
	log.Debug("Starting stats sync", "players", playerIDs)

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.maxConcurrent)

	for _, id := range playerIDs {
		g.Go(func() error {
			outcome := s.syncOne(ctx, id, isMember)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case outcome.err != nil:
				result.Failures = append(result.Failures, outcome.err)
			case outcome.skipped:
				result.Skipped = append(result.Skipped, id)
			default:
				result.Updated = append(result.Updated, id)
			}
			// Failures are isolated per player, never returned to the group.
			return nil
		})
	}
	_ = g.Wait()

	sort.Ints(result.Updated)
	sort.Ints(result.Skipped)
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].PlayerID < result.Failures[j].PlayerID
	})

	if len(result.Failures) > 0 {
		log.Warn("Stats sync finished with failures", "updated", result.Updated, "failed", result.FailedIDs(), "skipped", result.Skipped)
	} else {
		log.Info("Stats sync finished", "updated", result.Updated, "skipped", result.Skipped)
	}
	return result
}

type syncOutcome struct {
	skipped bool
	err     *SyncFailure
}

func (s *Synchronizer) syncOne(ctx context.Context, playerID int, isMember MembershipFunc) syncOutcome {
	start := time.Now()
	stats, err := s.client.GetPlayerStats(ctx, playerID)
	s.metrics.ObserveFetchDuration(time.Since(start).Seconds())
	if err != nil {
		s.metrics.IncStatsFetchFailed()
		log.Error("Failed to fetch player stats", "playerID", playerID, "error", err)
		return syncOutcome{err: &SyncFailure{PlayerID: playerID, Err: err}}
	}
	stats.PlayerID = playerID

	if !s.cache.PutIf(stats, isMember) {
		s.metrics.IncStaleCommitsSkipped()
		log.Debug("Dropping stats of player no longer rostered", "playerID", playerID)
		return syncOutcome{skipped: true}
	}
	s.metrics.IncStatsFetched()

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, stats); err != nil {
			log.Error("Failed to record stats history", "playerID", playerID, "error", err)
		}
	}
	return syncOutcome{}
}
