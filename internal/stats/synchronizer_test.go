package stats

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"github.com/mauv0809/fantasy-roster/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderMock struct {
	mu       sync.Mutex
	recorded []fantasy.PlayerStats
	err      error
}

func (r *recorderMock) Record(ctx context.Context, stats fantasy.PlayerStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recorded = append(r.recorded, stats)
	return r.err
}

func TestSync_PartialFailureIsIsolated(t *testing.T) {
	client := fantasy.NewMockClient()
	client.GetPlayerStatsFunc = func(ctx context.Context, playerID int) (fantasy.PlayerStats, error) {
		if playerID == 4 {
			return fantasy.PlayerStats{}, errors.New("upstream timeout")
		}
		return fantasy.PlayerStats{Points: 12, Story: "two touchdowns"}, nil
	}
	cache := NewCache()
	metr := metrics.NewMock()
	s := NewSynchronizer(client, cache, metr, nil, 2)

	result := s.Sync(context.Background(), []int{1, 4}, nil)

	assert.Equal(t, []int{1}, result.Updated)
	assert.Equal(t, []int{4}, result.FailedIDs())
	assert.False(t, result.OK())
	require.Len(t, result.Failures, 1)
	assert.EqualError(t, result.Failures[0], "sync failed for player 4: upstream timeout")

	got, ok := cache.Get(1)
	require.True(t, ok)
	assert.Equal(t, fantasy.PlayerStats{PlayerID: 1, Points: 12, Story: "two touchdowns"}, got)
	_, ok = cache.Get(4)
	assert.False(t, ok, "a never-fetched entry stays absent after a failure")

	assert.Equal(t, 1, metr.SyncCycles())
	assert.Equal(t, 1, metr.StatsFetched())
	assert.Equal(t, 1, metr.StatsFetchFailed())
	assert.Equal(t, 2, metr.FetchDurations())
}

func TestSync_FailureKeepsPreviousEntry(t *testing.T) {
	client := fantasy.NewMockClient()
	client.GetPlayerStatsFunc = func(ctx context.Context, playerID int) (fantasy.PlayerStats, error) {
		return fantasy.PlayerStats{}, errors.New("boom")
	}
	cache := NewCache()
	previous := fantasy.PlayerStats{PlayerID: 4, Points: 7, Story: "earlier"}
	cache.Put(previous)
	s := NewSynchronizer(client, cache, metrics.NewMock(), nil, 0)

	result := s.Sync(context.Background(), []int{4}, nil)

	assert.Empty(t, result.Updated)
	got, ok := cache.Get(4)
	require.True(t, ok)
	assert.Equal(t, previous, got)
}

func TestSync_FailureDoesNotBlockConcurrentFetch(t *testing.T) {
	// Player 4 only fails after player 1 has been committed, so both fetches must
	// be in flight at the same time for the test to finish.
	committed := make(chan struct{})
	client := fantasy.NewMockClient()
	cache := NewCache()
	client.GetPlayerStatsFunc = func(ctx context.Context, playerID int) (fantasy.PlayerStats, error) {
		if playerID == 4 {
			select {
			case <-committed:
			case <-time.After(2 * time.Second):
			}
			return fantasy.PlayerStats{}, errors.New("late failure")
		}
		return fantasy.PlayerStats{Points: 9}, nil
	}
	rec := &recorderMock{}
	s := NewSynchronizer(client, cache, metrics.NewMock(), recorderFunc(func(ctx context.Context, st fantasy.PlayerStats) error {
		close(committed)
		return rec.Record(ctx, st)
	}), 2)

	result := s.Sync(context.Background(), []int{4, 1}, nil)

	assert.Equal(t, []int{1}, result.Updated)
	assert.Equal(t, []int{4}, result.FailedIDs())
	got, ok := cache.Get(1)
	require.True(t, ok)
	assert.Equal(t, float64(9), got.Points)
	assert.Len(t, rec.recorded, 1)
}

func TestSync_SkipsPlayersNoLongerRostered(t *testing.T) {
	client := fantasy.NewMockClient()
	client.GetPlayerStatsFunc = func(ctx context.Context, playerID int) (fantasy.PlayerStats, error) {
		return fantasy.PlayerStats{Points: float64(playerID)}, nil
	}
	cache := NewCache()
	metr := metrics.NewMock()
	s := NewSynchronizer(client, cache, metr, nil, 3)

	rostered := map[int]bool{1: true, 6: true}
	result := s.Sync(context.Background(), []int{1, 4, 6}, func(id int) bool { return rostered[id] })

	assert.Equal(t, []int{1, 6}, result.Updated)
	assert.Equal(t, []int{4}, result.Skipped)
	_, ok := cache.Get(4)
	assert.False(t, ok)
	assert.Equal(t, 1, metr.StaleCommitsSkipped())
}

func TestSync_RecorderErrorsAreNotFatal(t *testing.T) {
	client := fantasy.NewMockClient()
	rec := &recorderMock{err: errors.New("disk full")}
	cache := NewCache()
	s := NewSynchronizer(client, cache, metrics.NewMock(), rec, 1)

	result := s.Sync(context.Background(), []int{1, 6}, nil)

	assert.True(t, result.OK())
	assert.Equal(t, []int{1, 6}, result.Updated)
	assert.Equal(t, 2, cache.Len())
	assert.Len(t, rec.recorded, 2)
}

func TestSync_EmptyRosterIsNoop(t *testing.T) {
	client := fantasy.NewMockClient()
	metr := metrics.NewMock()
	s := NewSynchronizer(client, NewCache(), metr, nil, 1)

	result := s.Sync(context.Background(), nil, nil)

	assert.True(t, result.OK())
	assert.Empty(t, client.StatsCalls())
	assert.Equal(t, 0, metr.SyncCycles())
}

func TestSync_RespectsConcurrencyLimit(t *testing.T) {
	var mu sync.Mutex
	inFlight, peak := 0, 0
	client := fantasy.NewMockClient()
	client.GetPlayerStatsFunc = func(ctx context.Context, playerID int) (fantasy.PlayerStats, error) {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		mu.Lock()
		inFlight--
		mu.Unlock()
		return fantasy.PlayerStats{}, nil
	}
	s := NewSynchronizer(client, NewCache(), metrics.NewMock(), nil, 2)

	result := s.Sync(context.Background(), []int{1, 2, 3, 4, 5}, nil)

	assert.Len(t, result.Updated, 5)
	assert.LessOrEqual(t, peak, 2)
}

type recorderFunc func(ctx context.Context, stats fantasy.PlayerStats) error

func (f recorderFunc) Record(ctx context.Context, stats fantasy.PlayerStats) error {
	return f(ctx, stats)
}
