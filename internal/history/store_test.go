package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/mauv0809/fantasy-roster/internal/database"
	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"github.com/mauv0809/fantasy-roster/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (history.HistoryStore, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	return history.New(db), teardown
}

func TestRecordAndHistory(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	first := time.Date(2024, 9, 8, 17, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, fantasy.PlayerStats{PlayerID: 1, Points: 8, Story: "slow start", LastUpdate: first}))
	require.NoError(t, store.Record(ctx, fantasy.PlayerStats{PlayerID: 1, Points: 14, Story: "late TD", LastUpdate: first.Add(time.Hour)}))
	require.NoError(t, store.Record(ctx, fantasy.PlayerStats{PlayerID: 4, Points: 3}))

	entries, err := store.History(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, float64(14), entries[0].Points, "newest entry first")
	assert.Equal(t, "late TD", entries[0].Story)
	assert.True(t, first.Add(time.Hour).Equal(entries[0].LastUpdate))
	assert.False(t, entries[0].RecordedAt.IsZero())
	assert.Equal(t, float64(8), entries[1].Points)

	other, err := store.History(ctx, 4, 10)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.True(t, other[0].LastUpdate.IsZero())

	limited, err := store.History(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	none, err := store.History(ctx, 99, 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecord_SkipsUnchangedObservation(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	stats := fantasy.PlayerStats{PlayerID: 6, Points: 11, LastUpdate: time.UnixMilli(1725800000000)}
	require.NoError(t, store.Record(ctx, stats))
	require.NoError(t, store.Record(ctx, stats))

	entries, err := store.History(ctx, 6, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTrend(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	trend, err := store.Trend(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, history.TrendUnknown, trend)

	require.NoError(t, store.Record(ctx, fantasy.PlayerStats{PlayerID: 1, Points: 5}))
	trend, _ = store.Trend(ctx, 1)
	assert.Equal(t, history.TrendUnknown, trend, "a single observation has no trend")

	require.NoError(t, store.Record(ctx, fantasy.PlayerStats{PlayerID: 1, Points: 9, Story: "x", LastUpdate: time.UnixMilli(1)}))
	trend, _ = store.Trend(ctx, 1)
	assert.Equal(t, history.TrendUp, trend)

	require.NoError(t, store.Record(ctx, fantasy.PlayerStats{PlayerID: 1, Points: 2, LastUpdate: time.UnixMilli(2)}))
	trend, _ = store.Trend(ctx, 1)
	assert.Equal(t, history.TrendDown, trend)

	require.NoError(t, store.Record(ctx, fantasy.PlayerStats{PlayerID: 1, Points: 2, LastUpdate: time.UnixMilli(3)}))
	trend, _ = store.Trend(ctx, 1)
	assert.Equal(t, history.TrendFlat, trend)
}

func TestTrendOf(t *testing.T) {
	tests := []struct {
		name    string
		entries []history.Entry
		want    history.Trend
	}{
		{"empty", nil, history.TrendUnknown},
		{"single", []history.Entry{{Points: 1}}, history.TrendUnknown},
		{"up", []history.Entry{{Points: 3}, {Points: 1}}, history.TrendUp},
		{"down", []history.Entry{{Points: 1}, {Points: 3}}, history.TrendDown},
		{"flat", []history.Entry{{Points: 3}, {Points: 3}, {Points: 9}}, history.TrendFlat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, history.TrendOf(tt.entries))
		})
	}
}
