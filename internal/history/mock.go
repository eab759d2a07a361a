package history

import (
	"context"
	"sync"

	"github.com/mauv0809/fantasy-roster/internal/fantasy"
)

// Mock is an in-memory HistoryStore for testing.
type Mock struct {
	mu sync.Mutex

	RecordFunc func(ctx context.Context, stats fantasy.PlayerStats) error

	RecordCalls []fantasy.PlayerStats
	entries     map[int][]Entry
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{entries: make(map[int][]Entry)}
}

func (m *Mock) Record(ctx context.Context, stats fantasy.PlayerStats) error {
	m.mu.Lock()
	m.RecordCalls = append(m.RecordCalls, stats)
	fn := m.RecordFunc
	m.mu.Unlock()
	if fn != nil {
		if err := fn(ctx, stats); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	entry := Entry{PlayerID: stats.PlayerID, Points: stats.Points, Story: stats.Story, LastUpdate: stats.LastUpdate}
	m.entries[stats.PlayerID] = append([]Entry{entry}, m.entries[stats.PlayerID]...)
	return nil
}

func (m *Mock) History(ctx context.Context, playerID int, limit int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 {
		limit = DefaultLimit
	}
	list := m.entries[playerID]
	if len(list) > limit {
		list = list[:limit]
	}
	return append([]Entry{}, list...), nil
}

func (m *Mock) Trend(ctx context.Context, playerID int) (Trend, error) {
	entries, err := m.History(ctx, playerID, 2)
	if err != nil {
		return TrendUnknown, err
	}
	return TrendOf(entries), nil
}

// Recorded returns a copy of every stats value passed to Record.
func (m *Mock) Recorded() []fantasy.PlayerStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]fantasy.PlayerStats{}, m.RecordCalls...)
}
