package fantasy

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the FantasyClient interface for testing.
// It is safe for concurrent use; the Func hooks are invoked outside the lock so that
// concurrent fetches really overlap.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetPlayersFunc     func(ctx context.Context) ([]Player, error)
	GetPlayerStatsFunc func(ctx context.Context, playerID int) (PlayerStats, error)

	// Call records
	GetPlayersCalls     int
	GetPlayerStatsCalls []int
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayersCalls = 0
	m.GetPlayerStatsCalls = nil
}

func (m *MockClient) GetPlayers(ctx context.Context) ([]Player, error) {
	m.mu.Lock()
	m.GetPlayersCalls++
	fn := m.GetPlayersFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return []Player{}, nil
}

func (m *MockClient) GetPlayerStats(ctx context.Context, playerID int) (PlayerStats, error) {
	m.mu.Lock()
	m.GetPlayerStatsCalls = append(m.GetPlayerStatsCalls, playerID)
	fn := m.GetPlayerStatsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, playerID)
	}
	return PlayerStats{PlayerID: playerID}, nil
}

// StatsCalls returns a copy of the recorded GetPlayerStats player ids.
func (m *MockClient) StatsCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]int, len(m.GetPlayerStatsCalls))
	copy(calls, m.GetPlayerStatsCalls)
	return calls
}
