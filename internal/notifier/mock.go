package notifier

import (
	"context"
	"sync"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendScoreUpdateFunc func(ctx context.Context, update ScoreUpdate) error

	// Call records
	SendScoreUpdateCalls []ScoreUpdate
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendScoreUpdateCalls = nil
}

func (m *Mock) SendScoreUpdate(ctx context.Context, update ScoreUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendScoreUpdateCalls = append(m.SendScoreUpdateCalls, update)
	if m.SendScoreUpdateFunc != nil {
		return m.SendScoreUpdateFunc(ctx, update)
	}
	return nil
}

// Updates returns a copy of the recorded score updates.
func (m *Mock) Updates() []ScoreUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ScoreUpdate{}, m.SendScoreUpdateCalls...)
}
