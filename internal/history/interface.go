package history

import (
	"context"

	"github.com/mauv0809/fantasy-roster/internal/fantasy"
)

// HistoryStore keeps an append-only log of synchronized player stats.
type HistoryStore interface {
	Record(ctx context.Context, stats fantasy.PlayerStats) error
	History(ctx context.Context, playerID int, limit int) ([]Entry, error)
	Trend(ctx context.Context, playerID int) (Trend, error)
}
