package stats

import (
	"context"

	"github.com/mauv0809/fantasy-roster/internal/fantasy"
)

// Recorder receives every committed stats entry, e.g. to keep a history.
type Recorder interface {
	Record(ctx context.Context, stats fantasy.PlayerStats) error
}

// MembershipFunc reports whether a player is still rostered at commit time.
type MembershipFunc func(playerID int) bool
