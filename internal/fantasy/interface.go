package fantasy

import "context"

// FantasyClient defines the interface for interacting with the fantasy stats API.
// This allows for mock implementations to be used in tests.
type FantasyClient interface {
	GetPlayers(ctx context.Context) ([]Player, error)
	GetPlayerStats(ctx context.Context, playerID int) (PlayerStats, error)
}
