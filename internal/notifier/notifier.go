package notifier

import "context"

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// After a synchronization cycle changed the aggregate score
	SendScoreUpdate(ctx context.Context, update ScoreUpdate) error
}

// ScoreUpdate describes a change of a roster's aggregate score.
type ScoreUpdate struct {
	SessionID string
	Previous  float64
	Total     float64
	Players   []PlayerLine
	// FailedIDs lists players whose stats could not be refreshed in this cycle.
	FailedIDs []int
}

// PlayerLine is one rostered player of a ScoreUpdate.
type PlayerLine struct {
	Name     string
	Position string
	Team     string
	Points   float64
	HasStats bool
}
