package app

import (
	"time"

	"github.com/mauv0809/fantasy-roster/internal/history"
	"github.com/mauv0809/fantasy-roster/internal/notifier"
	"github.com/mauv0809/fantasy-roster/internal/pubsub"
)

// Option applies a configuration option to the Controller.
type Option func(*Controller)

// WithSessionID tags events and notifications with id.
func WithSessionID(id string) Option {
	return func(c *Controller) {
		c.sessionID = id
	}
}

// WithSyncPolicy sets the policy used after roster changes.
func WithSyncPolicy(policy SyncPolicy) Option {
	return func(c *Controller) {
		if policy == SyncFull || policy == SyncDelta {
			c.policy = policy
		}
	}
}

// WithDefaultRoster sets the players seeded by Start.
func WithDefaultRoster(ids []int) Option {
	return func(c *Controller) {
		c.defaultRoster = append([]int(nil), ids...)
	}
}

// WithMaxConcurrent bounds the number of concurrent stats fetches.
func WithMaxConcurrent(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxConcurrent = n
		}
	}
}

// WithHistory records every synced observation and reports trends from it.
func WithHistory(store history.HistoryStore) Option {
	return func(c *Controller) {
		c.history = store
	}
}

// WithPublisher publishes roster and sync events.
func WithPublisher(publisher pubsub.PubSubClient) Option {
	return func(c *Controller) {
		c.publisher = publisher
	}
}

// WithNotifier sends a notification whenever a cycle changes the total score.
func WithNotifier(n notifier.Notifier) Option {
	return func(c *Controller) {
		c.notifier = n
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}
