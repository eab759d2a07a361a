package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client *pubsub.Client
}

// localClient encodes messages like client does but only logs them.
type localClient struct{}

// EventType represents the type of event/message sent via pubsub.
// It doubles as the topic name.
type EventType string

const (
	EventRosterChanged EventType = "roster-changed"
	EventStatsSynced   EventType = "stats-synced"
)

// RosterChangedMessage is published after every successful roster mutation.
type RosterChangedMessage struct {
	SessionID string    `msgpack:"session_id"`
	Kind      string    `msgpack:"kind"`
	PlayerID  int       `msgpack:"player_id"`
	Roster    []int     `msgpack:"roster"`
	At        time.Time `msgpack:"at"`
}

// StatsSyncedMessage is published after every synchronization cycle.
type StatsSyncedMessage struct {
	SessionID string    `msgpack:"session_id"`
	Updated   []int     `msgpack:"updated"`
	Failed    []int     `msgpack:"failed"`
	Skipped   []int     `msgpack:"skipped"`
	Total     float64   `msgpack:"total"`
	At        time.Time `msgpack:"at"`
}
