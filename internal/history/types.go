package history

import (
	"database/sql"
	"sync"
	"time"
)

// Trend compares the two most recent recorded points of a player.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendFlat    Trend = "flat"
	TrendUnknown Trend = "unknown"
)

// DefaultLimit is used by History when no positive limit is given.
const DefaultLimit = 20

// Entry is one recorded stats observation.
type Entry struct {
	PlayerID   int       `json:"player_id"`
	Points     float64   `json:"points"`
	Story      string    `json:"story"`
	LastUpdate time.Time `json:"last_update"`
	RecordedAt time.Time `json:"recorded_at"`
}

type store struct {
	db  *sql.DB
	mu  sync.Mutex
	now func() time.Time
}
