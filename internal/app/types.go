package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/fantasy-roster/internal/catalog"
	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"github.com/mauv0809/fantasy-roster/internal/history"
	"github.com/mauv0809/fantasy-roster/internal/metrics"
	"github.com/mauv0809/fantasy-roster/internal/notifier"
	"github.com/mauv0809/fantasy-roster/internal/pubsub"
	"github.com/mauv0809/fantasy-roster/internal/roster"
	"github.com/mauv0809/fantasy-roster/internal/stats"
)

var (
	ErrUnknownPlayer     = errors.New("unknown player")
	ErrUnknownView       = errors.New("unknown view")
	ErrUnknownSyncPolicy = errors.New("unknown sync policy")
)

// View is the screen the presentation layer currently shows.
type View string

const (
	ViewHome    View = "home"
	ViewTeam    View = "team"
	ViewPlayers View = "players"
)

// SyncPolicy decides which players are fetched after a roster change.
type SyncPolicy string

const (
	// SyncFull re-fetches every rostered player on any membership change.
	SyncFull SyncPolicy = "full"
	// SyncDelta fetches only a newly added player. Removals fetch nothing.
	SyncDelta SyncPolicy = "delta"
)

// RowStatus tells whether a catalog row can be added to the roster.
type RowStatus string

const (
	StatusOnTeam    RowStatus = "on_team"
	StatusTeamFull  RowStatus = "team_full"
	StatusAvailable RowStatus = "available"
)

// Controller composes one user's roster, stats cache and synchronizer, and owns the
// active view. It is the only place where a roster mutation leads to a synchronization.
type Controller struct {
	sessionID string
	catalog   *catalog.Catalog
	roster    roster.RosterStore
	cache     *stats.Cache
	syncer    *stats.Synchronizer
	metrics   metrics.Metrics
	history   history.HistoryStore
	publisher pubsub.PubSubClient
	notifier  notifier.Notifier

	policy        SyncPolicy
	defaultRoster []int
	maxConcurrent int
	now           func() time.Time

	mu         sync.RWMutex
	ctx        context.Context
	started    bool
	view       View
	lastSync   time.Time
	lastResult stats.Result
	lastTotal  float64
}

// TeamEntry is one rostered player together with whatever is known about them.
// Player is nil when the id is not in the catalog; Stats is nil until the first
// successful fetch.
type TeamEntry struct {
	PlayerID int                  `json:"player_id"`
	Initials string               `json:"initials,omitempty"`
	Player   *fantasy.Player      `json:"player,omitempty"`
	Stats    *fantasy.PlayerStats `json:"stats,omitempty"`
	Trend    history.Trend        `json:"trend"`
}

// Update pairs a rostered catalog player with their synced stats.
type Update struct {
	Player fantasy.Player      `json:"player"`
	Stats  fantasy.PlayerStats `json:"stats"`
}

// SearchRow is a catalog player with its roster status.
type SearchRow struct {
	fantasy.Player
	Status RowStatus `json:"status"`
}

// Summary is the state shown on the home view.
type Summary struct {
	SessionID    string            `json:"session_id,omitempty"`
	Roster       []int             `json:"roster"`
	Size         int               `json:"size"`
	Capacity     int               `json:"capacity"`
	Label        string            `json:"label"`
	TotalScore   float64           `json:"total_score"`
	View         View              `json:"view"`
	CatalogState catalog.LoadState `json:"catalog_state"`
	LastSync     *time.Time        `json:"last_sync,omitempty"`
	FailedIDs    []int             `json:"failed_ids"`
}
