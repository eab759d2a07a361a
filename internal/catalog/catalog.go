// Package catalog loads the player catalog and searches it.
package catalog

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-roster/internal/fantasy"
)

// New returns an empty catalog in the not-loaded state.
func New() *Catalog {
	return &Catalog{
		players: []fantasy.Player{},
		byID:    map[int]fantasy.Player{},
		state:   StateNotLoaded,
	}
}

// NewFromPlayers returns a loaded catalog holding players.
func NewFromPlayers(players []fantasy.Player) *Catalog {
	c := New()
	c.set(players, StateLoaded, nil)
	return c
}

// Load fetches the catalog from client and replaces the current content. On failure a
// *LoadFailure is returned; a catalog that never loaded becomes empty and failed, while a
// loaded one keeps its players.
func (c *Catalog) Load(ctx context.Context, client fantasy.FantasyClient) error {
	players, err := client.GetPlayers(ctx)
	if err != nil {
		failure := &LoadFailure{Err: err}
		if c.Loaded() {
			log.Warn("Failed to reload player catalog, keeping current players", "players", len(c.Players()), "error", err)
			return failure
		}
		c.set(nil, StateFailed, failure)
		log.Error("Failed to load player catalog", "error", err)
		return failure
	}
	c.set(players, StateLoaded, nil)
	log.Info("Player catalog loaded", "players", len(players))
	return nil
}

func (c *Catalog) set(players []fantasy.Player, state LoadState, err error) {
	list := make([]fantasy.Player, len(players))
	copy(list, players)
	byID := make(map[int]fantasy.Player, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.players = list
	c.byID = byID
	c.state = state
	c.err = err
}

// Players returns a copy of the catalog in its original order.
func (c *Catalog) Players() []fantasy.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list := make([]fantasy.Player, len(c.players))
	copy(list, c.players)
	return list
}

// Player looks up a player by id.
func (c *Catalog) Player(id int) (fantasy.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) State() LoadState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Catalog) Loaded() bool {
	return c.State() == StateLoaded
}

// Err returns the last load failure, if any.
func (c *Catalog) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Search filters the catalog by term.
func (c *Catalog) Search(term string) []fantasy.Player {
	return Filter(term, c.Players())
}
