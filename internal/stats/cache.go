package stats

import (
	"github.com/mauv0809/fantasy-roster/internal/fantasy"
)

// NewCache creates an empty stats cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[int]fantasy.PlayerStats),
	}
}

// Get returns the cached stats for a player, if any.
func (c *Cache) Get(playerID int) (fantasy.PlayerStats, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.entries[playerID]
	return s, ok
}

// Put replaces the entry of stats.PlayerID. Concurrent writes for the same key resolve
// to whichever completes last.
func (c *Cache) Put(stats fantasy.PlayerStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[stats.PlayerID] = stats
}

// PutIf stores stats only while keep(stats.PlayerID) holds, evaluated under the cache
// lock so a concurrent Delete cannot be overtaken. It reports whether the entry was stored.
func (c *Cache) PutIf(stats fantasy.PlayerStats, keep MembershipFunc) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if keep != nil && !keep(stats.PlayerID) {
		return false
	}
	c.entries[stats.PlayerID] = stats
	return true
}

// Delete drops the entry of a player.
func (c *Cache) Delete(playerID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, playerID)
}

// Len returns the number of cached players.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Snapshot returns a copy of the cache, optionally restricted to the given ids.
func (c *Cache) Snapshot(playerIDs ...int) map[int]fantasy.PlayerStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(playerIDs) == 0 {
		out := make(map[int]fantasy.PlayerStats, len(c.entries))
		for id, s := range c.entries {
			out[id] = s
		}
		return out
	}

	out := make(map[int]fantasy.PlayerStats, len(playerIDs))
	for _, id := range playerIDs {
		if s, ok := c.entries[id]; ok {
			out[id] = s
		}
	}
	return out
}
