// Package app sequences roster mutations into stats synchronization and exposes
// the state the presentation layer renders.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-roster/internal/catalog"
	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"github.com/mauv0809/fantasy-roster/internal/history"
	"github.com/mauv0809/fantasy-roster/internal/metrics"
	"github.com/mauv0809/fantasy-roster/internal/notifier"
	"github.com/mauv0809/fantasy-roster/internal/pubsub"
	"github.com/mauv0809/fantasy-roster/internal/roster"
	"github.com/mauv0809/fantasy-roster/internal/scoring"
	"github.com/mauv0809/fantasy-roster/internal/stats"
)

// New creates a Controller whose roster is seeded with the default roster, if any.
// Roster changes made through the Controller synchronize stats from then on.
func New(cat *catalog.Catalog, client fantasy.FantasyClient, metrics metrics.Metrics, opts ...Option) *Controller {
	c := &Controller{
		catalog:       cat,
		roster:        roster.New(),
		cache:         stats.NewCache(),
		metrics:       metrics,
		policy:        SyncFull,
		maxConcurrent: stats.DefaultMaxConcurrent,
		now:           time.Now,
		view:          ViewHome,
		ctx:           context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}

	var recorder stats.Recorder
	if c.history != nil {
		recorder = c.history
	}
	c.syncer = stats.NewSynchronizer(client, c.cache, metrics, recorder, c.maxConcurrent)

	c.seed()
	c.roster.Subscribe(c.onRosterChange)
	return c
}

// seed adds the default roster through the store so its invariants hold for the seed too.
func (c *Controller) seed() {
	for _, id := range c.defaultRoster {
		if err := c.validate(id); err != nil {
			log.Warn("Skipping default roster player", "playerID", id, "error", err)
			continue
		}
		if err := c.roster.Add(id); err != nil {
			log.Warn("Skipping default roster player", "playerID", id, "error", err)
		}
	}
}

// Start runs the initial synchronization of the seeded roster. ctx bounds every
// synchronization triggered by later roster changes. Calling Start again is a no-op.
func (c *Controller) Start(ctx context.Context) stats.Result {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return stats.Result{}
	}
	c.started = true
	c.ctx = ctx
	c.mu.Unlock()

	log.Info("Controller started", "session", c.sessionID, "roster", c.roster.Snapshot(), "policy", c.policy)
	return c.Refresh(ctx)
}

// AddPlayer adds playerID to the roster and synchronizes stats before returning.
// Ids unknown to a loaded catalog are rejected with ErrUnknownPlayer; a full roster or a
// duplicate is rejected with roster.ErrRosterFull or roster.ErrAlreadyRostered.
func (c *Controller) AddPlayer(playerID int) error {
	if err := c.validate(playerID); err != nil {
		c.metrics.IncRosterRejected("unknown")
		return err
	}
	if err := c.roster.Add(playerID); err != nil {
		switch {
		case errors.Is(err, roster.ErrRosterFull):
			c.metrics.IncRosterRejected("full")
		case errors.Is(err, roster.ErrAlreadyRostered):
			c.metrics.IncRosterRejected("duplicate")
		}
		log.Debug("Roster add rejected", "session", c.sessionID, "playerID", playerID, "error", err)
		return err
	}
	return nil
}

// RemovePlayer removes playerID from the roster. Removing an absent player is a no-op
// and reports false.
func (c *Controller) RemovePlayer(playerID int) bool {
	return c.roster.Remove(playerID)
}

func (c *Controller) validate(playerID int) error {
	if !c.catalog.Loaded() {
		return nil
	}
	if _, ok := c.catalog.Player(playerID); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, playerID)
	}
	return nil
}

// onRosterChange runs in the goroutine that mutated the roster.
func (c *Controller) onRosterChange(change roster.Change) {
	ctx := c.lifetime()
	log.Info("Roster changed", "session", c.sessionID, "kind", change.Kind, "playerID", change.PlayerID, "roster", change.Roster)

	c.publish(ctx, pubsub.EventRosterChanged, pubsub.RosterChangedMessage{
		SessionID: c.sessionID,
		Kind:      string(change.Kind),
		PlayerID:  change.PlayerID,
		Roster:    change.Roster,
		At:        c.now(),
	})

	if change.Kind == roster.ChangeRemoved {
		c.cache.Delete(change.PlayerID)
	}

	var ids []int
	switch {
	case c.policy == SyncFull:
		ids = change.Roster
	case change.Kind == roster.ChangeAdded:
		ids = []int{change.PlayerID}
	}
	if len(ids) == 0 {
		c.settle(ctx, stats.Result{}, false)
		return
	}
	c.runCycle(ctx, ids)
}

func (c *Controller) lifetime() context.Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ctx
}

// Refresh runs a full synchronization cycle for every rostered player.
func (c *Controller) Refresh(ctx context.Context) stats.Result {
	return c.runCycle(ctx, c.roster.Snapshot())
}

// Run refreshes every interval until ctx is done.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debug("Periodic refresh stopped", "session", c.sessionID)
			return
		case <-ticker.C:
			c.Refresh(ctx)
		}
	}
}

func (c *Controller) runCycle(ctx context.Context, ids []int) stats.Result {
	result := c.syncer.Sync(ctx, ids, c.roster.Contains)
	c.settle(ctx, result, true)
	return result
}

// settle recomputes the total after a roster change or a sync and announces it. Without a
// fetch the last sync time and outcome are left as they were.
func (c *Controller) settle(ctx context.Context, result stats.Result, fetched bool) {
	total := c.TotalScore()

	c.mu.Lock()
	previous := c.lastTotal
	c.lastTotal = total
	if fetched {
		c.lastSync = c.now()
		c.lastResult = result
	}
	c.mu.Unlock()

	c.publish(ctx, pubsub.EventStatsSynced, pubsub.StatsSyncedMessage{
		SessionID: c.sessionID,
		Updated:   result.Updated,
		Failed:    result.FailedIDs(),
		Skipped:   result.Skipped,
		Total:     total,
		At:        c.now(),
	})

	if total != previous {
		c.notifyScore(ctx, previous, total, result)
	}
}

func (c *Controller) publish(ctx context.Context, topic pubsub.EventType, msg any) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.SendMessage(ctx, topic, msg); err != nil {
		log.Error("Failed to publish event", "topic", topic, "session", c.sessionID, "error", err)
	}
}

func (c *Controller) notifyScore(ctx context.Context, previous, total float64, result stats.Result) {
	if c.notifier == nil {
		return
	}
	update := notifier.ScoreUpdate{
		SessionID: c.sessionID,
		Previous:  previous,
		Total:     total,
		FailedIDs: result.FailedIDs(),
	}
	for _, entry := range c.team(ctx, false) {
		line := notifier.PlayerLine{Name: fmt.Sprintf("#%d", entry.PlayerID)}
		if entry.Player != nil {
			line.Name = entry.Player.Name
			line.Position = entry.Player.Position
			line.Team = entry.Player.Team
		}
		if entry.Stats != nil {
			line.Points = entry.Stats.Points
			line.HasStats = true
		}
		update.Players = append(update.Players, line)
	}
	if err := c.notifier.SendScoreUpdate(ctx, update); err != nil {
		log.Error("Failed to send score update", "session", c.sessionID, "error", err)
	}
}

// Roster returns the rostered player ids in insertion order.
func (c *Controller) Roster() []int {
	return c.roster.Snapshot()
}

// Stats returns the cached stats of the rostered players.
func (c *Controller) Stats() map[int]fantasy.PlayerStats {
	return c.cache.Snapshot(c.roster.Snapshot()...)
}

// TotalScore returns the aggregate score of the roster.
func (c *Controller) TotalScore() float64 {
	ids := c.roster.Snapshot()
	return scoring.Total(ids, c.cache.Snapshot(ids...))
}

// Team returns the rostered players in roster order, with their stats and trend.
func (c *Controller) Team(ctx context.Context) []TeamEntry {
	return c.team(ctx, true)
}

func (c *Controller) team(ctx context.Context, withTrend bool) []TeamEntry {
	ids := c.roster.Snapshot()
	cached := c.cache.Snapshot(ids...)

	entries := make([]TeamEntry, 0, len(ids))
	for _, id := range ids {
		entry := TeamEntry{PlayerID: id, Trend: history.TrendUnknown}
		if p, ok := c.catalog.Player(id); ok {
			entry.Player = &p
			entry.Initials = p.Initials()
		}
		if s, ok := cached[id]; ok {
			entry.Stats = &s
		}
		if withTrend && c.history != nil {
			trend, err := c.history.Trend(ctx, id)
			if err != nil {
				log.Error("Failed to read stats trend", "playerID", id, "error", err)
			} else {
				entry.Trend = trend
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// Updates returns the rostered players that have both catalog data and synced stats.
func (c *Controller) Updates() []Update {
	ids := c.roster.Snapshot()
	cached := c.cache.Snapshot(ids...)

	updates := make([]Update, 0, len(ids))
	for _, id := range ids {
		p, ok := c.catalog.Player(id)
		if !ok {
			continue
		}
		s, ok := cached[id]
		if !ok {
			continue
		}
		updates = append(updates, Update{Player: p, Stats: s})
	}
	return updates
}

// Search filters the catalog by term and tags every row with its roster status.
func (c *Controller) Search(term string) []SearchRow {
	players := c.catalog.Search(term)
	full := c.roster.IsFull()

	rows := make([]SearchRow, 0, len(players))
	for _, p := range players {
		status := StatusAvailable
		switch {
		case c.roster.Contains(p.ID):
			status = StatusOnTeam
		case full:
			status = StatusTeamFull
		}
		rows = append(rows, SearchRow{Player: p, Status: status})
	}
	return rows
}

// LastSync returns when the last cycle finished and its result. The time is zero
// before the first cycle.
func (c *Controller) LastSync() (time.Time, stats.Result) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastSync, c.lastResult
}

// CatalogState reports whether the catalog could be loaded.
func (c *Controller) CatalogState() catalog.LoadState {
	return c.catalog.State()
}

// Summary returns the home view state.
func (c *Controller) Summary() Summary {
	ids := c.roster.Snapshot()
	lastSync, result := c.LastSync()

	summary := Summary{
		SessionID:    c.sessionID,
		Roster:       ids,
		Size:         len(ids),
		Capacity:     c.roster.Capacity(),
		Label:        fmt.Sprintf("%d/%d players", len(ids), c.roster.Capacity()),
		TotalScore:   scoring.Total(ids, c.cache.Snapshot(ids...)),
		View:         c.ActiveView(),
		CatalogState: c.catalog.State(),
		FailedIDs:    result.FailedIDs(),
	}
	if !lastSync.IsZero() {
		summary.LastSync = &lastSync
	}
	return summary
}
