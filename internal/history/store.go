// Package history persists every successfully synchronized stats observation so that
// the trend of a player's points can be shown.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-roster/internal/fantasy"
)

// New creates a HistoryStore on top of a migrated database.
func New(db *sql.DB) HistoryStore {
	return &store{
		db:  db,
		now: time.Now,
	}
}

// Record appends stats to the player's history. An observation identical to the
// latest recorded one (same points and same upstream update time) is not stored again,
// so periodic refreshes do not flatten the trend.
func (s *store) Record(ctx context.Context, stats fantasy.PlayerStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lastUpdate := toMillis(stats.LastUpdate)

	var points float64
	var latestUpdate int64
	err := s.db.QueryRowContext(ctx,
		`SELECT points, last_update FROM stats_history WHERE player_id = ? ORDER BY id DESC LIMIT 1`,
		stats.PlayerID).Scan(&points, &latestUpdate)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("failed to read latest stats of player %d: %w", stats.PlayerID, err)
	case points == stats.Points && latestUpdate == lastUpdate:
		log.Debug("Stats unchanged, not recording", "playerID", stats.PlayerID)
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO stats_history (player_id, points, story, last_update, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		stats.PlayerID, stats.Points, stats.Story, lastUpdate, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record stats of player %d: %w", stats.PlayerID, err)
	}
	return nil
}

// History returns up to limit entries of playerID, newest first.
func (s *store) History(ctx context.Context, playerID int, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_id, points, story, last_update, recorded_at FROM stats_history
		WHERE player_id = ? ORDER BY id DESC LIMIT ?`,
		playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history of player %d: %w", playerID, err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var lastUpdate, recordedAt int64
		if err := rows.Scan(&e.PlayerID, &e.Points, &e.Story, &lastUpdate, &recordedAt); err != nil {
			return nil, err
		}
		e.LastUpdate = fromMillis(lastUpdate)
		e.RecordedAt = fromMillis(recordedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Trend compares the latest recorded points of playerID with the previous ones.
func (s *store) Trend(ctx context.Context, playerID int) (Trend, error) {
	entries, err := s.History(ctx, playerID, 2)
	if err != nil {
		return TrendUnknown, err
	}
	return TrendOf(entries), nil
}

// TrendOf derives the trend from entries ordered newest first.
func TrendOf(entries []Entry) Trend {
	if len(entries) < 2 {
		return TrendUnknown
	}
	latest, previous := entries[0].Points, entries[1].Points
	switch {
	case latest > previous:
		return TrendUp
	case latest < previous:
		return TrendDown
	default:
		return TrendFlat
	}
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
