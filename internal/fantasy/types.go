package fantasy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Player represents a single entry of the player catalog.
type Player struct {
	ID       int    `json:"id" msgpack:"id"`
	Name     string `json:"name" msgpack:"name"`
	Position string `json:"position" msgpack:"position"`
	Team     string `json:"team" msgpack:"team"`
}

// Initials returns the first letter of every part of the player's name, e.g. "TB" for "Tom Brady".
func (p Player) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(p.Name) {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}

// PlayerStats holds the latest synchronized performance data of a player.
type PlayerStats struct {
	PlayerID   int       `json:"player_id" msgpack:"player_id"`
	Points     float64   `json:"points" msgpack:"points"`
	Story      string    `json:"story" msgpack:"story"`
	LastUpdate time.Time `json:"last_update" msgpack:"last_update"`
}

// statsResponse defines the structure of the JSON response for a player's stats.
type statsResponse struct {
	Story string `json:"story"`
	Stats struct {
		Points     float64   `json:"points"`
		LastUpdate timestamp `json:"lastUpdate"`
	} `json:"stats"`
}

// timestamp accepts either an RFC3339 string or epoch milliseconds.
type timestamp time.Time

func (t *timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = timestamp(time.Time{})
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*t = timestamp(time.Time{})
			return nil
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("invalid lastUpdate %q: %w", s, err)
		}
		*t = timestamp(parsed)
		return nil
	}

	var millis float64
	if err := json.Unmarshal(data, &millis); err != nil {
		return fmt.Errorf("invalid lastUpdate %s: %w", string(data), err)
	}
	*t = timestamp(time.UnixMilli(int64(millis)).UTC())
	return nil
}
