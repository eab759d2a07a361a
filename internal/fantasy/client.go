package fantasy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultBaseURL is the public deployment of the fantasy stats API.
const DefaultBaseURL = "https://fantasy-nfl-app.vercel.app"

// APIClient is an HTTP client for the fantasy stats API that implements the FantasyClient interface.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a new fantasy API client. An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) FantasyClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &APIClient{
		httpClient: &http.Client{Timeout: timeout},
		BaseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Ensure APIClient implements the FantasyClient interface.
var _ FantasyClient = (*APIClient)(nil)

// GetPlayers fetches the full player catalog.
func (c *APIClient) GetPlayers(ctx context.Context) ([]Player, error) {
	url := fmt.Sprintf("%s/api/players", c.BaseURL)

	var players []Player
	if err := c.getJSON(ctx, url, &players); err != nil {
		return nil, err
	}
	log.Info("Successfully fetched players", "count", len(players))
	return players, nil
}

// GetPlayerStats fetches the current stats of a single player.
func (c *APIClient) GetPlayerStats(ctx context.Context, playerID int) (PlayerStats, error) {
	url := fmt.Sprintf("%s/api/player/%d/stats", c.BaseURL, playerID)

	var resp statsResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return PlayerStats{}, err
	}

	stats := PlayerStats{
		PlayerID:   playerID,
		Points:     resp.Stats.Points,
		Story:      resp.Story,
		LastUpdate: time.Time(resp.Stats.LastUpdate),
	}
	log.Debug("Player stats", "playerID", playerID, "points", stats.Points)
	return stats, nil
}

func (c *APIClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "FantasyRosterGoClient/1.0")

	log.Debug("Requesting fantasy API", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("Received non-OK HTTP status from fantasy API", "status", resp.StatusCode, "url", url, "body", string(body))
		return &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("received non-OK HTTP status: %d", e.StatusCode)
}
