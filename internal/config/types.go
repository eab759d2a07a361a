package config

import "errors"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration for the application.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat is text or json.
	LogFormat string `koanf:"log_format"`

	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// APIBaseURL points at the fantasy stats API.
	APIBaseURL    string `koanf:"api_base_url"`
	HTTPTimeoutMS int    `koanf:"http_timeout_ms"`

	// MaxConcurrentFetches bounds the concurrent stats fetches of one cycle.
	MaxConcurrentFetches int `koanf:"max_concurrent_fetches"`
	// SyncPolicy is full or delta.
	SyncPolicy string `koanf:"sync_policy"`
	// DefaultRoster is a comma separated list of player ids seeded into new sessions.
	DefaultRoster string `koanf:"default_roster"`
	// RefreshIntervalS enables periodic refreshes when positive.
	RefreshIntervalS int `koanf:"refresh_interval_s"`

	DBPath          string `koanf:"db_path"`
	TursoPrimaryURL string `koanf:"turso_primary_url"`
	TursoAuthToken  string `koanf:"turso_auth_token"`

	// GCPProject enables Pub/Sub event publishing when set.
	GCPProject string `koanf:"gcp_project"`

	SlackBotToken  string `koanf:"slack_bot_token"`
	SlackChannelID string `koanf:"slack_channel_id"`
	SlackDryRun    bool   `koanf:"slack_dry_run"`
}
