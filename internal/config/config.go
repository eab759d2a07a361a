package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FANTASY_"

// New returns the default configuration.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Addr:                 ":8080",
		APIBaseURL:           "https://fantasy-nfl-app.vercel.app",
		HTTPTimeoutMS:        10_000,
		MaxConcurrentFetches: 3,
		SyncPolicy:           "full",
		DefaultRoster:        "1,4,6",
		RefreshIntervalS:     0,
		DBPath:               "fantasy.db",
	}
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FANTASY_CONFIG is set
//  3. env (prefix FANTASY_), including values from an optional .env file
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	base := New()
	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// FANTASY_SYNC_POLICY -> sync_policy
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values Load cannot type-check.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	if c.Addr == "" {
		return invalid("addr must not be empty")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return invalid("log_level %q", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return invalid("log_format must be text or json, got %q", c.LogFormat)
	}
	if c.HTTPTimeoutMS <= 0 {
		return invalid("http_timeout_ms must be positive")
	}
	if c.MaxConcurrentFetches <= 0 {
		return invalid("max_concurrent_fetches must be positive")
	}
	if c.SyncPolicy != "full" && c.SyncPolicy != "delta" {
		return invalid("sync_policy must be full or delta, got %q", c.SyncPolicy)
	}
	if c.RefreshIntervalS < 0 {
		return invalid("refresh_interval_s must not be negative")
	}
	if _, err := c.RosterIDs(); err != nil {
		return err
	}
	return nil
}

// RosterIDs parses DefaultRoster. An empty value yields an empty roster.
func (c *Config) RosterIDs() ([]int, error) {
	ids := []int{}
	for _, part := range strings.Split(c.DefaultRoster, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: default_roster entry %q is not a player id", ErrInvalidConfig, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMS) * time.Millisecond
}

func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalS) * time.Second
}
