package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-roster/internal/app"
	"github.com/mauv0809/fantasy-roster/internal/catalog"
	"github.com/mauv0809/fantasy-roster/internal/config"
	"github.com/mauv0809/fantasy-roster/internal/database"
	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"github.com/mauv0809/fantasy-roster/internal/history"
	server "github.com/mauv0809/fantasy-roster/internal/http"
	"github.com/mauv0809/fantasy-roster/internal/metrics"
	"github.com/mauv0809/fantasy-roster/internal/notifier"
	"github.com/mauv0809/fantasy-roster/internal/notifier/slack"
	"github.com/mauv0809/fantasy-roster/internal/pubsub"
	"github.com/mauv0809/fantasy-roster/internal/session"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}
	setupLogging(cfg)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	db, dbTeardown, err := database.InitDB(cfg.DBPath, cfg.TursoPrimaryURL, cfg.TursoAuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	client := fantasy.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout())
	historyStore := history.New(db)

	publisher := newPublisher(ctx, cfg)
	defer publisher.Close()
	scoreNotifier := newNotifier(cfg, metricsSvc)

	// A failed catalog load is not fatal: the catalog stays empty and can be reloaded.
	cat := catalog.New()
	_ = cat.Load(ctx, client)

	controllerOpts, err := controllerOptions(cfg, historyStore, publisher, scoreNotifier)
	if err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}
	factory := func(id string) *app.Controller {
		opts := append([]app.Option{app.WithSessionID(id)}, controllerOpts...)
		return app.New(cat, client, metricsSvc, opts...)
	}
	sessions := session.NewManager(ctx, factory, metricsSvc, cfg.RefreshInterval())
	defer sessions.Close()

	s := server.NewServer(cat, client, sessions, historyStore, metricsSvc, metricsHandler)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "addr", cfg.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server error", "error", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}

func setupLogging(cfg *config.Config) {
	if cfg.LogFormat == "json" {
		log.SetFormatter(log.JSONFormatter)
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func newPublisher(ctx context.Context, cfg *config.Config) pubsub.PubSubClient {
	if cfg.GCPProject == "" {
		log.Info("No GCP project configured, events are only logged")
		return pubsub.NewLocal()
	}
	client, err := pubsub.New(ctx, cfg.GCPProject)
	if err != nil {
		log.Error("Failed to create Pub/Sub client, events are only logged", "error", err)
		return pubsub.NewLocal()
	}
	return client
}

func newNotifier(cfg *config.Config, metricsSvc metrics.Metrics) notifier.Notifier {
	if cfg.SlackBotToken == "" || cfg.SlackChannelID == "" {
		log.Info("Slack is not configured, score notifications are disabled")
		return nil
	}
	return slack.NewNotifier(cfg.SlackBotToken, cfg.SlackChannelID, cfg.SlackDryRun, metricsSvc)
}

func controllerOptions(cfg *config.Config, historyStore history.HistoryStore, publisher pubsub.PubSubClient, scoreNotifier notifier.Notifier) ([]app.Option, error) {
	policy, err := app.ParseSyncPolicy(cfg.SyncPolicy)
	if err != nil {
		return nil, err
	}
	roster, err := cfg.RosterIDs()
	if err != nil {
		return nil, err
	}
	opts := []app.Option{
		app.WithSyncPolicy(policy),
		app.WithDefaultRoster(roster),
		app.WithMaxConcurrent(cfg.MaxConcurrentFetches),
		app.WithPublisher(publisher),
		app.WithHistory(historyStore),
	}
	if scoreNotifier != nil {
		opts = append(opts, app.WithNotifier(scoreNotifier))
	}
	return opts, nil
}
