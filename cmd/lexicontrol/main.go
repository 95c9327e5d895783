// Lexi Control - gated remote control for Lexi Live speech recognition
//
// This is the main entry point for the Lexi Control application. It serves
// a PIN-gated web panel that starts and stops cloud speech recognition
// instances and shows the booking schedule, designed for:
//   - Operation by non-technical broadcast staff
//   - Graceful degradation while the vendor cloud is flaky
//   - A single shared PIN session per deployment
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nerrad567/lexi-control/internal/api"
	"github.com/nerrad567/lexi-control/internal/eeg"
	"github.com/nerrad567/lexi-control/internal/infrastructure/config"
	"github.com/nerrad567/lexi-control/internal/infrastructure/logging"
	"github.com/nerrad567/lexi-control/internal/panel"
	"github.com/nerrad567/lexi-control/internal/schedule"
	"github.com/nerrad567/lexi-control/internal/session"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Lexi Control",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// A local .env is optional; secrets commonly arrive this way in
	// small deployments. Absence is not an error.
	if err := godotenv.Load(); err == nil {
		log.Info("loaded environment from .env")
	}

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Vendor control client and instance directory
	client := eeg.NewClient(cfg.Vendor)
	client.SetLogger(log)
	if !client.Configured() {
		log.Warn("vendor API key not configured; instance control is unavailable")
	}

	directory := eeg.NewDirectory(client, cfg.DirectoryTTL(), cfg.Vendor.InstanceID)
	directory.SetLogger(log)

	// Booking schedule service, pinned to the site timezone
	sched := schedule.NewService(cfg.Vendor, cfg.Location())
	sched.SetLogger(log)
	log.Info("schedule service initialised", "timezone", cfg.Site.Timezone)

	// PIN session gate
	gate := session.NewGate(cfg.Security)

	// Page renderer
	pages, err := panel.NewRenderer()
	if err != nil {
		return fmt.Errorf("loading page templates: %w", err)
	}

	// HTTP server
	server, err := api.New(api.Deps{
		Config:    cfg.API,
		Site:      cfg.Site,
		Vendor:    cfg.Vendor,
		Logger:    log,
		Gate:      gate,
		Client:    client,
		Directory: directory,
		Schedule:  sched,
		Pages:     pages,
		Version:   version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()
	log.Info("API server started", "host", cfg.API.Host, "port", cfg.API.Port)

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	log.Info("Lexi Control stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses LEXI_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("LEXI_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
