// Package wire provides dependency injection for the playersync daemon.
// It assembles the adapters and services from a loaded configuration.
package wire

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/example/playersync/internal/adapters/filesystem"
	"github.com/example/playersync/internal/adapters/sqlite"
	"github.com/example/playersync/internal/app"
	"github.com/example/playersync/internal/config"
	"github.com/example/playersync/internal/db"
	"github.com/example/playersync/internal/ports/primary"
	"github.com/example/playersync/internal/ports/secondary"
)

// Container holds the assembled application graph. Build it once per process
// and Close it on shutdown.
type Container struct {
	Config   *config.Config
	Logger   *slog.Logger
	Players  secondary.PlayerRepository
	Stats    secondary.PlayerStatsRepository
	Files    secondary.PlayerFileStore
	Services *app.Services

	database *sql.DB
}

// New opens the database, wires the adapters, and constructs the services.
// resolve may be nil to use the default identity resolver.
func New(cfg *config.Config, resolve primary.IdentityResolver, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	if resolve == nil {
		resolve = app.DefaultIdentityResolver
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	players := sqlite.NewPlayerRepository(database)
	files := filesystem.NewPlayerDir(cfg.DataDir)

	var stats secondary.PlayerStatsRepository
	if cfg.TelemetryEnabled {
		stats = sqlite.NewStatsRepository(database)
	}

	services := app.NewServices(players, stats, files, resolve,
		cfg.ServerID, cfg.SettingsPushThreshold, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Players:  players,
		Stats:    stats,
		Files:    files,
		Services: services,
		database: database,
	}, nil
}

// Close releases the database connection.
func (c *Container) Close() error {
	return c.database.Close()
}
