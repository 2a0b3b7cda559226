package app

import (
	"log/slog"

	"github.com/example/playersync/internal/ports/primary"
	"github.com/example/playersync/internal/ports/secondary"
)

// Services bundles the three primary services over one shared lock set, so
// sweep and lifecycle work on the same player is serialized.
type Services struct {
	Sweep     *SweepServiceImpl
	Lifecycle *LifecycleServiceImpl
	Telemetry *TelemetryServiceImpl
}

// NewServices constructs the service set. stats may be nil when telemetry is
// disabled; every stats-touching path then becomes a no-op.
func NewServices(
	players secondary.PlayerRepository,
	stats secondary.PlayerStatsRepository,
	files secondary.PlayerFileStore,
	resolve primary.IdentityResolver,
	serverID int,
	settingsThreshold int,
	logger *slog.Logger,
) *Services {
	locks := newPlayerLocks()
	return &Services{
		Sweep:     NewSweepService(players, stats, files, locks, serverID, settingsThreshold, logger),
		Lifecycle: NewLifecycleService(players, stats, files, resolve, locks, serverID, logger),
		Telemetry: NewTelemetryService(stats, resolve, logger),
	}
}
