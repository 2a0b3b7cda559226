package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/playersync/internal/ports/primary"
	"github.com/example/playersync/internal/ports/secondary"
)

// TelemetryServiceImpl implements the TelemetryService interface. With a nil
// stats repository (telemetry disabled) every method is a no-op.
type TelemetryServiceImpl struct {
	stats   secondary.PlayerStatsRepository
	resolve primary.IdentityResolver
	logger  *slog.Logger
}

// NewTelemetryService creates a TelemetryService with injected dependencies.
func NewTelemetryService(
	stats secondary.PlayerStatsRepository,
	resolve primary.IdentityResolver,
	logger *slog.Logger,
) *TelemetryServiceImpl {
	return &TelemetryServiceImpl{stats: stats, resolve: resolve, logger: logger}
}

// RecordElimination credits the killer with a kill and the victim with a
// death. The two increments are independent: either handle may be absent or
// unresolvable without affecting the other.
func (s *TelemetryServiceImpl) RecordElimination(ctx context.Context, killerHandle, victimHandle string) error {
	if s.stats == nil {
		return nil
	}

	var errs []error
	if killerHandle != "" {
		if err := s.increment(ctx, killerHandle, s.stats.IncrementKills); err != nil {
			errs = append(errs, fmt.Errorf("kill credit: %w", err))
		}
	}
	if victimHandle != "" {
		if err := s.increment(ctx, victimHandle, s.stats.IncrementDeaths); err != nil {
			errs = append(errs, fmt.Errorf("death credit: %w", err))
		}
	}
	return errors.Join(errs...)
}

// RecordCapture credits the player with an objective capture.
func (s *TelemetryServiceImpl) RecordCapture(ctx context.Context, handle string) error {
	if s.stats == nil || handle == "" {
		return nil
	}
	return s.increment(ctx, handle, s.stats.IncrementCaptures)
}

func (s *TelemetryServiceImpl) increment(ctx context.Context, handle string, bump func(context.Context, string) error) error {
	playerID, err := s.resolve(handle)
	if err != nil {
		// An unresolvable identity is not an event error; the other side of
		// an elimination may still be credited.
		s.logger.Warn("telemetry identity skipped", "handle", handle, "error", err)
		return nil
	}

	if err := s.stats.EnsureExists(ctx, playerID); err != nil {
		return err
	}
	return bump(ctx, playerID)
}

// Ensure TelemetryServiceImpl implements the interface.
var _ primary.TelemetryService = (*TelemetryServiceImpl)(nil)
