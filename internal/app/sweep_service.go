// Package app implements the primary ports: the sweep, lifecycle, and
// telemetry services.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/example/playersync/internal/core/playerid"
	"github.com/example/playersync/internal/core/reconcile"
	"github.com/example/playersync/internal/ports/primary"
	"github.com/example/playersync/internal/ports/secondary"
)

// SweepServiceImpl implements the SweepService interface.
type SweepServiceImpl struct {
	players  secondary.PlayerRepository
	stats    secondary.PlayerStatsRepository // nil when telemetry is disabled
	files    secondary.PlayerFileStore
	locks    *playerLocks
	logger   *slog.Logger
	serverID int

	// settingsThreshold gates the ServerSettings push on roster size;
	// zero disables the gate.
	settingsThreshold int

	inFlight    sync.Mutex // guards against concurrent sweeps
	dormantOnce sync.Once

	reportMu   sync.Mutex
	lastReport *primary.SweepReport
}

// NewSweepService creates a SweepService with injected dependencies. stats
// may be nil when telemetry is disabled; locks is shared with the lifecycle
// service so the two never race on one player.
func NewSweepService(
	players secondary.PlayerRepository,
	stats secondary.PlayerStatsRepository,
	files secondary.PlayerFileStore,
	locks *playerLocks,
	serverID int,
	settingsThreshold int,
	logger *slog.Logger,
) *SweepServiceImpl {
	return &SweepServiceImpl{
		players:           players,
		stats:             stats,
		files:             files,
		locks:             locks,
		serverID:          serverID,
		settingsThreshold: settingsThreshold,
		logger:            logger,
	}
}

// RunSweep executes one full reconciliation pass. Per-player failures are
// logged and isolated; a store-level listing failure aborts the pass and is
// retried by the next tick.
func (s *SweepServiceImpl) RunSweep(ctx context.Context) (*primary.SweepReport, error) {
	if !s.inFlight.TryLock() {
		return nil, primary.ErrSweepRunning
	}
	defer s.inFlight.Unlock()

	report := &primary.SweepReport{StartedAt: time.Now()}
	defer func() {
		report.Duration = time.Since(report.StartedAt)
		s.reportMu.Lock()
		s.lastReport = report
		s.reportMu.Unlock()
	}()

	if !s.files.Available() {
		s.dormantOnce.Do(func() {
			s.logger.Warn("player data directory missing, sync stays dormant")
		})
		report.Dormant = true
		return report, nil
	}

	if err := s.pushSettings(ctx, report); err != nil {
		return report, err
	}

	ids, err := s.files.List(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list player files: %w", err)
	}
	report.FilesSeen = len(ids)

	processed := make(map[string]bool, len(ids))
	for _, id := range ids {
		if err := s.syncOne(ctx, id, report); err != nil {
			s.logger.Warn("player sync skipped", "player", id, "error", err)
			report.Failed++
		}
		processed[id] = true
	}

	if err := s.materializeMissing(ctx, processed, report); err != nil {
		return report, err
	}

	s.logger.Info("sweep complete",
		"files", report.FilesSeen,
		"to_store", report.PushedToStore,
		"to_file", report.PushedToFile,
		"materialized", report.Materialized,
		"stats_merged", report.StatsMerged,
		"failed", report.Failed,
	)
	return report, nil
}

// LastReport returns the most recent completed report, or nil.
func (s *SweepServiceImpl) LastReport() *primary.SweepReport {
	s.reportMu.Lock()
	defer s.reportMu.Unlock()
	return s.lastReport
}

// pushSettings propagates the ServerSettings record to its file. Always
// store to file, never the reverse, and never through the freshness policy.
//
// A store read failure aborts the pass: a dead database must not let the
// sweep report success. File-side failures only skip the push, since a
// one-way push must not starve player sync.
func (s *SweepServiceImpl) pushSettings(ctx context.Context, report *primary.SweepReport) error {
	record, err := s.players.GetByID(ctx, playerid.SettingsID)
	if errors.Is(err, secondary.ErrPlayerNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load settings record: %w", err)
	}

	if s.settingsThreshold > 0 {
		roster, err := s.files.Roster(ctx)
		if err != nil {
			s.logger.Warn("settings push skipped", "error", err)
			return nil
		}
		if len(roster) < s.settingsThreshold {
			return nil
		}
	}

	if err := s.files.Write(ctx, playerid.SettingsID, record.Payload); err != nil {
		s.logger.Warn("settings push skipped", "error", err)
		return nil
	}
	report.SettingsPushed = true
	return nil
}

// syncOne reconciles a single player file against its store row.
func (s *SweepServiceImpl) syncOne(ctx context.Context, playerID string, report *primary.SweepReport) error {
	unlock := s.locks.acquire(playerID)
	defer unlock()

	// Read up front: the payload feeds both the file-to-store push and the
	// counter merge, and it must be captured before a store-wins overwrite.
	payload, err := s.files.Read(ctx, playerID)
	if err != nil {
		return err
	}
	if !json.Valid(payload) {
		return fmt.Errorf("player file %s contains invalid JSON", playerID)
	}

	modTime, err := s.files.ModTime(ctx, playerID)
	if err != nil {
		return err
	}

	record, err := s.players.GetByID(ctx, playerID)
	recordExists := true
	var lastSave time.Time
	if errors.Is(err, secondary.ErrPlayerNotFound) {
		recordExists = false
	} else if err != nil {
		return err
	} else {
		lastSave = record.LastSave
	}

	switch reconcile.Decide(true, modTime, recordExists, lastSave) {
	case reconcile.ActionPushFileToStore:
		if err := s.players.Upsert(ctx, playerID, payload, s.serverID); err != nil {
			return err
		}
		report.PushedToStore++
	case reconcile.ActionPushStoreToFile:
		if err := s.files.Write(ctx, playerID, record.Payload); err != nil {
			return err
		}
		report.PushedToFile++
	}

	// Counter merge is independent of which side won the freshness
	// comparison; the delta comes from the file as it was before this pass.
	if s.stats != nil {
		delta := reconcile.ExtractDelta(payload)
		if !delta.IsZero() {
			if err := s.stats.EnsureExists(ctx, playerID); err != nil {
				return err
			}
			if err := s.stats.AddDeltas(ctx, playerID, delta.Kills, delta.Deaths, delta.Captures); err != nil {
				return err
			}
			report.StatsMerged++
		}
	}

	return nil
}

// materializeMissing writes a file for every store row that had no file this
// pass, skipping the settings sentinel and malformed IDs.
func (s *SweepServiceImpl) materializeMissing(ctx context.Context, processed map[string]bool, report *primary.SweepReport) error {
	records, err := s.players.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list player records: %w", err)
	}

	for _, record := range records {
		if processed[record.PlayerID] {
			continue
		}
		if playerid.IsSettings(record.PlayerID) || !playerid.Valid(record.PlayerID) {
			continue
		}

		unlock := s.locks.acquire(record.PlayerID)
		err := s.files.Write(ctx, record.PlayerID, record.Payload)
		unlock()

		if err != nil {
			s.logger.Warn("player materialization skipped", "player", record.PlayerID, "error", err)
			report.Failed++
			continue
		}
		report.Materialized++
	}
	return nil
}

// Ensure SweepServiceImpl implements the interface.
var _ primary.SweepService = (*SweepServiceImpl)(nil)
