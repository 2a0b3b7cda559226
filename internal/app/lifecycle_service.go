package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/playersync/internal/ports/primary"
	"github.com/example/playersync/internal/ports/secondary"
)

// session tracks one arrival-to-departure interval. Sessions live only in
// memory; a restart between arrival and departure loses the interval and
// credits no playtime for it.
type session struct {
	ID        string
	LoginTime time.Time
}

// LifecycleServiceImpl implements the LifecycleService interface.
type LifecycleServiceImpl struct {
	players  secondary.PlayerRepository
	stats    secondary.PlayerStatsRepository // nil when telemetry is disabled
	files    secondary.PlayerFileStore
	resolve  primary.IdentityResolver
	locks    *playerLocks
	logger   *slog.Logger
	serverID int

	now func() time.Time

	mu       sync.Mutex
	sessions map[string]session
}

// NewLifecycleService creates a LifecycleService with injected dependencies.
func NewLifecycleService(
	players secondary.PlayerRepository,
	stats secondary.PlayerStatsRepository,
	files secondary.PlayerFileStore,
	resolve primary.IdentityResolver,
	locks *playerLocks,
	serverID int,
	logger *slog.Logger,
) *LifecycleServiceImpl {
	return &LifecycleServiceImpl{
		players:  players,
		stats:    stats,
		files:    files,
		resolve:  resolve,
		locks:    locks,
		serverID: serverID,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]session),
	}
}

// HandleArrival pulls the stored record over the local file. Arrival always
// trusts the store: no freshness comparison, even if the local file is
// newer. A player with no store row keeps whatever file is on disk.
//
// With telemetry on, a playtime session is opened; its ID tags the arrival
// and departure log lines so the two ends of an interval can be correlated.
func (s *LifecycleServiceImpl) HandleArrival(ctx context.Context, handle string) error {
	playerID, err := s.resolve(handle)
	if err != nil {
		return fmt.Errorf("failed to resolve arriving player %q: %w", handle, err)
	}

	unlock := s.locks.acquire(playerID)
	defer unlock()

	record, err := s.players.GetByID(ctx, playerID)
	switch {
	case errors.Is(err, secondary.ErrPlayerNotFound):
		// First contact with this player; the sweep or departure will
		// create the row.
	case err != nil:
		return fmt.Errorf("failed to load record for arriving player %s: %w", playerID, err)
	default:
		if err := s.files.Write(ctx, playerID, record.Payload); err != nil {
			return fmt.Errorf("failed to write file for arriving player %s: %w", playerID, err)
		}
	}

	// Sessions exist only to credit playtime, so with telemetry off there
	// is nothing to open.
	if s.stats == nil {
		s.logger.Info("player arrived", "player", playerID)
		return nil
	}

	if err := s.stats.EnsureExists(ctx, playerID); err != nil {
		return fmt.Errorf("failed to ensure stats for arriving player %s: %w", playerID, err)
	}

	sess := session{ID: uuid.NewString(), LoginTime: s.now()}
	s.mu.Lock()
	s.sessions[playerID] = sess
	s.mu.Unlock()

	s.logger.Info("player arrived", "player", playerID, "session", sess.ID)
	return nil
}

// HandleDeparture pushes the local file into the store. Departure always
// trusts the file, since it reflects the freshest in-game state. The session
// is closed no matter what, so a failed store write never leaks one.
func (s *LifecycleServiceImpl) HandleDeparture(ctx context.Context, handle string) error {
	playerID, err := s.resolve(handle)
	if err != nil {
		return fmt.Errorf("failed to resolve departing player %q: %w", handle, err)
	}

	unlock := s.locks.acquire(playerID)
	defer unlock()

	sess, hadSession := s.takeSession(playerID)

	exists, err := s.files.Exists(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to check file for departing player %s: %w", playerID, err)
	}
	if exists {
		payload, err := s.files.Read(ctx, playerID)
		switch {
		case err != nil:
			s.logger.Warn("departure store-write skipped", "player", playerID, "error", err)
		case !json.Valid(payload):
			s.logger.Warn("departure store-write skipped", "player", playerID, "error", "file contains invalid JSON")
		default:
			if err := s.players.Upsert(ctx, playerID, payload, s.serverID); err != nil {
				return fmt.Errorf("failed to store departing player %s: %w", playerID, err)
			}
		}
	}

	if hadSession && s.stats != nil {
		seconds := int64(s.now().Sub(sess.LoginTime).Seconds())
		if seconds > 0 {
			if err := s.stats.EnsureExists(ctx, playerID); err != nil {
				return fmt.Errorf("failed to ensure stats for departing player %s: %w", playerID, err)
			}
			if err := s.stats.AddPlaytime(ctx, playerID, seconds); err != nil {
				return fmt.Errorf("failed to credit playtime for player %s: %w", playerID, err)
			}
		}
	}

	if hadSession {
		s.logger.Info("player departed", "player", playerID, "session", sess.ID)
	} else {
		s.logger.Info("player departed", "player", playerID)
	}
	return nil
}

// OpenSessions returns the number of sessions currently open.
func (s *LifecycleServiceImpl) OpenSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// takeSession removes and returns the session for playerID, if any.
func (s *LifecycleServiceImpl) takeSession(playerID string) (session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[playerID]
	if ok {
		delete(s.sessions, playerID)
	}
	return sess, ok
}

// Ensure LifecycleServiceImpl implements the interface.
var _ primary.LifecycleService = (*LifecycleServiceImpl)(nil)
