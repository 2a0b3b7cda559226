// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrPlayerNotFound is returned when no row exists for a player ID.
var ErrPlayerNotFound = errors.New("player not found")

// ErrStatsNotFound is returned when no stats row exists for a player ID.
var ErrStatsNotFound = errors.New("player stats not found")

// PlayerRecord is a persisted player document. The payload is opaque to the
// reconciliation logic; only the stats sub-document is ever inspected.
type PlayerRecord struct {
	PlayerID string
	LastSave time.Time
	ServerID int
	Payload  json.RawMessage
}

// PlayerStatsRecord holds the accumulated counters for a player. Counters are
// monotonically non-decreasing; resets are an external administrative action.
type PlayerStatsRecord struct {
	PlayerID        string
	PlaytimeSeconds int64
	Kills           int64
	Deaths          int64
	Captures        int64
	LastUpdated     time.Time
}

// PlayerRepository defines the secondary port for player persistence.
type PlayerRepository interface {
	// GetByID retrieves a player row. Returns ErrPlayerNotFound when absent.
	GetByID(ctx context.Context, playerID string) (*PlayerRecord, error)

	// List retrieves all player rows.
	List(ctx context.Context) ([]*PlayerRecord, error)

	// Upsert creates or overwrites the row for playerID, stamping last_save
	// with the current time on every write.
	Upsert(ctx context.Context, playerID string, payload json.RawMessage, serverID int) error
}

// PlayerStatsRepository defines the secondary port for accumulated counters.
// All increments execute as a single UPDATE so they stay correct under
// concurrent writers from cooperating server instances.
type PlayerStatsRepository interface {
	// GetByID retrieves a stats row. Returns ErrStatsNotFound when absent.
	GetByID(ctx context.Context, playerID string) (*PlayerStatsRecord, error)

	// EnsureExists creates a zero-valued stats row if none exists.
	EnsureExists(ctx context.Context, playerID string) error

	// AddDeltas accumulates session counters onto the stored totals.
	AddDeltas(ctx context.Context, playerID string, kills, deaths, captures int64) error

	// AddPlaytime accumulates elapsed session seconds.
	AddPlaytime(ctx context.Context, playerID string, seconds int64) error

	// IncrementKills adds one kill.
	IncrementKills(ctx context.Context, playerID string) error

	// IncrementDeaths adds one death.
	IncrementDeaths(ctx context.Context, playerID string) error

	// IncrementCaptures adds one objective capture.
	IncrementCaptures(ctx context.Context, playerID string) error
}
