// Package primary defines the primary ports (driving interfaces) for the
// application. The host process and the CLI talk to the services through
// these.
package primary

import (
	"context"
	"errors"
	"time"
)

// ErrSweepRunning is returned when a sweep is requested while another sweep
// is still in flight. Two sweeps must never run concurrently over the same
// directory.
var ErrSweepRunning = errors.New("a sweep is already running")

// IdentityResolver maps a host-supplied player handle to a canonical player
// ID. The mapping is injectable; the default resolver accepts exactly the
// 17-digit numeric platform ID shape.
type IdentityResolver func(handle string) (string, error)

// SweepReport summarizes one full reconciliation pass. Counts are
// best-effort and informational, not used programmatically.
type SweepReport struct {
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	// Dormant is set when the data directory was missing and the pass did
	// nothing.
	Dormant bool `json:"dormant"`

	FilesSeen      int  `json:"files_seen"`
	PushedToStore  int  `json:"pushed_to_store"`
	PushedToFile   int  `json:"pushed_to_file"`
	Materialized   int  `json:"materialized"`
	StatsMerged    int  `json:"stats_merged"`
	Failed         int  `json:"failed"`
	SettingsPushed bool `json:"settings_pushed"`
}

// SweepService runs full directory/store reconciliation passes.
type SweepService interface {
	// RunSweep executes one pass to completion. Per-player failures are
	// isolated and counted; only store-level failures abort the pass.
	// Returns ErrSweepRunning if another pass is in flight.
	RunSweep(ctx context.Context) (*SweepReport, error)

	// LastReport returns the most recent completed report, or nil.
	LastReport() *SweepReport
}

// LifecycleService handles player arrival and departure notifications from
// the host process.
type LifecycleService interface {
	// HandleArrival pulls the player's stored record over the local file
	// (the store always wins on arrival) and opens a playtime session.
	HandleArrival(ctx context.Context, handle string) error

	// HandleDeparture pushes the local file into the store (the file always
	// wins on departure), credits session playtime, and closes the session.
	HandleDeparture(ctx context.Context, handle string) error

	// OpenSessions returns the number of sessions currently open.
	OpenSessions() int
}

// TelemetryService accumulates combat counters independently of the sweep.
type TelemetryService interface {
	// RecordElimination increments the killer's kills and the victim's
	// deaths. Either handle may be empty; the two increments are independent.
	RecordElimination(ctx context.Context, killerHandle, victimHandle string) error

	// RecordCapture increments the player's objective captures.
	RecordCapture(ctx context.Context, handle string) error
}
