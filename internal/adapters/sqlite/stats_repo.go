package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/playersync/internal/ports/secondary"
)

// StatsRepository implements secondary.PlayerStatsRepository with SQLite.
// Every increment is a single UPDATE so cooperating server instances can
// write concurrently without read-modify-write races.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new SQLite stats repository.
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetByID retrieves a stats row.
func (r *StatsRepository) GetByID(ctx context.Context, playerID string) (*secondary.PlayerStatsRecord, error) {
	record := &secondary.PlayerStatsRecord{}

	err := r.db.QueryRowContext(ctx,
		"SELECT player_id, playtime_seconds, kills, deaths, captures, last_updated FROM player_stats WHERE player_id = ?",
		playerID,
	).Scan(&record.PlayerID, &record.PlaytimeSeconds, &record.Kills, &record.Deaths, &record.Captures, &record.LastUpdated)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("stats for player %s: %w", playerID, secondary.ErrStatsNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return record, nil
}

// EnsureExists creates a zero-valued stats row if none exists.
func (r *StatsRepository) EnsureExists(ctx context.Context, playerID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO player_stats (player_id, last_updated) VALUES (?, ?)
		 ON CONFLICT(player_id) DO NOTHING`,
		playerID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to ensure stats row for %s: %w", playerID, err)
	}
	return nil
}

// AddDeltas accumulates session counters onto the stored totals.
func (r *StatsRepository) AddDeltas(ctx context.Context, playerID string, kills, deaths, captures int64) error {
	return r.update(ctx, playerID,
		"UPDATE player_stats SET kills = kills + ?, deaths = deaths + ?, captures = captures + ?, last_updated = ? WHERE player_id = ?",
		kills, deaths, captures, time.Now().UTC(), playerID,
	)
}

// AddPlaytime accumulates elapsed session seconds.
func (r *StatsRepository) AddPlaytime(ctx context.Context, playerID string, seconds int64) error {
	return r.update(ctx, playerID,
		"UPDATE player_stats SET playtime_seconds = playtime_seconds + ?, last_updated = ? WHERE player_id = ?",
		seconds, time.Now().UTC(), playerID,
	)
}

// IncrementKills adds one kill.
func (r *StatsRepository) IncrementKills(ctx context.Context, playerID string) error {
	return r.update(ctx, playerID,
		"UPDATE player_stats SET kills = kills + 1, last_updated = ? WHERE player_id = ?",
		time.Now().UTC(), playerID,
	)
}

// IncrementDeaths adds one death.
func (r *StatsRepository) IncrementDeaths(ctx context.Context, playerID string) error {
	return r.update(ctx, playerID,
		"UPDATE player_stats SET deaths = deaths + 1, last_updated = ? WHERE player_id = ?",
		time.Now().UTC(), playerID,
	)
}

// IncrementCaptures adds one objective capture.
func (r *StatsRepository) IncrementCaptures(ctx context.Context, playerID string) error {
	return r.update(ctx, playerID,
		"UPDATE player_stats SET captures = captures + 1, last_updated = ? WHERE player_id = ?",
		time.Now().UTC(), playerID,
	)
}

func (r *StatsRepository) update(ctx context.Context, playerID, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update stats for %s: %w", playerID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check stats update for %s: %w", playerID, err)
	}
	if affected == 0 {
		return fmt.Errorf("stats for player %s: %w", playerID, secondary.ErrStatsNotFound)
	}
	return nil
}

// Ensure StatsRepository implements the interface
var _ secondary.PlayerStatsRepository = (*StatsRepository)(nil)
