// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/playersync/internal/ports/secondary"
)

// PlayerRepository implements secondary.PlayerRepository with SQLite.
type PlayerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new SQLite player repository.
func NewPlayerRepository(db *sql.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByID retrieves a player row.
func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (*secondary.PlayerRecord, error) {
	record := &secondary.PlayerRecord{}
	var payload string

	err := r.db.QueryRowContext(ctx,
		"SELECT player_id, last_save, server_id, payload FROM players WHERE player_id = ?",
		playerID,
	).Scan(&record.PlayerID, &record.LastSave, &record.ServerID, &payload)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player %s: %w", playerID, secondary.ErrPlayerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	record.Payload = json.RawMessage(payload)
	return record, nil
}

// List retrieves all player rows.
func (r *PlayerRepository) List(ctx context.Context) ([]*secondary.PlayerRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT player_id, last_save, server_id, payload FROM players ORDER BY player_id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var records []*secondary.PlayerRecord
	for rows.Next() {
		record := &secondary.PlayerRecord{}
		var payload string
		if err := rows.Scan(&record.PlayerID, &record.LastSave, &record.ServerID, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		record.Payload = json.RawMessage(payload)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}

	return records, nil
}

// Upsert creates or overwrites the row for playerID. last_save is stamped on
// every write; this is the freshness timestamp the sweep compares against
// file mtimes.
func (r *PlayerRepository) Upsert(ctx context.Context, playerID string, payload json.RawMessage, serverID int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO players (player_id, last_save, server_id, payload) VALUES (?, ?, ?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET
			last_save = excluded.last_save,
			server_id = excluded.server_id,
			payload = excluded.payload`,
		playerID, time.Now().UTC(), serverID, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert player %s: %w", playerID, err)
	}
	return nil
}

// Ensure PlayerRepository implements the interface
var _ secondary.PlayerRepository = (*PlayerRepository)(nil)
