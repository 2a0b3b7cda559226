package secondary

import (
	"context"
	"encoding/json"
	"time"
)

// PlayerFileStore defines the secondary port for the per-player JSON files
// the game server writes to disk.
type PlayerFileStore interface {
	// Available reports whether the data directory exists. When it does not,
	// the whole subsystem stays dormant.
	Available() bool

	// List returns the player IDs present as files, excluding the reserved
	// ServerSettings file (case-insensitively) and anything not matching the
	// <id>.json naming convention.
	List(ctx context.Context) ([]string, error)

	// Read returns the raw JSON document for a player.
	Read(ctx context.Context, playerID string) (json.RawMessage, error)

	// Write creates or overwrites a player's file. The filesystem's own
	// mtime is the file's authoritative last-modified timestamp.
	Write(ctx context.Context, playerID string, payload json.RawMessage) error

	// ModTime returns the file's modification time.
	ModTime(ctx context.Context, playerID string) (time.Time, error)

	// Exists checks whether a player's file is present.
	Exists(ctx context.Context, playerID string) (bool, error)

	// Roster returns the active-player allow-list from PlayerList.json.
	// A missing or malformed roster is an empty list, never an error.
	Roster(ctx context.Context) ([]string, error)
}
