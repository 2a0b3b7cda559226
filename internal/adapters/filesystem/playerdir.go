// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/example/playersync/internal/core/playerid"
	"github.com/example/playersync/internal/ports/secondary"
)

// RosterFileName is the active-player allow-list the game server maintains.
// playersync reads it, never writes it.
const RosterFileName = "PlayerList.json"

// PlayerDir implements secondary.PlayerFileStore over a directory of
// <player_id>.json documents.
type PlayerDir struct {
	dir string
}

// NewPlayerDir creates a player-directory adapter rooted at dir. The
// directory is not created: a missing directory means the subsystem stays
// dormant.
func NewPlayerDir(dir string) *PlayerDir {
	return &PlayerDir{dir: dir}
}

// Available checks whether the data directory exists.
func (a *PlayerDir) Available() bool {
	info, err := os.Stat(a.dir)
	return err == nil && info.IsDir()
}

// List returns player IDs derived from *.json file names, excluding the
// reserved settings file and names without the expected extension.
func (a *PlayerDir) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list player directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == RosterFileName {
			continue
		}
		if id, ok := playerid.FromFilename(entry.Name()); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Read returns the raw JSON document for a player.
func (a *PlayerDir) Read(ctx context.Context, playerID string) (json.RawMessage, error) {
	data, err := os.ReadFile(a.path(playerID))
	if err != nil {
		return nil, fmt.Errorf("failed to read player file %s: %w", playerID, err)
	}
	return json.RawMessage(data), nil
}

// Write creates or overwrites a player's file with pretty-printed JSON. The
// filesystem stamps the mtime, which is the file's freshness timestamp.
func (a *PlayerDir) Write(ctx context.Context, playerID string, payload json.RawMessage) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, payload, "", "  "); err != nil {
		return fmt.Errorf("failed to format player file %s: %w", playerID, err)
	}
	pretty.WriteByte('\n')

	if err := os.WriteFile(a.path(playerID), pretty.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write player file %s: %w", playerID, err)
	}
	return nil
}

// ModTime returns the file's modification time.
func (a *PlayerDir) ModTime(ctx context.Context, playerID string) (time.Time, error) {
	info, err := os.Stat(a.path(playerID))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat player file %s: %w", playerID, err)
	}
	return info.ModTime(), nil
}

// Exists checks whether a player's file is present.
func (a *PlayerDir) Exists(ctx context.Context, playerID string) (bool, error) {
	_, err := os.Stat(a.path(playerID))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check player file %s: %w", playerID, err)
	}
	return true, nil
}

// Roster returns the active-player allow-list. Missing or malformed roster
// files are an empty list: the roster only gates the settings push and must
// never fail a sweep.
func (a *PlayerDir) Roster(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(a.dir, RosterFileName))
	if err != nil {
		return nil, nil
	}

	var roster struct {
		Players []string `json:"players"`
	}
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, nil
	}
	return roster.Players, nil
}

func (a *PlayerDir) path(playerID string) string {
	return filepath.Join(a.dir, playerid.Filename(playerID))
}

// Ensure PlayerDir implements the interface
var _ secondary.PlayerFileStore = (*PlayerDir)(nil)
