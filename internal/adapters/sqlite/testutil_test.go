// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup goes through setupTestDB, which applies db.GetSchemaSQL()
// so tests always run against the authoritative schema. Do not hardcode
// CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/playersync/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedPlayer inserts a player row with an explicit last_save.
func seedPlayer(t *testing.T, database *sql.DB, playerID, payload string, lastSave time.Time) {
	t.Helper()
	_, err := database.Exec(
		"INSERT INTO players (player_id, last_save, server_id, payload) VALUES (?, ?, 0, ?)",
		playerID, lastSave, payload,
	)
	if err != nil {
		t.Fatalf("failed to seed player: %v", err)
	}
}

// seedStats inserts a stats row with explicit counters.
func seedStats(t *testing.T, database *sql.DB, playerID string, playtime, kills, deaths, captures int64) {
	t.Helper()
	_, err := database.Exec(
		"INSERT INTO player_stats (player_id, playtime_seconds, kills, deaths, captures, last_updated) VALUES (?, ?, ?, ?, ?, ?)",
		playerID, playtime, kills, deaths, captures, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("failed to seed stats: %v", err)
	}
}
