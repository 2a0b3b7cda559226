package db

// SchemaSQL is the complete schema for fresh playersync installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// it via GetSchemaSQL(); repository code referencing a column that does not
// exist here fails immediately with "no such column" in tests, catching
// drift at development time.
//
// When adding columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Players (one row per synchronized player document)
CREATE TABLE IF NOT EXISTS players (
	player_id TEXT PRIMARY KEY,
	last_save DATETIME NOT NULL,
	server_id INTEGER NOT NULL DEFAULT 0,
	payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_players_last_save ON players(last_save);

-- Player stats (accumulating counters; never reset by playersync)
CREATE TABLE IF NOT EXISTS player_stats (
	player_id TEXT PRIMARY KEY,
	playtime_seconds INTEGER NOT NULL DEFAULT 0,
	kills INTEGER NOT NULL DEFAULT 0,
	deaths INTEGER NOT NULL DEFAULT 0,
	captures INTEGER NOT NULL DEFAULT 0,
	last_updated DATETIME NOT NULL
);

-- Migration bookkeeping
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema. Tests must use this rather
// than hardcoding CREATE TABLE statements.
func GetSchemaSQL() string {
	return SchemaSQL
}
