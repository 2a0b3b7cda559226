package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_captures_column_to_player_stats",
		Up:      migrationV1,
	},
}

// RunMigrations applies all migrations that have not been recorded in
// schema_migrations yet.
func RunMigrations(database *sql.DB) error {
	for _, m := range migrations {
		applied, err := migrationApplied(database, m.Version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := m.Up(database); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}

		if _, err := database.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
			m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}
	return nil
}

func migrationApplied(database *sql.DB, version int) (bool, error) {
	var count int
	err := database.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %d: %w", version, err)
	}
	return count > 0, nil
}

// migrationV1 adds the captures counter for installs that predate objective
// tracking. Fresh installs already have the column from SchemaSQL.
func migrationV1(database *sql.DB) error {
	hasColumn, err := columnExists(database, "player_stats", "captures")
	if err != nil {
		return err
	}
	if hasColumn {
		return nil
	}
	_, err = database.Exec("ALTER TABLE player_stats ADD COLUMN captures INTEGER NOT NULL DEFAULT 0")
	return err
}

func columnExists(database *sql.DB, table, column string) (bool, error) {
	rows, err := database.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			ctype      string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &defaultVal, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
