package sqlite

import (
	"database/sql"
	"fmt"
)

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS planning_snapshots (
    shop TEXT NOT NULL,
    week_key TEXT NOT NULL,
    record_key TEXT NOT NULL,
    payload TEXT NOT NULL,
    revision INTEGER NOT NULL DEFAULT 0,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (shop, week_key)
);
`

const createShopsTable = `
CREATE TABLE IF NOT EXISTS shops (
    name TEXT PRIMARY KEY,
    created_at TEXT NOT NULL
);
`

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    shop TEXT NOT NULL REFERENCES shops(name) ON DELETE CASCADE,
    name TEXT NOT NULL,
    position INTEGER NOT NULL,
    UNIQUE (shop, name)
);
`

func Migrate(db *sql.DB) error {
	for _, stmt := range []string{createSnapshotsTable, createShopsTable, createEmployeesTable} {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
