// Package db persists symmetry analysis runs to SQLite so repeated
// analyses of a growing corpus can be compared after the fact. Schema
// changes are managed with golang-migrate.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the sql handle so store and migration methods hang off one
// type.
type DB struct {
	*sql.DB
}

// Open opens (creating if needed) the SQLite database at path and
// applies the connection pragmas. Run MigrateUp before using the
// stores.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if _, err := sqlDB.Exec(`PRAGMA journal_mode = WAL; PRAGMA foreign_keys = ON;`); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	return &DB{sqlDB}, nil
}
