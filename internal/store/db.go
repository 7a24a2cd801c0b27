package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS designs (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		width           REAL NOT NULL,
		depth           REAL NOT NULL,
		height          REAL NOT NULL,
		thickness       REAL NOT NULL,
		material        TEXT NOT NULL,
		style           TEXT NOT NULL,
		total_cost      REAL NOT NULL,
		waste_percent   REAL NOT NULL,
		price_fallback  INTEGER NOT NULL DEFAULT 0,
		record_json     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_designs_created_at ON designs(created_at)`,
}

// OpenDB opens a SQLite database at the given path, creating parent
// directories as needed. Sets WAL mode and runs migrations.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Each connection to :memory: is its own database
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Migrate runs all schema migrations. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
