// Package sqlite provides a SQLite implementation of the SlotStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/scamguard/internal/infrastructure/config"
)

const memoryPath = ":memory:"

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.SlotStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository, creating the parent directory if needed.
func NewRepository(cfg config.HistoryConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	if cfg.Path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o700); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// A single connection keeps :memory: databases shared and writes serialized.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS slots (
		name TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// GetSlot returns the value stored under name.
func (r *Repository) GetSlot(ctx context.Context, name string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading slot %q: %w", name, err)
	}
	return value, true, nil
}

// PutSlot stores value under name, replacing any previous value.
func (r *Repository) PutSlot(ctx context.Context, name, value string) error {
	query := `
	INSERT INTO slots (name, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, name, value, timeNow().UTC()); err != nil {
		return fmt.Errorf("writing slot %q: %w", name, err)
	}
	return nil
}

// DeleteSlot removes the slot. Removing an absent slot is not an error.
func (r *Repository) DeleteSlot(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting slot %q: %w", name, err)
	}
	return nil
}
