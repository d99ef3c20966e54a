package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver
)

// SQLite keeps the value in a single-row-per-key table
type SQLite struct {
	db  *sqlx.DB
	key string
}

// NewSQLite opens the database in WAL mode and creates slots table
func NewSQLite(dbPath, key string) (*SQLite, error) {
	if key == "" {
		key = DefaultKey
	}
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to set WAL mode: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at INTEGER
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create slots table: %w", err)
	}

	return &SQLite{db: db, key: key}, nil
}

// Read returns the stored value or ErrEmpty if the key has no row
func (s *SQLite) Read(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM slots WHERE key = ?`, s.key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", s.key, err)
	}
	return value, nil
}

// Write upserts the value for the key
func (s *SQLite) Write(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, data, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", s.key, err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) String() string { return "sqlite:" + s.key }
