package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// DB is the SQLite-backed store for buildings, rooms and bookings.
type DB struct {
	db     *sql.DB
	logger *zerolog.Logger
}

func NewDB(path string, logger *zerolog.Logger) (*DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	// A single connection avoids SQLITE_BUSY between the availability check
	// and the write when serializable booking is enabled.
	db.SetMaxOpenConns(1)

	logger.Info().Str("path", path).Msg("database initialized")
	return &DB{db: db, logger: logger}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS buildings (
            building_id TEXT PRIMARY KEY,
            floor INTEGER NOT NULL DEFAULT 0,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        )`,
		`CREATE TABLE IF NOT EXISTS rooms (
            room_id TEXT PRIMARY KEY,
            room_status TEXT NOT NULL DEFAULT 'AVAILABLE',
            building_id TEXT NOT NULL REFERENCES buildings(building_id)
        )`,
		`CREATE TABLE IF NOT EXISTS bookings (
            booking_id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            start_time DATETIME NOT NULL,
            end_time DATETIME NOT NULL,
            created_by TEXT NOT NULL DEFAULT '',
            modified_by TEXT NOT NULL DEFAULT '',
            type TEXT NOT NULL DEFAULT 'ONCE',
            repeat_type TEXT NOT NULL DEFAULT 'NONE',
            repeat_day TEXT NOT NULL DEFAULT '',
            building_id TEXT NOT NULL REFERENCES buildings(building_id),
            last_update DATETIME NOT NULL
        )`,

		`CREATE INDEX IF NOT EXISTS idx_rooms_building_id ON rooms(building_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_building_id ON bookings(building_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_start_time ON bookings(start_time)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_end_time ON bookings(end_time)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}
	return nil
}

// dbtx is satisfied by both *sql.DB and *sql.Tx so that the availability
// check and the booking writes can run standalone or inside one transaction.
type dbtx interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var (
	_ dbtx = (*sql.DB)(nil)
	_ dbtx = (*sql.Tx)(nil)
)

func (db *DB) Close() error {
	return db.db.Close()
}
