// Package sqlite provides the SQLite-backed implementations of the domain
// repositories: users, sessions, and customer log entries.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/supportlog/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps the underlying sql.DB and hands out repositories bound to it.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign key enforcement.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// A single connection serializes writers, so concurrent requests
	// contend in the pool instead of hitting SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies any unapplied schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

// Close closes the underlying database.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Users returns the user repository.
func (db *DB) Users() *UserRepository {
	return NewUserRepository(db)
}

// Sessions returns the session repository.
func (db *DB) Sessions() *SessionRepository {
	return NewSessionRepository(db)
}

// Logs returns the customer log repository.
func (db *DB) Logs() *LogRepository {
	return NewLogRepository(db)
}
