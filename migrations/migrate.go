// Package migrations embeds the database schemas and applies them with goose.
//
// postgres/ holds the server schema (users, simulations). sqlite/ holds the
// client's local session table.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var postgresMigrations embed.FS

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("db is nil")

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate brings the PostgreSQL schema up to date.
func Migrate(db *sql.DB) error {
	return up(db, postgresMigrations, "pgx", "postgres")
}

// MigrateSQLite brings the client's SQLite schema up to date.
func MigrateSQLite(db *sql.DB) error {
	return up(db, sqliteMigrations, "sqlite3", "sqlite")
}

func up(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
