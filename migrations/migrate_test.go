// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations are set, so the first goose query fails
	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	for name, migrate := range map[string]func(*sql.DB) error{"postgres": Migrate, "sqlite": MigrateSQLite} {
		err := migrate(db)
		if !errors.Is(err, ErrNilDB) {
			t.Errorf("%s: expected ErrNilDB, got: %v", name, err)
		}
		if err != nil && !strings.Contains(err.Error(), "db is nil") {
			t.Errorf("%s: expected 'db is nil' error, got: %v", name, err)
		}
	}
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	for dir, fsys := range map[string]fs.FS{"postgres": postgresMigrations, "sqlite": sqliteMigrations} {
		files, err := fs.Glob(fsys, dir+"/*.sql")
		if err != nil {
			t.Fatalf("%s: glob: %v", dir, err)
		}
		if len(files) == 0 {
			t.Errorf("%s: expected embedded migrations", dir)
		}
	}
}

func TestMigrateSQLite_CreatesSessionTable(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if err := MigrateSQLite(db); err != nil {
		t.Fatalf("expected migration to succeed, got: %v", err)
	}
	// running twice is a no-op
	if err := MigrateSQLite(db); err != nil {
		t.Fatalf("expected second migration to succeed, got: %v", err)
	}

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='session'`).Scan(&name)
	if err != nil {
		t.Fatalf("session table missing: %v", err)
	}
}
