// Package storage provides the database layer for Ticktock.
package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite"

	"github.com/espian/ticktock/internal/errors"
	"github.com/espian/ticktock/internal/logging"
)

const (
	// AppName is the application name used for data directories.
	AppName = "ticktock"

	// DBFileName is the fixed local database file name.
	DBFileName = "ticktock.db"

	// SchemaVersion is the current schema version.
	SchemaVersion = 1
)

// DB wraps a SQLite database handle.
type DB struct {
	db   *sql.DB
	path string
}

// Options configures the database connection.
type Options struct {
	// Path is the database file path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// DefaultPath returns the default database path following the XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, DBFileName)
}

// Open opens or creates a database at the given path and ensures the schema
// exists. Opening is idempotent: the table is created only if absent.
func Open(opts Options) (*DB, error) {
	path := opts.Path
	if opts.InMemory || path == "" {
		path = ":memory:"
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, errors.NewSystemErrorWithOp("open", "cannot create data directory", err)
		}
	}

	handle, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("open", "cannot open database", err)
	}

	// A single connection serializes all statements, which is the whole
	// concurrency story for this store. It also keeps :memory: databases
	// from being silently duplicated per pooled connection.
	handle.SetMaxOpenConns(1)

	db := &DB{db: handle, path: path}
	if err := db.ensureSchema(); err != nil {
		handle.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) ensureSchema() error {
	_, err := d.db.Exec(`CREATE TABLE IF NOT EXISTS countdowns (
		id INTEGER PRIMARY KEY,
		label TEXT,
		date TEXT,
		notify TEXT
	)`)
	if err != nil {
		return errors.NewSystemErrorWithOp("open", "cannot create schema", err)
	}

	var version int
	if err := d.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return errors.NewSystemErrorWithOp("open", "cannot read schema version", err)
	}

	if version < SchemaVersion {
		if err := d.upgrade(version, SchemaVersion); err != nil {
			return err
		}
		if _, err := d.db.Exec("PRAGMA user_version = 1"); err != nil {
			return errors.NewSystemErrorWithOp("open", "cannot set schema version", err)
		}
	}

	return nil
}

// upgrade migrates the schema between versions. There is nothing to migrate
// yet; version 0 is a fresh database.
func (d *DB) upgrade(from, to int) error {
	logging.Debug("schema upgrade", logging.KeyOperation, "upgrade", "from", from, "to", to)
	return nil
}

// Path returns the database file path, or ":memory:" for in-memory mode.
func (d *DB) Path() string {
	return d.path
}

// Handle returns the underlying sql.DB for advanced operations.
func (d *DB) Handle() *sql.DB {
	return d.db
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}
