// Package modelstore keeps a small local SQLite registry of compiled
// models a long-running predict server has already loaded, so it can
// skip re-validating one it has seen before at the same path and mtime.
// Adapted from the teacher's db/sqlite package, trimmed from a full
// corpus-schema writer down to the one table this domain needs.
package modelstore

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Record is one row of model_loads: a model file's declared shape and
// when/how long it took to load.
type Record struct {
	Path       string
	ModTime    time.Time
	Bias       int32
	CharWindow int
	TypeWindow int
	TagClasses int
	LoadedAt   time.Time
	LoadMs     int64
}

// Store wraps a *sql.DB holding the model_loads table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and
// ensures model_loads exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("modelstore: open %s: %w", path, err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("modelstore: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS model_loads (
	path        TEXT NOT NULL,
	mod_time    INTEGER NOT NULL,
	bias        INTEGER NOT NULL,
	char_window INTEGER NOT NULL,
	type_window INTEGER NOT NULL,
	tag_classes INTEGER NOT NULL,
	loaded_at   INTEGER NOT NULL,
	load_ms     INTEGER NOT NULL,
	PRIMARY KEY (path, mod_time)
)`

// Lookup returns the most recent Record for (path, modTime), if the
// store has already recorded a successful load of that exact file
// version.
func (s *Store) Lookup(path string, modTime time.Time) (Record, bool, error) {
	row := s.db.QueryRow(
		`SELECT bias, char_window, type_window, tag_classes, loaded_at, load_ms
		 FROM model_loads WHERE path = ? AND mod_time = ?
		 ORDER BY loaded_at DESC LIMIT 1`,
		path, modTime.Unix(),
	)
	var r Record
	var loadedAt int64
	err := row.Scan(&r.Bias, &r.CharWindow, &r.TypeWindow, &r.TagClasses, &loadedAt, &r.LoadMs)
	if err == sql.ErrNoRows {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("modelstore: lookup %s: %w", path, err)
	}
	r.Path = path
	r.ModTime = modTime
	r.LoadedAt = time.Unix(loadedAt, 0)
	return r, true, nil
}

// Record inserts a load event.
func (s *Store) Record(r Record) error {
	_, err := s.db.Exec(
		`INSERT INTO model_loads (path, mod_time, bias, char_window, type_window, tag_classes, loaded_at, load_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Path, r.ModTime.Unix(), r.Bias, r.CharWindow, r.TypeWindow, r.TagClasses, r.LoadedAt.Unix(), r.LoadMs,
	)
	if err != nil {
		return fmt.Errorf("modelstore: record %s: %w", r.Path, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
