// Package recent persists the list of recently opened documents backing the
// File > Open Recent submenu.
package recent

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fermata-io/menunav/internal/logging/events"
)

// Entry is one recently opened document.
type Entry struct {
	Path     string
	OpenedAt time.Time
}

// Store is a SQLite-backed recent-files list ordered by last open time.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the store at the given path and bootstraps its
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open recent store at %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping recent store at %s: %w", path, err)
	}
	s := &Store{db: db, path: path}
	if err := s.initializeSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initializeSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS recent_files (
			path TEXT PRIMARY KEY,
			opened_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create recent_files table: %w", err)
	}
	return nil
}

// Touch records that a document was opened now, inserting or refreshing it.
func (s *Store) Touch(path string) error {
	_, err := s.db.Exec(`
		INSERT INTO recent_files (path, opened_at) VALUES (?, ?)
		ON CONFLICT(path) DO UPDATE SET opened_at = excluded.opened_at
	`, path, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("touch %s: %w", path, err)
	}
	events.Recent.Touch(path)
	return nil
}

// List returns entries most recently opened first, capped at limit when
// limit is positive.
func (s *Store) List(limit int) ([]Entry, error) {
	query := `SELECT path, opened_at FROM recent_files ORDER BY opened_at DESC, path ASC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recent files: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Path, &e.OpenedAt); err != nil {
			return nil, fmt.Errorf("scan recent file: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent files: %w", err)
	}
	return entries, nil
}

// Remove deletes one entry.
func (s *Store) Remove(path string) error {
	if _, err := s.db.Exec(`DELETE FROM recent_files WHERE path = ?`, path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// Clear empties the store.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM recent_files`); err != nil {
		return fmt.Errorf("clear recent files: %w", err)
	}
	events.Recent.Cleared()
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
