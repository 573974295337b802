// Package sqlite provides a durable core.ConsentStore backed by SQLite.
// It exists for deployments where the consent collaborator is a local
// database rather than a remote service; the pipeline only ever reads
// through the core.ConsentStore interface and is unaware of the backend.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/develper21/ppdu/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS consent_records (
	subject_id TEXT PRIMARY KEY,
	granted    INTEGER NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);
`

// Store is a ConsentStore persisting records in a SQLite database. Safe for
// concurrent use; SQLite serializes writers and the driver pools readers.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at path and runs migrations.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the recorded consent flag and whether a record exists.
func (s *Store) Get(subjectID string) (bool, bool, error) {
	var granted int
	err := s.db.QueryRow(
		`SELECT granted FROM consent_records WHERE subject_id = ?`, subjectID,
	).Scan(&granted)
	if err == sql.ErrNoRows {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("lookup consent: %w", err)
	}
	return granted != 0, true, nil
}

// Set records an explicit consent flag for the subject.
func (s *Store) Set(subjectID string, granted bool) error {
	flag := 0
	if granted {
		flag = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO consent_records (subject_id, granted) VALUES (?, ?)
		 ON CONFLICT(subject_id) DO UPDATE SET
		 	granted = excluded.granted,
		 	updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')`,
		subjectID, flag,
	)
	if err != nil {
		return fmt.Errorf("set consent: %w", err)
	}
	return nil
}

// Revoke removes the subject's consent record entirely.
func (s *Store) Revoke(subjectID string) error {
	if _, err := s.db.Exec(`DELETE FROM consent_records WHERE subject_id = ?`, subjectID); err != nil {
		return fmt.Errorf("revoke consent: %w", err)
	}
	return nil
}

// Interface compliance (compile-time assertion)
var _ core.ConsentStore = (*Store)(nil)
