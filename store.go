package docsite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database recording the content hash of every file
// the last build wrote, so unchanged files can be skipped. Rows are keyed by
// output directory, so one store can serve several output trees.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS outputs (
    out_dir TEXT NOT NULL,
    path TEXT NOT NULL,
    hash TEXT NOT NULL,
    built_at TEXT NOT NULL,
    PRIMARY KEY (out_dir, path)
);
`)
	return err
}

// Hashes returns the recorded hash for every path written to outDir.
func (s *Store) Hashes(outDir string) (map[string]string, error) {
	rows, err := s.db.Query(`SELECT path, hash FROM outputs WHERE out_dir = ?`, outDir)
	if err != nil {
		return nil, fmt.Errorf("docsite: read build store: %w", err)
	}
	defer rows.Close()

	hashes := make(map[string]string)
	for rows.Next() {
		var p, h string
		if err := rows.Scan(&p, &h); err != nil {
			return nil, err
		}
		hashes[p] = h
	}
	return hashes, rows.Err()
}

// Save upserts current hashes and deletes removed paths for outDir in one
// transaction.
func (s *Store) Save(outDir string, current map[string]string, removed []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	upsert, err := tx.Prepare(`INSERT INTO outputs (out_dir, path, hash, built_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(out_dir, path) DO UPDATE SET hash = excluded.hash, built_at = excluded.built_at
		WHERE outputs.hash != excluded.hash`)
	if err != nil {
		return err
	}
	defer upsert.Close()
	for p, h := range current {
		if _, err := upsert.Exec(outDir, p, h, now); err != nil {
			return fmt.Errorf("docsite: record %s: %w", p, err)
		}
	}
	for _, p := range removed {
		if _, err := tx.Exec(`DELETE FROM outputs WHERE out_dir = ? AND path = ?`, outDir, p); err != nil {
			return fmt.Errorf("docsite: forget %s: %w", p, err)
		}
	}
	return tx.Commit()
}

// Reset forgets every output recorded for outDir.
func (s *Store) Reset(outDir string) error {
	_, err := s.db.Exec(`DELETE FROM outputs WHERE out_dir = ?`, outDir)
	return err
}
