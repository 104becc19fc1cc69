// Package history records completed pipeline runs in a local SQLite
// database. The history DB stays on the private side of the trust
// boundary; it holds counts and paths, never pattern data.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DefaultDBPath is where runs are recorded unless overridden.
const DefaultDBPath = ".stratsummary/history.db"

// Run is one recorded pipeline execution.
type Run struct {
	ID         string
	At         string // RFC3339 UTC
	Total      int
	Filtered   int
	OutputPath string
}

// Store is a SQLite-backed run log.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history DB at path and applies the schema.
// Creates the parent directory (e.g. .stratsummary) if it does not exist.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	at          TEXT NOT NULL,
	total       INTEGER NOT NULL,
	filtered    INTEGER NOT NULL,
	output_path TEXT NOT NULL
);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate history schema: %w", err)
	}
	return nil
}

// Record inserts one run row and returns it. Called only after the
// summary has been committed to disk, so every row corresponds to a
// published artifact.
func (s *Store) Record(total, filtered int, outputPath string) (Run, error) {
	r := Run{
		ID:         uuid.NewString(),
		At:         time.Now().UTC().Format(time.RFC3339),
		Total:      total,
		Filtered:   filtered,
		OutputPath: outputPath,
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, at, total, filtered, output_path) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.At, r.Total, r.Filtered, r.OutputPath,
	)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	return r, nil
}

// Recent returns up to n runs, newest first.
func (s *Store) Recent(n int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, at, total, filtered, output_path FROM runs ORDER BY at DESC, id LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.At, &r.Total, &r.Filtered, &r.OutputPath); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
