// Package storage persists finished runs in a local SQLite database.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ferretworks/stash-dash/internal/game"
)

// DefaultPath is where the database lives unless overridden.
const DefaultPath = "~/.stashdash/stashdash.db"

// Run is one persisted run.
type Run struct {
	ID       int64
	Stash    int
	Distance int
	Yarn     int
	Duration float64
	PlayedAt time.Time
}

// LifetimeStats aggregates every run ever played.
type LifetimeStats struct {
	Runs          int
	TotalYarn     int
	TotalDistance int
	TotalSeconds  float64
}

// Store wraps the runs database. Implements game.RecordStore.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. A leading "~" is
// expanded to the user's home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve path: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func (s *Store) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	stash     INTEGER NOT NULL,
	distance  INTEGER NOT NULL,
	yarn      INTEGER NOT NULL,
	duration  REAL    NOT NULL,
	played_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_stash ON runs (stash DESC);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("storage: migrate: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records a finished run.
func (s *Store) SaveRun(rec game.RunRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (stash, distance, yarn, duration) VALUES (?, ?, ?, ?)`,
		rec.Stash, rec.Distance, rec.Yarn, rec.Duration,
	)
	if err != nil {
		return fmt.Errorf("storage: save run: %w", err)
	}
	return nil
}

// HighScore returns the largest stash ever banked, 0 with no runs.
func (s *Store) HighScore() (int, error) {
	var hs int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(stash), 0) FROM runs`).Scan(&hs)
	if err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return hs, nil
}

// BestDistance returns the longest run in meters, 0 with no runs.
func (s *Store) BestDistance() (int, error) {
	var bd int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(distance), 0) FROM runs`).Scan(&bd)
	if err != nil {
		return 0, fmt.Errorf("storage: best distance: %w", err)
	}
	return bd, nil
}

// TopRuns returns the best runs by stash, newest first on ties.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, stash, distance, yarn, duration, played_at
		 FROM runs ORDER BY stash DESC, played_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: top runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Stash, &r.Distance, &r.Yarn, &r.Duration, &r.PlayedAt); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate runs: %w", err)
	}
	return runs, nil
}

// Lifetime returns aggregates across all runs.
func (s *Store) Lifetime() (LifetimeStats, error) {
	var ls LifetimeStats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(yarn), 0), COALESCE(SUM(distance), 0), COALESCE(SUM(duration), 0)
		 FROM runs`).Scan(&ls.Runs, &ls.TotalYarn, &ls.TotalDistance, &ls.TotalSeconds)
	if err != nil {
		return ls, fmt.Errorf("storage: lifetime stats: %w", err)
	}
	return ls, nil
}

// ClearRuns deletes all saved runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec(`DELETE FROM runs`); err != nil {
		return fmt.Errorf("storage: clear runs: %w", err)
	}
	return nil
}
