// Package storage provides SQLite-based run history for the life simulator.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only run statistics are stored. Grid contents are never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run modes.
const (
	ModeLocal = "local"
	ModeSSH   = "ssh"
)

// Run is one finished simulation run.
type Run struct {
	ID              int64
	Mode            string // ModeLocal or ModeSSH
	User            string // SSH user, empty for local runs
	Rows            int
	Cols            int
	Seeding         string // How the grid was seeded, e.g. "random:42" or "pattern:glider"
	Generations     int64
	PeakPopulation  int
	FinalPopulation int
	Duration        time.Duration
	CreatedAt       time.Time
}

// Totals aggregates all recorded runs.
type Totals struct {
	Runs            int
	Generations     int64
	MostGenerations int64
	Duration        time.Duration
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			username TEXT NOT NULL DEFAULT '',
			grid_rows INTEGER NOT NULL,
			grid_cols INTEGER NOT NULL,
			seeding TEXT NOT NULL,
			generations INTEGER NOT NULL DEFAULT 0,
			peak_population INTEGER NOT NULL DEFAULT 0,
			final_population INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_generations ON runs(generations DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Mode == "" {
		r.Mode = ModeLocal
	}
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (mode, username, grid_rows, grid_cols, seeding, generations, peak_population, final_population, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Mode, r.User, r.Rows, r.Cols, r.Seeding,
		r.Generations, r.PeakPopulation, r.FinalPopulation, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, mode, username, grid_rows, grid_cols, seeding, generations,
	peak_population, final_population, duration_ms, created_at`

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
}

// LongestRuns retrieves the runs with the most generations.
func (s *Store) LongestRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY generations DESC, id ASC LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Mode, &r.User, &r.Rows, &r.Cols, &r.Seeding, &r.Generations,
			&r.PeakPopulation, &r.FinalPopulation, &durationMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Totals aggregates all recorded runs.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	var generations, most, durationMS sql.NullInt64
	err := s.db.QueryRow(
		"SELECT COUNT(*), SUM(generations), MAX(generations), SUM(duration_ms) FROM runs",
	).Scan(&t.Runs, &generations, &most, &durationMS)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}

	t.Generations = generations.Int64
	t.MostGenerations = most.Int64
	t.Duration = time.Duration(durationMS.Int64) * time.Millisecond
	return t, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
