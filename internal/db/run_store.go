package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned when a run ID has no row.
var ErrRunNotFound = errors.New("db: symmetry run not found")

// SymmetryRun is one archived analysis: the input identity, the set
// topology and the ordered axis labels found.
type SymmetryRun struct {
	RunID      string
	Source     string
	PointCount int
	ShellCount int
	Directions []string
	DurationMs int64
	CreatedAt  time.Time
}

// InsertRun archives a run, assigning a fresh run ID when none is set.
// Returns the run ID.
func (db *DB) InsertRun(run *SymmetryRun) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	directions, err := json.Marshal(run.Directions)
	if err != nil {
		return "", fmt.Errorf("failed to encode directions: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO symmetry_runs (run_id, source, point_count, shell_count, directions_json, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Source, run.PointCount, run.ShellCount, string(directions), run.DurationMs,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run %s: %w", run.RunID, err)
	}
	return run.RunID, nil
}

// GetRun loads one archived run by ID.
func (db *DB) GetRun(runID string) (*SymmetryRun, error) {
	row := db.QueryRow(
		`SELECT run_id, source, point_count, shell_count, directions_json, duration_ms, created_at
		 FROM symmetry_runs WHERE run_id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	return run, err
}

// ListRuns returns the most recent runs, newest first, up to limit.
func (db *DB) ListRuns(limit int) ([]*SymmetryRun, error) {
	rows, err := db.Query(
		`SELECT run_id, source, point_count, shell_count, directions_json, duration_ms, created_at
		 FROM symmetry_runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*SymmetryRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*SymmetryRun, error) {
	var run SymmetryRun
	var directions string
	var createdAt string
	if err := row.Scan(&run.RunID, &run.Source, &run.PointCount, &run.ShellCount,
		&directions, &run.DurationMs, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(directions), &run.Directions); err != nil {
		return nil, fmt.Errorf("failed to decode directions for run %s: %w", run.RunID, err)
	}
	if ts, err := time.Parse("2006-01-02 15:04:05", createdAt); err == nil {
		run.CreatedAt = ts
	}
	return &run, nil
}
