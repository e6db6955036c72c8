package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
)

// Run is one persisted distribution run.
type Run struct {
	ID          string    `json:"id"`
	Mode        string    `json:"mode"`
	Filenames   []string  `json:"filenames"`
	Dates       int       `json:"dates"`
	Employees   int       `json:"employees"`
	SkippedDays int       `json:"skippedDays"`
	Warnings    []string  `json:"warnings,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SaveRun persists a run and its per-employee shares in one transaction.
func (s *Store) SaveRun(run Run, rows []model.DistributionRow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (id, mode, filenames, dates, employees, skipped_days, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Mode, strings.Join(run.Filenames, "\n"), run.Dates, run.Employees,
		run.SkippedDays, strings.Join(run.Warnings, "\n"))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, r := range rows {
		if _, err := tx.Exec(`
			INSERT INTO run_shares (run_id, employee, share) VALUES (?, ?, ?)
		`, run.ID, r.Employee, r.Share); err != nil {
			return fmt.Errorf("failed to insert share for %q: %w", r.Employee, err)
		}
	}

	return tx.Commit()
}

// GetRun loads one run by ID.
func (s *Store) GetRun(id string) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT id, mode, filenames, dates, employees, skipped_days, warnings, created_at
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err != nil {
		return nil, fmt.Errorf("failed to load run %q: %w", id, err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, mode, filenames, dates, employees, skipped_days, warnings, created_at
		FROM runs ORDER BY created_at DESC, id LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	out := make([]*Run, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// CountRuns returns the total number of persisted runs.
func (s *Store) CountRuns() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

// GetRunShares loads the export table persisted with a run, sorted by name.
func (s *Store) GetRunShares(runID string) ([]model.DistributionRow, error) {
	rows, err := s.db.Query(`
		SELECT employee, share FROM run_shares WHERE run_id = ? ORDER BY employee
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shares for run %q: %w", runID, err)
	}
	defer rows.Close()

	var out []model.DistributionRow
	for rows.Next() {
		var r model.DistributionRow
		if err := rows.Scan(&r.Employee, &r.Share); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable) (*Run, error) {
	var run Run
	var filenames, warnings string
	if err := row.Scan(&run.ID, &run.Mode, &filenames, &run.Dates, &run.Employees,
		&run.SkippedDays, &warnings, &run.CreatedAt); err != nil {
		return nil, err
	}
	if filenames != "" {
		run.Filenames = strings.Split(filenames, "\n")
	}
	if warnings != "" {
		run.Warnings = strings.Split(warnings, "\n")
	}
	return &run, nil
}
