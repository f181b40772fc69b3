package store

import (
	"context"
	"database/sql"
	"fmt"
)

const runColumns = `id, observation_id, states, multiplier, increment, modulus, outcome, error_code, message, seq`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ReadRun retrieves a single run by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	return scanRun(row)
}

// ListRuns returns the most recent runs, newest first.
// limit <= 0 returns every run. Returns an empty slice (not nil) when the
// store is empty.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY seq DESC, id COLLATE BINARY ASC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// FindByObservation returns the latest successful run for an observation
// sequence. The boolean is false when no such run exists.
func (s *Store) FindByObservation(ctx context.Context, observationID string) (Run, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+runColumns+`
		FROM runs
		WHERE observation_id = ? AND outcome = ?
		ORDER BY seq DESC, id COLLATE BINARY ASC
		LIMIT 1
	`, observationID, OutcomeRecovered)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, err
	}
	return run, true, nil
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var statesJSON string
	var a, c, m sql.NullString

	if err := row.Scan(
		&run.ID, &run.ObservationID, &statesJSON, &a, &c, &m,
		&run.Outcome, &run.ErrorCode, &run.Message, &run.Seq,
	); err != nil {
		if err == sql.ErrNoRows {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	states, err := unmarshalStates(statesJSON)
	if err != nil {
		return Run{}, err
	}
	run.States = states

	params, err := scanParams(a, c, m)
	if err != nil {
		return Run{}, err
	}
	run.Params = params

	return run, nil
}
