package store

import (
	"context"
	"fmt"

	"github.com/roach88/lcgbreak/internal/ir"
)

// WriteRun inserts a run record.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are
// silently ignored. ObservationID is computed from States when empty.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	if run.Outcome != OutcomeRecovered && run.Outcome != OutcomeFailed {
		return fmt.Errorf("write run: invalid outcome %q", run.Outcome)
	}
	if run.Outcome == OutcomeRecovered && run.Params == nil {
		return fmt.Errorf("write run: recovered run without parameters")
	}

	statesJSON, err := marshalStates(run.States)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	obsID := run.ObservationID
	if obsID == "" {
		obsID, err = ir.ObservationID(run.States)
		if err != nil {
			return fmt.Errorf("write run: %w", err)
		}
	}

	a, c, m := paramColumns(run.Params)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, observation_id, samples, states, multiplier, increment, modulus, outcome, error_code, message, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		obsID,
		len(run.States),
		statesJSON,
		a, c, m,
		run.Outcome,
		run.ErrorCode,
		run.Message,
		run.Seq,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	return nil
}

// NextSeq returns one past the highest recorded seq (1 for an empty store).
func (s *Store) NextSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}
	return seq, nil
}
