package store

import (
	"math/big"

	"github.com/roach88/lcgbreak/internal/crack"
)

// Outcome values for Run.Outcome.
const (
	OutcomeRecovered = "recovered"
	OutcomeFailed    = "failed"
)

// Run is one recorded recovery attempt.
type Run struct {
	ID            string
	ObservationID string
	States        []*big.Int

	// Params is nil when the run failed.
	Params *crack.Params

	Outcome   string
	ErrorCode string
	Message   string
	Seq       int64
}

// Samples returns the number of observations in the run.
func (r Run) Samples() int {
	return len(r.States)
}
