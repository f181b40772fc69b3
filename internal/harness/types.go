package harness

import "github.com/roach88/lcgbreak/internal/crack"

// Outcome values for CaseResult.Outcome.
const (
	OutcomeRecovered = "recovered"
	OutcomeFailed    = "failed"
)

// CaseResult records what recovery produced for one case.
type CaseResult struct {
	Name          string `json:"name"`
	Seq           int64  `json:"seq"`
	Samples       int    `json:"samples"`
	ObservationID string `json:"observation_id"`
	Outcome       string `json:"outcome"`

	// Set when Outcome is OutcomeRecovered.
	Multiplier string `json:"multiplier,omitempty"`
	Increment  string `json:"increment,omitempty"`
	Modulus    string `json:"modulus,omitempty"`

	// Verified reports whether the recovered parameters reproduce every
	// observation.
	Verified bool `json:"verified,omitempty"`

	// Set when Outcome is OutcomeFailed.
	ErrorCode string `json:"error_code,omitempty"`

	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	Scenario string `json:"scenario"`

	// Pass is true if every case matched its expectation.
	Pass bool `json:"pass"`

	Cases []CaseResult `json:"cases"`

	// Errors collects case failures, prefixed with the case name.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(scenario string) *Result {
	return &Result{
		Scenario: scenario,
		Pass:     true,
		Cases:    []CaseResult{},
		Errors:   []string{},
	}
}

// AddCase appends a case result and folds its failures into the scenario.
func (r *Result) AddCase(cr CaseResult) {
	r.Cases = append(r.Cases, cr)
	if !cr.Pass {
		r.Pass = false
		for _, e := range cr.Errors {
			r.Errors = append(r.Errors, cr.Name+": "+e)
		}
	}
}

func (cr *CaseResult) addError(msg string) {
	cr.Errors = append(cr.Errors, msg)
	cr.Pass = false
}

func (cr *CaseResult) setParams(p crack.Params) {
	cr.Outcome = OutcomeRecovered
	cr.Multiplier = p.Multiplier.String()
	cr.Increment = p.Increment.String()
	cr.Modulus = p.Modulus.String()
}
