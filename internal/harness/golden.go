package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/lcgbreak/internal/ir"
)

// toCanonicalMap converts a Result to a map[string]any for canonical JSON
// serialization. Error messages are left out; the outcome fields already
// pin them down.
func (r *Result) toCanonicalMap() map[string]any {
	cases := make([]any, len(r.Cases))
	for i, cr := range r.Cases {
		m := map[string]any{
			"name":           cr.Name,
			"seq":            cr.Seq,
			"samples":        cr.Samples,
			"observation_id": cr.ObservationID,
			"outcome":        cr.Outcome,
			"pass":           cr.Pass,
		}
		if cr.Outcome == OutcomeRecovered {
			m["multiplier"] = cr.Multiplier
			m["increment"] = cr.Increment
			m["modulus"] = cr.Modulus
			m["verified"] = cr.Verified
		} else {
			m["error_code"] = cr.ErrorCode
		}
		cases[i] = m
	}

	return map[string]any{
		"scenario": r.Scenario,
		"pass":     r.Pass,
		"cases":    cases,
	}
}

// Snapshot returns the canonical JSON form of a result.
func Snapshot(r *Result) ([]byte, error) {
	return ir.MarshalCanonical(r.toCanonicalMap())
}

// RunWithGolden executes a scenario and compares the result against a
// golden file stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario, opts ...Option) error {
	t.Helper()

	result, err := Run(scenario, opts...)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an already computed result against a golden file.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := Snapshot(result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)

	return nil
}
