package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Scenarios(t *testing.T) {
	for _, name := range []string{"known_generators", "failure_modes", "sample_size"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario("testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}

func TestSnapshot_Format(t *testing.T) {
	result := NewResult("tiny")
	result.AddCase(CaseResult{
		Name:          "flat",
		Seq:           1,
		Samples:       4,
		ObservationID: "abc",
		Outcome:       OutcomeFailed,
		ErrorCode:     "DEGENERATE_MODULUS",
		Pass:          true,
	})

	data, err := Snapshot(result)
	require.NoError(t, err)
	assert.Equal(t,
		`{"cases":[{"error_code":"DEGENERATE_MODULUS","name":"flat","observation_id":"abc","outcome":"failed","pass":true,"samples":4,"seq":1}],"pass":true,"scenario":"tiny"}`,
		string(data))
}

func TestSnapshot_RecoveredFields(t *testing.T) {
	result := NewResult("one")
	result.AddCase(CaseResult{
		Name:       "r",
		Seq:        1,
		Outcome:    OutcomeRecovered,
		Multiplier: "5",
		Increment:  "3",
		Modulus:    "101",
		Verified:   true,
		Pass:       true,
	})

	data, err := Snapshot(result)
	require.NoError(t, err)
	s := string(data)
	assert.True(t, strings.Contains(s, `"multiplier":"5"`))
	assert.True(t, strings.Contains(s, `"verified":true`))
	assert.False(t, strings.Contains(s, `"error_code"`))
}

func TestResult_AddCaseFailure(t *testing.T) {
	result := NewResult("s")
	cr := CaseResult{Name: "c", Pass: true}
	cr.addError("boom")
	result.AddCase(cr)

	assert.False(t, result.Pass)
	assert.Equal(t, []string{"c: boom"}, result.Errors)
}
