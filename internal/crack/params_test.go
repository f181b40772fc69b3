package crack

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lcgbreak/internal/testutil"
)

func smallParams() Params {
	return Params{Multiplier: big.NewInt(5), Increment: big.NewInt(3), Modulus: big.NewInt(101)}
}

func TestParams_Next(t *testing.T) {
	assert.Equal(t, "8", smallParams().Next(big.NewInt(1)).String())
	assert.Equal(t, "43", smallParams().Next(big.NewInt(8)).String())
}

func TestParams_PredictContinuesSequence(t *testing.T) {
	all := testutil.States(t, "1103515245", "12345", "2147483648", 30)

	p, err := Recover(all[:20])
	require.NoError(t, err)

	predicted := p.Predict(all[19], 10)
	assert.Equal(t, testutil.Strings(all[20:]), testutil.Strings(predicted))
}

func TestParams_PredictNonPositive(t *testing.T) {
	assert.Empty(t, smallParams().Predict(big.NewInt(1), 0))
	assert.Empty(t, smallParams().Predict(big.NewInt(1), -1))
}

func TestParams_VerifyAcceptsGeneratorOutput(t *testing.T) {
	states := testutil.States(t, "5", "3", "101", 50)
	assert.NoError(t, smallParams().Verify(states))
}

func TestParams_VerifyReportsMismatchIndex(t *testing.T) {
	states := testutil.Bigs(8, 43, 16, 84)

	err := smallParams().Verify(states)
	require.Error(t, err)

	var re *RecoveryError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrCodeMismatch, re.Code)
	assert.Equal(t, 3, re.Index)
	assert.Contains(t, err.Error(), "expected 83, observed 84")
}

func TestParams_VerifyRejectsOutOfRange(t *testing.T) {
	err := smallParams().Verify(testutil.Bigs(8, 101))
	assert.Equal(t, ErrCodeMismatch, CodeOf(err))

	err = smallParams().Verify(testutil.Bigs(-1))
	assert.Equal(t, ErrCodeMismatch, CodeOf(err))
}

func TestParams_VerifyRejectsBadModulus(t *testing.T) {
	err := Params{Multiplier: big.NewInt(5), Increment: big.NewInt(3)}.Verify(testutil.Bigs(1, 8))
	assert.Equal(t, ErrCodeInvalidModulus, CodeOf(err))
}

func TestParams_EqualAndString(t *testing.T) {
	a := smallParams()
	b := smallParams()
	assert.True(t, a.Equal(b))

	b.Increment = big.NewInt(4)
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(Params{}))
	assert.True(t, Params{}.Equal(Params{}))
	assert.Equal(t, "(5, 3, 101)", a.String())
}
