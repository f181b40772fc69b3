package ir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestObservationID_Deterministic(t *testing.T) {
	a := MustObservationID(ints(8, 43, 16, 83))
	b := MustObservationID(ints(8, 43, 16, 83))
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestObservationID_OrderMatters(t *testing.T) {
	assert.NotEqual(t, MustObservationID(ints(8, 43, 16)), MustObservationID(ints(43, 8, 16)))
	assert.NotEqual(t, MustObservationID(ints(8, 43)), MustObservationID(ints(8, 43, 16)))
}

func TestObservationID_EmptySequence(t *testing.T) {
	id, err := ObservationID(nil)
	require.NoError(t, err)
	assert.Len(t, id, 64)
}

func TestParamsHash_DomainSeparated(t *testing.T) {
	ph, err := ParamsHash(big.NewInt(5), big.NewInt(3), big.NewInt(101))
	require.NoError(t, err)

	other, err := ParamsHash(big.NewInt(5), big.NewInt(3), big.NewInt(103))
	require.NoError(t, err)
	assert.NotEqual(t, ph, other)

	assert.NotEqual(t, ph, hashWithDomain(DomainObservations, []byte(`{"increment":"3","modulus":"101","multiplier":"5"}`)))
	assert.Equal(t, ph, hashWithDomain(DomainParams, []byte(`{"increment":"3","modulus":"101","multiplier":"5"}`)))
}

func TestParamsHash_NilRejected(t *testing.T) {
	_, err := ParamsHash(nil, big.NewInt(3), big.NewInt(101))
	assert.Error(t, err)
}
