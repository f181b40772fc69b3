package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lcgbreak/internal/testutil"
)

func TestMarshalStates(t *testing.T) {
	got, err := marshalStates(testutil.Bigs(8, 43, 16))
	require.NoError(t, err)
	assert.Equal(t, `["8","43","16"]`, got)

	empty, err := marshalStates(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, empty)
}

func TestUnmarshalStates_Invalid(t *testing.T) {
	_, err := unmarshalStates(`["12","x"]`)
	assert.Error(t, err)

	_, err = unmarshalStates(`not json`)
	assert.Error(t, err)
}

func TestScanParams(t *testing.T) {
	p, err := scanParams(sql.NullString{}, sql.NullString{}, sql.NullString{})
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = scanParams(
		sql.NullString{String: "5", Valid: true},
		sql.NullString{String: "3", Valid: true},
		sql.NullString{String: "101", Valid: true},
	)
	require.NoError(t, err)
	assert.Equal(t, "(5, 3, 101)", p.String())

	_, err = scanParams(sql.NullString{String: "5", Valid: true}, sql.NullString{}, sql.NullString{})
	assert.Error(t, err)
}
