package ir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"42", "42"},
		{"010", "10"},
		{" 7 ", "7"},
		{"-27", "-27"},
		{"0x10", "16"},
		{"0XfF", "255"},
		{"18446744073709551616", "18446744073709551616"},
		{"0x10000000000000000", "18446744073709551616"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInteger(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseInteger_Invalid(t *testing.T) {
	for _, in := range []string{"", "-", "0x", "abc", "1.5", "1_000", "--1", "+-1", "-+1", "0xg", "1e9"} {
		_, err := ParseInteger(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestFormatIntegers(t *testing.T) {
	assert.Equal(t, []string{"1", "-2"}, FormatIntegers([]*big.Int{big.NewInt(1), big.NewInt(-2)}))
	assert.Empty(t, FormatIntegers(nil))
}
