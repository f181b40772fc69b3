// Package testutil holds fixtures shared by package tests: big-integer
// literals and generator output.
package testutil

import (
	"math/big"
	"testing"

	"github.com/roach88/lcgbreak/internal/lcg"
)

// Big parses a decimal literal, failing the test on malformed input.
func Big(t testing.TB, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("testutil.Big: invalid integer %q", s)
	}
	return v
}

// Bigs converts int64 literals to *big.Int.
func Bigs(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

// Strings renders values in decimal, for readable assertions.
func Strings(vals []*big.Int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return out
}

// States returns the first n outputs of the generator (a, c, m) seeded at 1.
// Parameters are decimal strings so 64-bit and wider constants can be used.
func States(t testing.TB, a, c, m string, n int) []*big.Int {
	t.Helper()
	return lcg.New(Big(t, a), Big(t, c), Big(t, m)).Take(n)
}

// Generator names a well-known parameter set used across tests.
type Generator struct {
	Name       string
	Multiplier string
	Increment  string
	Modulus    string
}

// KnownGenerators are real-world LCG parameter sets, including power-of-two
// and composite moduli.
var KnownGenerators = []Generator{
	{"glibc", "1103515245", "12345", "2147483648"},
	{"minstd", "16807", "0", "2147483647"},
	{"msvc", "214013", "2531011", "4294967296"},
	{"numerical_recipes", "1664525", "1013904223", "4294967296"},
	{"borland", "22695477", "1", "4294967296"},
	{"java", "25214903917", "11", "281474976710656"},
	{"mmix", "6364136223846793005", "1442695040888963407", "18446744073709551616"},
	{"composite_2^32-1", "6329", "43291", "4294967295"},
	{"small_prime", "7", "3", "97"},
}
