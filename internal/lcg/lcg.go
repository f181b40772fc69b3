// Package lcg implements the linear congruential generator whose outputs
// the crack package consumes.
//
// A Generator cannot be rewound; to restart a sequence, construct a new one.
// The state is private: consumers only ever see produced values.
package lcg

import (
	"fmt"
	"math/big"
)

// DefaultSeed is the initial state used by New.
const DefaultSeed = 1

// Generator produces s[n+1] = (a*s[n] + c) mod m.
// Not safe for concurrent use.
type Generator struct {
	state      *big.Int
	multiplier *big.Int
	increment  *big.Int
	modulus    *big.Int
}

// New creates a generator seeded at DefaultSeed.
// Panics if m is not positive.
func New(a, c, m *big.Int) *Generator {
	return NewSeeded(a, c, m, big.NewInt(DefaultSeed))
}

// NewSeeded creates a generator with an explicit initial state.
// The seed itself is never emitted; the first Next returns its successor.
// Panics if m is not positive.
func NewSeeded(a, c, m, seed *big.Int) *Generator {
	if m == nil || m.Sign() <= 0 {
		panic(fmt.Sprintf("lcg: modulus must be positive, got %v", m))
	}
	return &Generator{
		state:      new(big.Int).Set(seed),
		multiplier: new(big.Int).Set(a),
		increment:  new(big.Int).Set(c),
		modulus:    new(big.Int).Set(m),
	}
}

// Next advances the generator and returns the new state.
func (g *Generator) Next() *big.Int {
	next := new(big.Int).Mul(g.multiplier, g.state)
	next.Add(next, g.increment)
	next.Mod(next, g.modulus)
	g.state = next
	return new(big.Int).Set(next)
}

// Take returns the next n states.
func (g *Generator) Take(n int) []*big.Int {
	if n <= 0 {
		return []*big.Int{}
	}
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}
