package crack

import (
	"fmt"
	"math/big"

	"github.com/roach88/lcgbreak/internal/modarith"
)

// Params is a recovered (multiplier, increment, modulus) triple.
type Params struct {
	Multiplier *big.Int
	Increment  *big.Int
	Modulus    *big.Int
}

// Equal reports whether p and o hold the same three integers.
func (p Params) Equal(o Params) bool {
	return cmpNil(p.Multiplier, o.Multiplier) &&
		cmpNil(p.Increment, o.Increment) &&
		cmpNil(p.Modulus, o.Modulus)
}

// String formats the triple as "(a, c, m)".
func (p Params) String() string {
	return fmt.Sprintf("(%s, %s, %s)", p.Multiplier, p.Increment, p.Modulus)
}

// Next returns (a*s + c) mod m.
func (p Params) Next(s *big.Int) *big.Int {
	n := new(big.Int).Mul(p.Multiplier, s)
	n.Add(n, p.Increment)
	return modarith.Mod(n, p.Modulus)
}

// Predict returns the n states that follow last.
func (p Params) Predict(last *big.Int, n int) []*big.Int {
	if n <= 0 {
		return []*big.Int{}
	}
	out := make([]*big.Int, n)
	s := last
	for i := range out {
		s = p.Next(s)
		out[i] = s
	}
	return out
}

// Verify checks that every observation lies in [0, m) and that each one
// follows from its predecessor. A recovery over very few samples can yield
// a consistent but wrong modulus; Verify only proves consistency.
func (p Params) Verify(states []*big.Int) error {
	if p.Modulus == nil || p.Modulus.Sign() <= 0 {
		return newInvalidModulusError(stageVerify, len(states), modarith.ErrNonPositiveModulus)
	}
	for i, s := range states {
		if s.Sign() < 0 || s.Cmp(p.Modulus) >= 0 {
			return newMismatchError(len(states), i, fmt.Sprintf("observation %s outside [0, %s)", s, p.Modulus))
		}
		if i == 0 {
			continue
		}
		if want := p.Next(states[i-1]); want.Cmp(s) != 0 {
			return newMismatchError(len(states), i, fmt.Sprintf("expected %s, observed %s", want, s))
		}
	}
	return nil
}

func cmpNil(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Cmp(b) == 0
}
