package crack

import (
	"math/big"

	"github.com/roach88/lcgbreak/internal/modarith"
)

const (
	// MinSamples is the fewest observations that yield a difference triple.
	MinSamples = 4

	// RecommendedSamples is the observation count below which a composite
	// modulus may be overestimated by an accidental common factor.
	RecommendedSamples = 10
)

const (
	stageModulus    = "modulus"
	stageMultiplier = "multiplier"
	stageIncrement  = "increment"
	stageVerify     = "verify"
)

// Recover returns the parameters of the generator that produced states.
// Stages run in order (modulus, multiplier, increment) and the first
// failure is returned unchanged.
func Recover(states []*big.Int) (Params, error) {
	m, err := RecoverModulus(states)
	if err != nil {
		return Params{}, err
	}
	return RecoverWithModulus(states, m)
}

// RecoverWithModulus skips modulus recovery and derives the multiplier and
// increment from a known modulus. Needs at least three observations.
func RecoverWithModulus(states []*big.Int, m *big.Int) (Params, error) {
	a, err := RecoverMultiplier(states, m)
	if err != nil {
		return Params{}, err
	}
	c, err := RecoverIncrement(states, a, m)
	if err != nil {
		return Params{}, err
	}
	return Params{
		Multiplier: a,
		Increment:  c,
		Modulus:    new(big.Int).Set(m),
	}, nil
}

// Differences returns d[i] = states[i+1] - states[i].
func Differences(states []*big.Int) []*big.Int {
	if len(states) < 2 {
		return []*big.Int{}
	}
	diffs := make([]*big.Int, len(states)-1)
	for i := range diffs {
		diffs[i] = new(big.Int).Sub(states[i+1], states[i])
	}
	return diffs
}

// RecoverModulus estimates m from the observations alone.
//
// Differences of an LCG satisfy d[i+1] ≡ a*d[i] (mod m), so every
// d[i+2]*d[i] - d[i+1]^2 is a multiple of m. The GCD of all of them
// converges to m as more triples are folded in.
func RecoverModulus(states []*big.Int) (*big.Int, error) {
	if len(states) < MinSamples {
		return nil, newInsufficientDataError(stageModulus, len(states), MinSamples)
	}

	diffs := Differences(states)

	m := new(big.Int) // gcd(0, x) == |x| seeds the fold
	zero := new(big.Int)
	sq := new(big.Int)
	for i := 0; i+2 < len(diffs); i++ {
		zero.Mul(diffs[i+2], diffs[i])
		sq.Mul(diffs[i+1], diffs[i+1])
		zero.Sub(zero, sq)
		m = modarith.GCD(m, zero)
	}

	if m.Sign() == 0 {
		return nil, newDegenerateModulusError(len(states))
	}
	return m, nil
}

// RecoverMultiplier returns a = d1 * d0^-1 mod m.
func RecoverMultiplier(states []*big.Int, m *big.Int) (*big.Int, error) {
	if len(states) < 3 {
		return nil, newInsufficientDataError(stageMultiplier, len(states), 3)
	}
	if m == nil || m.Sign() <= 0 {
		return nil, newInvalidModulusError(stageMultiplier, len(states), modarith.ErrNonPositiveModulus)
	}

	d0 := new(big.Int).Sub(states[1], states[0])
	d1 := new(big.Int).Sub(states[2], states[1])

	inv, err := modarith.ModInverse(d0, m)
	if err != nil {
		return nil, newNonInvertibleError(len(states), err)
	}

	return modarith.Mod(d1.Mul(d1, inv), m), nil
}

// RecoverIncrement returns c = states[1] - a*states[0] mod m.
func RecoverIncrement(states []*big.Int, a, m *big.Int) (*big.Int, error) {
	if len(states) < 2 {
		return nil, newInsufficientDataError(stageIncrement, len(states), 2)
	}
	if m == nil || m.Sign() <= 0 {
		return nil, newInvalidModulusError(stageIncrement, len(states), modarith.ErrNonPositiveModulus)
	}

	c := new(big.Int).Mul(a, states[0])
	c.Sub(states[1], c)
	return modarith.Mod(c, m), nil
}
