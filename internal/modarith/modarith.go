package modarith

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNoInverse is returned when a value shares a factor with the modulus.
	ErrNoInverse = errors.New("mod inverse does not exist")

	// ErrNonPositiveModulus is returned when a modulus is zero or negative.
	ErrNonPositiveModulus = errors.New("modulus must be positive")
)

// Mod returns the Euclidean remainder of x modulo m, always in [0, |m|).
// Panics if m is zero, like big.Int.Mod.
func Mod(x, m *big.Int) *big.Int {
	return new(big.Int).Mod(x, m)
}

// GCD returns the greatest common divisor of a and b.
// The result is never negative and GCD(a, 0) == |a|.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	for y.Sign() != 0 {
		// big.Int.Mod reduces into [0, |y|), so the loop terminates
		// for negative inputs too.
		x, y = y, x.Mod(x, y)
	}
	return x.Abs(x)
}

// ExtendedGCD returns g = gcd(a, b) and Bézout coefficients x, y with
// a*x + b*y == g.
//
// The loop mirrors the recursive definition (a == 0 yields (b, 0, 1))
// without recursion depth. g is normalized to be non-negative; the
// coefficients are negated along with it so the identity still holds.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(b), new(big.Int).Set(a)
	oldS, s := big.NewInt(0), big.NewInt(1) // coefficient of a
	oldT, t := big.NewInt(1), big.NewInt(0) // coefficient of b

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, new(big.Int).Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, new(big.Int).Sub(oldS, tmp)

		tmp.Mul(q, t)
		oldT, t = t, new(big.Int).Sub(oldT, tmp)
	}

	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// ModInverse returns x in [0, m) such that a*x ≡ 1 (mod m).
// Returns an error wrapping ErrNoInverse when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("mod inverse of %s: %w (got %s)", a, ErrNonPositiveModulus, m)
	}

	g, x, _ := ExtendedGCD(a, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w for %s modulo %s (gcd %s)", ErrNoInverse, a, m, g)
	}

	return Mod(x, m), nil
}
