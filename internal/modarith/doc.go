// Package modarith implements the integer arithmetic used to break linear
// congruential generators: Euclidean remainder, greatest common divisor,
// the extended Euclidean algorithm and modular inversion.
//
// All values are *big.Int. Intermediate products in the recovery pipeline
// reach twice the bit length of the modulus, so a fixed-width type would
// overflow silently for 64-bit moduli.
//
// # Euclidean Remainder
//
// Every reduction goes through Mod, which always returns a value in
// [0, |m|). Go's % operator (and big.Int.Rem) truncate toward zero and keep
// the dividend's sign, which produces negative residues for negative
// differences.
//
// Functions never modify their arguments and always return fresh values.
package modarith
