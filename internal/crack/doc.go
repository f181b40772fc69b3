// Package crack recovers the hidden parameters of a linear congruential
// generator s[n+1] = (a*s[n] + c) mod m from a contiguous run of its full
// outputs.
//
// Recovery is three dependent stages:
//
//  1. RecoverModulus: GCD of d[i+2]*d[i] - d[i+1]^2 over all difference triples
//  2. RecoverMultiplier: a = d[1] * d[0]^-1 mod m
//  3. RecoverIncrement: c = s[1] - a*s[0] mod m
//
// Recover composes them and is the entry point for callers.
//
// # Failures
//
// Every failure is a *RecoveryError with a distinguishable Code.
// INSUFFICIENT_DATA (fewer than MinSamples observations) and
// DEGENERATE_MODULUS (all elimination values zero) both wrap
// ErrModulusUndetermined, so callers asking "do I need more data?" can test
// for that one sentinel. NON_INVERTIBLE_DIFFERENCE is returned when the
// first two observations are equal or their difference shares a factor with
// the modulus.
//
// Nothing is retried: the arithmetic is exact, so a failure means the
// observations are insufficient or inconsistent with an LCG.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use. Inputs are never
// modified.
package crack
