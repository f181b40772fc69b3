package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainObservations = "lcgbreak/observations/v1"
	DomainParams       = "lcgbreak/params/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ObservationID returns a stable identifier for an observation sequence.
// Two sequences share an ID exactly when they hold the same values in the
// same order.
func ObservationID(states []*big.Int) (string, error) {
	canonical, err := MarshalCanonical(map[string]any{
		"count":  len(states),
		"states": states,
	})
	if err != nil {
		return "", fmt.Errorf("ObservationID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainObservations, canonical), nil
}

// ParamsHash returns a stable identifier for a (multiplier, increment,
// modulus) triple.
func ParamsHash(multiplier, increment, modulus *big.Int) (string, error) {
	canonical, err := MarshalCanonical(map[string]any{
		"increment":  increment,
		"modulus":    modulus,
		"multiplier": multiplier,
	})
	if err != nil {
		return "", fmt.Errorf("ParamsHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainParams, canonical), nil
}

// MustObservationID is like ObservationID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustObservationID(states []*big.Int) string {
	id, err := ObservationID(states)
	if err != nil {
		panic(err)
	}
	return id
}
