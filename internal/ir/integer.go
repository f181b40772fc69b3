package ir

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseInteger parses a decimal or 0x-prefixed hexadecimal integer with an
// optional leading minus sign. Leading zeros are decimal, never octal.
func ParseInteger(s string) (*big.Int, error) {
	body := strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(body, "-") {
		neg = true
		body = body[1:]
	}

	base := 10
	if len(body) > 2 && (body[:2] == "0x" || body[:2] == "0X") {
		base = 16
		body = body[2:]
	}

	// SetString would accept a second sign after the prefix.
	if body == "" || strings.ContainsAny(body, "+-_") {
		return nil, fmt.Errorf("invalid integer %q", s)
	}

	v, ok := new(big.Int).SetString(body, base)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// FormatIntegers renders values as decimal strings.
func FormatIntegers(vals []*big.Int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return out
}
