package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/roach88/lcgbreak/internal/crack"
	"github.com/roach88/lcgbreak/internal/ir"
)

// marshalStates converts observations to canonical JSON TEXT.
func marshalStates(states []*big.Int) (string, error) {
	if states == nil {
		states = []*big.Int{}
	}
	data, err := ir.MarshalCanonical(states)
	if err != nil {
		return "", fmt.Errorf("marshal states: %w", err)
	}
	return string(data), nil
}

// unmarshalStates parses a JSON array of decimal strings.
func unmarshalStates(data string) ([]*big.Int, error) {
	var raw []string
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, fmt.Errorf("unmarshal states: %w", err)
	}
	states := make([]*big.Int, len(raw))
	for i, s := range raw {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("unmarshal states: invalid integer %q at %d", s, i)
		}
		states[i] = v
	}
	return states, nil
}

// paramColumns returns nullable TEXT values for the three parameters.
func paramColumns(p *crack.Params) (a, c, m sql.NullString) {
	if p == nil {
		return
	}
	return nullDecimal(p.Multiplier), nullDecimal(p.Increment), nullDecimal(p.Modulus)
}

func nullDecimal(v *big.Int) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: v.String(), Valid: true}
}

// scanParams rebuilds Params from nullable columns; all three must be set.
func scanParams(a, c, m sql.NullString) (*crack.Params, error) {
	if !a.Valid && !c.Valid && !m.Valid {
		return nil, nil
	}
	if !a.Valid || !c.Valid || !m.Valid {
		return nil, fmt.Errorf("scan params: partially recorded parameters")
	}

	var p crack.Params
	for _, f := range []struct {
		dst **big.Int
		src string
	}{
		{&p.Multiplier, a.String},
		{&p.Increment, c.String},
		{&p.Modulus, m.String},
	} {
		v, ok := new(big.Int).SetString(f.src, 10)
		if !ok {
			return nil, fmt.Errorf("scan params: invalid integer %q", f.src)
		}
		*f.dst = v
	}
	return &p, nil
}
