package harness

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"

	"github.com/roach88/lcgbreak/internal/catalog"
	"github.com/roach88/lcgbreak/internal/crack"
	"github.com/roach88/lcgbreak/internal/ir"
	"github.com/roach88/lcgbreak/internal/lcg"
)

// Harness executes scenario cases.
type Harness struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
	seq     int64
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger. Logs are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// WithCatalog sets the preset catalog. The built-in catalog is loaded on
// first use otherwise.
func WithCatalog(c *catalog.Catalog) Option {
	return func(h *Harness) {
		h.catalog = c
	}
}

// Run executes a scenario and returns the result.
//
// Case failures (wrong parameters, unexpected errors) are reported in the
// Result. An error is returned only when a case cannot be executed at all,
// such as an unknown preset.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	result := NewResult(scenario.Name)
	for i := range scenario.Cases {
		cr, err := h.runCase(&scenario.Cases[i])
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", scenario.Cases[i].Name, err)
		}
		result.AddCase(cr)
	}

	h.logger.Info("scenario completed",
		"scenario", scenario.Name,
		"cases", len(result.Cases),
		"pass", result.Pass,
	)
	return result, nil
}

func (h *Harness) runCase(c *Case) (CaseResult, error) {
	states, err := h.observations(c)
	if err != nil {
		return CaseResult{}, err
	}

	obsID, err := ir.ObservationID(states)
	if err != nil {
		return CaseResult{}, err
	}

	h.seq++
	cr := CaseResult{
		Name:          c.Name,
		Seq:           h.seq,
		Samples:       len(states),
		ObservationID: obsID,
		Pass:          true,
	}

	var params crack.Params
	if c.KnownModulus != "" {
		m, perr := ir.ParseInteger(c.KnownModulus)
		if perr != nil {
			return CaseResult{}, fmt.Errorf("known_modulus: %w", perr)
		}
		params, err = crack.RecoverWithModulus(states, m)
	} else {
		params, err = crack.Recover(states)
	}

	if err != nil {
		cr.Outcome = OutcomeFailed
		cr.ErrorCode = string(crack.CodeOf(err))
		h.logger.Debug("recovery failed", "case", c.Name, "samples", len(states), "error", err)
	} else {
		cr.setParams(params)
		cr.Verified = params.Verify(states) == nil
		h.logger.Debug("recovery succeeded", "case", c.Name, "samples", len(states), "params", params.String())
	}

	compareExpect(&cr, c.Expect, err)
	return cr, nil
}

// observations builds the state sequence for a case.
func (h *Harness) observations(c *Case) ([]*big.Int, error) {
	switch {
	case c.States != nil:
		states := make([]*big.Int, len(c.States))
		for i, s := range c.States {
			v, err := ir.ParseInteger(s)
			if err != nil {
				return nil, fmt.Errorf("states[%d]: %w", i, err)
			}
			states[i] = v
		}
		return states, nil

	case c.Generator != nil:
		a, cc, m, seed, err := parseGenerator(c.Generator)
		if err != nil {
			return nil, err
		}
		return lcg.NewSeeded(a, cc, m, seed).Take(c.Count), nil

	case c.Preset != "":
		if h.catalog == nil {
			cat, err := catalog.Load()
			if err != nil {
				return nil, fmt.Errorf("load catalog: %w", err)
			}
			h.catalog = cat
		}
		p, ok := h.catalog.Lookup(c.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", c.Preset)
		}
		return lcg.New(p.Params.Multiplier, p.Params.Increment, p.Params.Modulus).Take(c.Count), nil
	}

	return nil, fmt.Errorf("no observation source")
}

func parseGenerator(g *GeneratorSpec) (a, c, m, seed *big.Int, err error) {
	if a, err = ir.ParseInteger(g.Multiplier); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("generator multiplier: %w", err)
	}
	if c, err = ir.ParseInteger(g.Increment); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("generator increment: %w", err)
	}
	if m, err = ir.ParseInteger(g.Modulus); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("generator modulus: %w", err)
	}
	if m.Sign() <= 0 {
		return nil, nil, nil, nil, fmt.Errorf("generator modulus must be positive, got %s", m)
	}
	seed = big.NewInt(lcg.DefaultSeed)
	if g.Seed != "" {
		if seed, err = ir.ParseInteger(g.Seed); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("generator seed: %w", err)
		}
	}
	return a, c, m, seed, nil
}

// compareExpect checks the case outcome against the expectation.
// Parameter expectations are a subset match.
func compareExpect(cr *CaseResult, want Expect, recoverErr error) {
	if want.Error != "" {
		if recoverErr == nil {
			cr.addError(fmt.Sprintf("expected error %s, recovered (%s, %s, %s)",
				want.Error, cr.Multiplier, cr.Increment, cr.Modulus))
			return
		}
		if cr.ErrorCode != want.Error {
			cr.addError(fmt.Sprintf("expected error %s, got %s", want.Error, cr.ErrorCode))
		}
		return
	}

	if recoverErr != nil {
		cr.addError(fmt.Sprintf("unexpected error: %v", recoverErr))
		return
	}

	for _, f := range []struct{ name, want, got string }{
		{"multiplier", want.Multiplier, cr.Multiplier},
		{"increment", want.Increment, cr.Increment},
		{"modulus", want.Modulus, cr.Modulus},
	} {
		if f.want == "" {
			continue
		}
		w, err := ir.ParseInteger(f.want)
		if err != nil {
			cr.addError(fmt.Sprintf("expect.%s: %v", f.name, err))
			continue
		}
		if w.String() != f.got {
			cr.addError(fmt.Sprintf("%s: expected %s, got %s", f.name, w, f.got))
		}
	}
}
