// Package catalog provides well-known LCG parameter sets, defined in an
// embedded CUE file and validated against a #Preset schema on load.
package catalog

import (
	_ "embed"
	"fmt"
	"math/big"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/lcgbreak/internal/crack"
)

//go:embed presets.cue
var presetsCUE string

// Preset is a named generator configuration.
type Preset struct {
	Name        string
	Description string
	Params      crack.Params
}

// Catalog is an immutable set of presets, safe for concurrent use.
type Catalog struct {
	presets map[string]Preset
}

// presetDoc mirrors #Preset for cue.Value.Decode.
type presetDoc struct {
	Description string `json:"description"`
	Multiplier  string `json:"multiplier"`
	Increment   string `json:"increment"`
	Modulus     string `json:"modulus"`
}

// Load returns the built-in catalog.
func Load() (*Catalog, error) {
	return Parse("presets.cue", presetsCUE)
}

// Parse compiles CUE source with a top-level presets struct.
// Every preset must be concrete and satisfy the schema in presets.cue
// when the source embeds it; Parse additionally checks the integer
// relationships CUE cannot express on strings.
func Parse(filename, src string) (*Catalog, error) {
	ctx := cuecontext.New()
	value := ctx.CompileString(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compile %s: %w", filename, err)
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate %s: %w", filename, err)
	}

	presetsVal := value.LookupPath(cue.ParsePath("presets"))
	if !presetsVal.Exists() {
		return nil, fmt.Errorf("%s: no presets defined", filename)
	}

	iter, err := presetsVal.Fields()
	if err != nil {
		return nil, fmt.Errorf("%s: iterating presets: %w", filename, err)
	}

	c := &Catalog{presets: make(map[string]Preset)}
	for iter.Next() {
		name := iter.Label()

		var doc presetDoc
		if err := iter.Value().Decode(&doc); err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}

		p, err := doc.params()
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}

		c.presets[name] = Preset{Name: name, Description: doc.Description, Params: p}
	}

	return c, nil
}

func (d presetDoc) params() (crack.Params, error) {
	a, err := parseDecimal("multiplier", d.Multiplier)
	if err != nil {
		return crack.Params{}, err
	}
	c, err := parseDecimal("increment", d.Increment)
	if err != nil {
		return crack.Params{}, err
	}
	m, err := parseDecimal("modulus", d.Modulus)
	if err != nil {
		return crack.Params{}, err
	}

	if m.Cmp(big.NewInt(1)) <= 0 {
		return crack.Params{}, fmt.Errorf("modulus must be greater than 1, got %s", m)
	}
	if a.Cmp(m) >= 0 || c.Cmp(m) >= 0 {
		return crack.Params{}, fmt.Errorf("multiplier and increment must be below the modulus %s", m)
	}

	return crack.Params{Multiplier: a, Increment: c, Modulus: m}, nil
}

func parseDecimal(field, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%s: invalid non-negative integer %q", field, s)
	}
	return v, nil
}

// Lookup returns the preset with the given name.
func (c *Catalog) Lookup(name string) (Preset, bool) {
	p, ok := c.presets[name]
	return p, ok
}

// Names returns preset names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.presets))
	for name := range c.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Presets returns all presets sorted by name.
func (c *Catalog) Presets() []Preset {
	out := make([]Preset, 0, len(c.presets))
	for _, name := range c.Names() {
		out = append(out, c.presets[name])
	}
	return out
}

// Match returns the name of a preset whose parameters equal p.
func (c *Catalog) Match(p crack.Params) (string, bool) {
	for _, name := range c.Names() {
		if c.presets[name].Params.Equal(p) {
			return name, true
		}
	}
	return "", false
}
