package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/lcgbreak/internal/crack"
	"github.com/roach88/lcgbreak/internal/ir"
)

// Scenario is a named list of recovery cases.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Cases run in order.
	Cases []Case `yaml:"cases"`
}

// Case is one observation sequence and its expected recovery outcome.
type Case struct {
	Name string `yaml:"name"`

	// Preset names a catalog generator. Requires Count.
	Preset string `yaml:"preset,omitempty"`

	// Generator gives explicit parameters. Requires Count.
	Generator *GeneratorSpec `yaml:"generator,omitempty"`

	// States lists observations directly.
	States []string `yaml:"states,omitempty"`

	// Count is the number of outputs to draw from Preset or Generator.
	Count int `yaml:"count,omitempty"`

	// KnownModulus, when set, skips modulus recovery.
	KnownModulus string `yaml:"known_modulus,omitempty"`

	Expect Expect `yaml:"expect"`
}

// GeneratorSpec describes an LCG by its parameters. Seed defaults to 1.
type GeneratorSpec struct {
	Multiplier string `yaml:"multiplier"`
	Increment  string `yaml:"increment"`
	Modulus    string `yaml:"modulus"`
	Seed       string `yaml:"seed,omitempty"`
}

// Expect is either a (partial) parameter set or an error code.
type Expect struct {
	Multiplier string `yaml:"multiplier,omitempty"`
	Increment  string `yaml:"increment,omitempty"`
	Modulus    string `yaml:"modulus,omitempty"`
	Error      string `yaml:"error,omitempty"`
}

func (e Expect) hasParams() bool {
	return e.Multiplier != "" || e.Increment != "" || e.Modulus != ""
}

var knownErrorCodes = map[string]bool{
	string(crack.ErrCodeInsufficientData):        true,
	string(crack.ErrCodeDegenerateModulus):       true,
	string(crack.ErrCodeNonInvertibleDifference): true,
	string(crack.ErrCodeInvalidModulus):          true,
	string(crack.ErrCodeMismatch):                true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes scenario YAML with strict field checking.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true

		if err := validateCase(c); err != nil {
			return fmt.Errorf("cases[%d] (%s): %w", i, c.Name, err)
		}
	}

	return nil
}

func validateCase(c *Case) error {
	sources := 0
	if c.Preset != "" {
		sources++
	}
	if c.Generator != nil {
		sources++
	}
	if c.States != nil {
		sources++
	}
	if sources != 1 {
		return fmt.Errorf("exactly one of preset, generator or states is required")
	}

	if c.States != nil {
		if c.Count != 0 {
			return fmt.Errorf("count is not allowed with states")
		}
		for j, s := range c.States {
			if _, err := ir.ParseInteger(s); err != nil {
				return fmt.Errorf("states[%d]: %w", j, err)
			}
		}
	} else if c.Count <= 0 {
		return fmt.Errorf("count must be positive")
	}

	if g := c.Generator; g != nil {
		if err := validateGenerator(g); err != nil {
			return fmt.Errorf("generator: %w", err)
		}
	}

	if c.KnownModulus != "" {
		if err := requirePositive("known_modulus", c.KnownModulus); err != nil {
			return err
		}
	}

	return validateExpect(c.Expect)
}

func validateGenerator(g *GeneratorSpec) error {
	for _, f := range []struct{ name, value string }{
		{"multiplier", g.Multiplier},
		{"increment", g.Increment},
	} {
		if f.value == "" {
			return fmt.Errorf("%s is required", f.name)
		}
		if _, err := ir.ParseInteger(f.value); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	if g.Modulus == "" {
		return fmt.Errorf("modulus is required")
	}
	if err := requirePositive("modulus", g.Modulus); err != nil {
		return err
	}
	if g.Seed != "" {
		if _, err := ir.ParseInteger(g.Seed); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}

func validateExpect(e Expect) error {
	if e.Error != "" {
		if e.hasParams() {
			return fmt.Errorf("expect: error and parameters are mutually exclusive")
		}
		if !knownErrorCodes[e.Error] {
			return fmt.Errorf("expect: unknown error code %q", e.Error)
		}
		return nil
	}

	if !e.hasParams() {
		return fmt.Errorf("expect: error or at least one parameter is required")
	}
	for _, f := range []struct{ name, value string }{
		{"multiplier", e.Multiplier},
		{"increment", e.Increment},
		{"modulus", e.Modulus},
	} {
		if f.value == "" {
			continue
		}
		if _, err := ir.ParseInteger(f.value); err != nil {
			return fmt.Errorf("expect.%s: %w", f.name, err)
		}
	}
	return nil
}

func requirePositive(field, s string) error {
	v, err := ir.ParseInteger(s)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if v.Sign() <= 0 {
		return fmt.Errorf("%s must be positive, got %s", field, v)
	}
	return nil
}
