package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/roach88/lcgbreak/internal/catalog"
	"github.com/roach88/lcgbreak/internal/crack"
	"github.com/roach88/lcgbreak/internal/ir"
)

// parseStates reads observations separated by whitespace or commas.
// Each token is decimal or 0x-prefixed hex; negative values are rejected.
func parseStates(r io.Reader) ([]*big.Int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	states := []*big.Int{}
	for scanner.Scan() {
		for _, tok := range strings.Split(scanner.Text(), ",") {
			if tok == "" {
				continue
			}
			v, err := parseState(tok)
			if err != nil {
				return nil, fmt.Errorf("observation %d: %w", len(states), err)
			}
			states = append(states, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read observations: %w", err)
	}
	return states, nil
}

func parseState(tok string) (*big.Int, error) {
	v, err := ir.ParseInteger(tok)
	if err != nil {
		return nil, err
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("observations must be non-negative, got %s", v)
	}
	return v, nil
}

// readStates collects observations from args, a file ("-" for stdin), or
// stdin when neither is given.
func readStates(args []string, file string, stdin io.Reader) ([]*big.Int, error) {
	switch {
	case len(args) > 0 && file != "":
		return nil, fmt.Errorf("observations given both as arguments and --file")
	case len(args) > 0:
		return parseStates(strings.NewReader(strings.Join(args, " ")))
	case file == "" || file == "-":
		return parseStates(stdin)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseStates(f)
}

// paramFlags are the generator flags shared by generate and predict.
type paramFlags struct {
	Multiplier string
	Increment  string
	Modulus    string
	Preset     string
}

// resolve returns explicit parameters or the named preset's.
func (p paramFlags) resolve() (crack.Params, string, error) {
	if p.Preset != "" {
		if p.Multiplier != "" || p.Increment != "" || p.Modulus != "" {
			return crack.Params{}, "", fmt.Errorf("--preset cannot be combined with --multiplier, --increment or --modulus")
		}
		preset, err := lookupPreset(p.Preset)
		if err != nil {
			return crack.Params{}, "", err
		}
		return preset.Params, preset.Name, nil
	}

	if p.Multiplier == "" || p.Increment == "" || p.Modulus == "" {
		return crack.Params{}, "", fmt.Errorf("--multiplier, --increment and --modulus are required without --preset")
	}

	var params crack.Params
	var err error
	if params.Multiplier, err = ir.ParseInteger(p.Multiplier); err != nil {
		return crack.Params{}, "", fmt.Errorf("--multiplier: %w", err)
	}
	if params.Increment, err = ir.ParseInteger(p.Increment); err != nil {
		return crack.Params{}, "", fmt.Errorf("--increment: %w", err)
	}
	if params.Modulus, err = parseModulus(p.Modulus); err != nil {
		return crack.Params{}, "", err
	}
	return params, "", nil
}

func parseModulus(s string) (*big.Int, error) {
	m, err := ir.ParseInteger(s)
	if err != nil {
		return nil, fmt.Errorf("--modulus: %w", err)
	}
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("--modulus must be positive, got %s", m)
	}
	return m, nil
}

func lookupPreset(name string) (catalog.Preset, error) {
	cat, err := catalog.Load()
	if err != nil {
		return catalog.Preset{}, err
	}
	preset, ok := cat.Lookup(name)
	if !ok {
		return catalog.Preset{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(cat.Names(), ", "))
	}
	return preset, nil
}
