package cli

import (
	"fmt"
	"io"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/roach88/lcgbreak/internal/ir"
	"github.com/roach88/lcgbreak/internal/lcg"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	paramFlags
	Seed  string
	Count int
}

// GenerateResult is the success payload of the generate command.
type GenerateResult struct {
	Preset     string   `json:"preset,omitempty"`
	Multiplier string   `json:"multiplier"`
	Increment  string   `json:"increment"`
	Modulus    string   `json:"modulus"`
	Seed       string   `json:"seed"`
	States     []string `json:"states"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print outputs of a linear congruential generator",
		Long: `Print the first outputs of the generator (a, c, m) after the seed.
The seed itself is not printed.

Examples:
  lcgbreak generate --preset glibc --count 10
  lcgbreak generate --multiplier 5 --increment 3 --modulus 101 --seed 42`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	addParamFlags(cmd, &opts.paramFlags)
	cmd.Flags().StringVar(&opts.Seed, "seed", "1", "initial state")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 10, "number of outputs")

	return cmd
}

func addParamFlags(cmd *cobra.Command, p *paramFlags) {
	cmd.Flags().StringVar(&p.Multiplier, "multiplier", "", "multiplier a")
	cmd.Flags().StringVar(&p.Increment, "increment", "", "increment c")
	cmd.Flags().StringVar(&p.Modulus, "modulus", "", "modulus m")
	cmd.Flags().StringVar(&p.Preset, "preset", "", "use a catalog preset instead of explicit parameters")
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	params, preset, err := opts.resolve()
	if err != nil {
		return f.Fail(ExitCommandError, CodeInput, err, nil)
	}
	seed, err := ir.ParseInteger(opts.Seed)
	if err != nil {
		return f.Fail(ExitCommandError, CodeInput, fmt.Errorf("--seed: %w", err), nil)
	}
	if opts.Count < 0 {
		return f.Fail(ExitCommandError, CodeInput, fmt.Errorf("--count must be non-negative, got %d", opts.Count), nil)
	}

	states := lcg.NewSeeded(params.Multiplier, params.Increment, params.Modulus, seed).Take(opts.Count)
	opts.Logger().Debug("generated states", "params", params.String(), "count", len(states))

	result := GenerateResult{
		Preset:     preset,
		Multiplier: params.Multiplier.String(),
		Increment:  params.Increment.String(),
		Modulus:    params.Modulus.String(),
		Seed:       seed.String(),
		States:     ir.FormatIntegers(states),
	}
	return f.Success(result, func(w io.Writer) {
		printStates(w, states)
	})
}

func printStates(w io.Writer, states []*big.Int) {
	for _, s := range states {
		fmt.Fprintln(w, s)
	}
}
