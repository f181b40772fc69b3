package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/lcgbreak/internal/ir"
)

// PredictOptions holds flags for the predict command.
type PredictOptions struct {
	*RootOptions
	paramFlags
	From  string
	Count int
}

// PredictResult is the success payload of the predict command.
type PredictResult struct {
	From      string   `json:"from"`
	Predicted []string `json:"predicted"`
}

// NewPredictCommand creates the predict command.
func NewPredictCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PredictOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the states that follow an observed output",
		Long: `Print the states that follow --from under known parameters, typically
ones printed by recover.

Examples:
  lcgbreak predict --preset glibc --from 2035015474 --count 5
  lcgbreak predict --multiplier 5 --increment 3 --modulus 101 --from 83`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(opts, cmd)
		},
	}

	addParamFlags(cmd, &opts.paramFlags)
	cmd.Flags().StringVar(&opts.From, "from", "", "last observed state (required)")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 10, "number of states to predict")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func runPredict(opts *PredictOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	params, _, err := opts.resolve()
	if err != nil {
		return f.Fail(ExitCommandError, CodeInput, err, nil)
	}
	from, err := parseState(opts.From)
	if err != nil {
		return f.Fail(ExitCommandError, CodeInput, fmt.Errorf("--from: %w", err), nil)
	}
	if opts.Count < 0 {
		return f.Fail(ExitCommandError, CodeInput, fmt.Errorf("--count must be non-negative, got %d", opts.Count), nil)
	}

	predicted := params.Predict(from, opts.Count)
	result := PredictResult{
		From:      from.String(),
		Predicted: ir.FormatIntegers(predicted),
	}
	return f.Success(result, func(w io.Writer) {
		printStates(w, predicted)
	})
}
