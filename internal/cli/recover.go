package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/roach88/lcgbreak/internal/catalog"
	"github.com/roach88/lcgbreak/internal/crack"
	"github.com/roach88/lcgbreak/internal/ir"
	"github.com/roach88/lcgbreak/internal/store"
)

// RecoverOptions holds flags for the recover command.
type RecoverOptions struct {
	*RootOptions
	File      string
	Modulus   string
	Preset    string
	Predict   int
	NoHistory bool
}

// RecoverResult is the success payload of the recover command.
type RecoverResult struct {
	RunID         string   `json:"run_id,omitempty"`
	ObservationID string   `json:"observation_id"`
	Samples       int      `json:"samples"`
	Multiplier    string   `json:"multiplier"`
	Increment     string   `json:"increment"`
	Modulus       string   `json:"modulus"`
	ParamsID      string   `json:"params_id"`
	Preset        string   `json:"preset,omitempty"`
	PreviousRunID string   `json:"previous_run_id,omitempty"`
	Predicted     []string `json:"predicted,omitempty"`
}

// NewRecoverCommand creates the recover command.
func NewRecoverCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecoverOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "recover [states...]",
		Short: "Recover generator parameters from consecutive outputs",
		Long: `Recover the multiplier, increment and modulus of an LCG from a run of
consecutive outputs.

Observations are read from the arguments, from --file, or from stdin, and may
be separated by whitespace or commas. Each is decimal or 0x-prefixed hex.
At least 4 observations are needed; 10 or more are recommended because a
short run can yield a multiple of the true modulus.

Exit codes:
  0 - Parameters recovered and verified
  1 - Recovery failed
  2 - Command error (bad input, unreadable file, etc.)

Examples:
  lcgbreak recover 1103527590 377401575 662824084 1147902781 2035015474
  lcgbreak generate --preset glibc --count 20 | lcgbreak recover
  lcgbreak recover --file outputs.txt --predict 5
  lcgbreak recover --preset glibc 1103527590 377401575 662824084`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecover(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "read observations from file (- for stdin)")
	cmd.Flags().StringVar(&opts.Modulus, "modulus", "", "known modulus (skips modulus recovery)")
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "take the modulus from a catalog preset")
	cmd.Flags().IntVar(&opts.Predict, "predict", 0, "print the next N states")
	cmd.Flags().BoolVar(&opts.NoHistory, "no-history", false, "do not record this run")
	cmd.MarkFlagsMutuallyExclusive("modulus", "preset")

	return cmd
}

func runRecover(opts *RecoverOptions, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	logger := opts.Logger()
	ctx := commandContext(cmd)

	states, err := readStates(args, opts.File, cmd.InOrStdin())
	if err != nil {
		return f.Fail(ExitCommandError, CodeInput, err, nil)
	}
	if opts.Predict < 0 {
		return f.Fail(ExitCommandError, CodeInput, fmt.Errorf("--predict must be non-negative, got %d", opts.Predict), nil)
	}

	var known *big.Int
	switch {
	case opts.Modulus != "":
		if known, err = parseModulus(opts.Modulus); err != nil {
			return f.Fail(ExitCommandError, CodeInput, err, nil)
		}
	case opts.Preset != "":
		preset, err := lookupPreset(opts.Preset)
		if err != nil {
			return f.Fail(ExitCommandError, CodePreset, err, nil)
		}
		known = preset.Params.Modulus
	}

	obsID, err := ir.ObservationID(states)
	if err != nil {
		return f.Fail(ExitCommandError, CodeInput, err, nil)
	}

	if known == nil && len(states) < opts.MinSamples {
		logger.Warn("few observations; the recovered modulus may be a multiple of the true one",
			"samples", len(states),
			"min_samples", opts.MinSamples,
		)
	}

	result := RecoverResult{
		ObservationID: obsID,
		Samples:       len(states),
	}

	var hist *store.Store
	if !opts.NoHistory {
		hist, err = openHistory(opts.DB)
		if err != nil {
			logger.Warn("history unavailable; run will not be recorded", "db", opts.DB, "error", err)
		} else {
			defer hist.Close()
			if prev, ok, err := hist.FindByObservation(ctx, obsID); err != nil {
				logger.Warn("history lookup failed", "error", err)
			} else if ok {
				result.PreviousRunID = prev.ID
				logger.Debug("observations recovered before", "run_id", prev.ID, "params", prev.Params.String())
			}
		}
	}

	params, err := recoverParams(states, known)
	if err == nil {
		err = params.Verify(states)
	}

	if hist != nil {
		result.RunID = recordRun(ctx, hist, opts.idGenerator().Generate(), obsID, states, params, err, logger)
	}

	if err != nil {
		logger.Debug("recovery failed", "samples", len(states), "error", err)
		return f.Fail(ExitFailure, CodeRecovery, err, map[string]any{
			"code":    string(crack.CodeOf(err)),
			"samples": len(states),
		})
	}

	result.Multiplier = params.Multiplier.String()
	result.Increment = params.Increment.String()
	result.Modulus = params.Modulus.String()
	if result.ParamsID, err = ir.ParamsHash(params.Multiplier, params.Increment, params.Modulus); err != nil {
		return f.Fail(ExitCommandError, CodeInput, err, nil)
	}

	if cat, err := catalog.Load(); err != nil {
		logger.Warn("catalog unavailable", "error", err)
	} else if name, ok := cat.Match(params); ok {
		result.Preset = name
	}

	if opts.Predict > 0 {
		result.Predicted = ir.FormatIntegers(params.Predict(states[len(states)-1], opts.Predict))
	}

	logger.Debug("recovered parameters", "params", params.String(), "samples", len(states))

	return f.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "multiplier: %s\n", result.Multiplier)
		fmt.Fprintf(w, "increment:  %s\n", result.Increment)
		fmt.Fprintf(w, "modulus:    %s\n", result.Modulus)
		if result.Preset != "" {
			fmt.Fprintf(w, "preset:     %s\n", result.Preset)
		}
		for _, s := range result.Predicted {
			fmt.Fprintf(w, "next:       %s\n", s)
		}
	})
}

func recoverParams(states []*big.Int, known *big.Int) (crack.Params, error) {
	if known != nil {
		return crack.RecoverWithModulus(states, known)
	}
	return crack.Recover(states)
}

// recordRun stores the attempt and returns its ID, or "" if it could not
// be written.
func recordRun(ctx context.Context, hist *store.Store, id, obsID string, states []*big.Int, params crack.Params, recoverErr error, logger *slog.Logger) string {
	seq, err := hist.NextSeq(ctx)
	if err != nil {
		logger.Warn("history write failed", "error", err)
		return ""
	}

	run := store.Run{
		ID:            id,
		ObservationID: obsID,
		States:        states,
		Outcome:       store.OutcomeRecovered,
		Seq:           seq,
	}
	if recoverErr != nil {
		run.Outcome = store.OutcomeFailed
		run.ErrorCode = string(crack.CodeOf(recoverErr))
		run.Message = recoverErr.Error()
	} else {
		run.Params = &params
	}

	if err := hist.WriteRun(ctx, run); err != nil {
		logger.Warn("history write failed", "error", err)
		return ""
	}
	logger.Debug("run recorded", "run_id", id, "seq", seq, "outcome", run.Outcome)
	return id
}
