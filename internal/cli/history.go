package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/lcgbreak/internal/ir"
	"github.com/roach88/lcgbreak/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// RunInfo describes a recorded run in command output.
type RunInfo struct {
	ID            string   `json:"id"`
	Seq           int64    `json:"seq"`
	ObservationID string   `json:"observation_id"`
	Samples       int      `json:"samples"`
	Outcome       string   `json:"outcome"`
	Multiplier    string   `json:"multiplier,omitempty"`
	Increment     string   `json:"increment,omitempty"`
	Modulus       string   `json:"modulus,omitempty"`
	ErrorCode     string   `json:"error_code,omitempty"`
	Message       string   `json:"message,omitempty"`
	States        []string `json:"states,omitempty"`
}

// NewHistoryCommand creates the history command and its show subcommand.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded recovery runs",
		Long: `List recovery runs recorded in the history database, newest first.

Examples:
  lcgbreak history --limit 5
  lcgbreak history show 01920000-0000-7000-8000-000000000000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum runs to list (0 for all)")

	cmd.AddCommand(&cobra.Command{
		Use:           "show <run-id>",
		Short:         "Show one recorded run",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryShow(rootOpts, args[0], cmd)
		},
	})

	return cmd
}

func runHistoryList(opts *HistoryOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	st, err := openExistingHistory(opts.DB)
	if err != nil {
		return f.Fail(ExitCommandError, CodeStore, err, nil)
	}
	defer st.Close()

	runs, err := st.ListRuns(commandContext(cmd), opts.Limit)
	if err != nil {
		return f.Fail(ExitCommandError, CodeStore, err, nil)
	}

	infos := make([]RunInfo, len(runs))
	for i, run := range runs {
		infos[i] = runInfo(run, false)
	}

	return f.Success(infos, func(w io.Writer) {
		if len(infos) == 0 {
			fmt.Fprintln(w, "No runs recorded.")
			return
		}
		for _, r := range infos {
			fmt.Fprintf(w, "%4d  %s  %-9s  %3d  %s\n", r.Seq, r.ID, r.Outcome, r.Samples, runSummary(r))
		}
	})
}

func runHistoryShow(opts *RootOptions, id string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	st, err := openExistingHistory(opts.DB)
	if err != nil {
		return f.Fail(ExitCommandError, CodeStore, err, nil)
	}
	defer st.Close()

	run, err := st.ReadRun(commandContext(cmd), id)
	if errors.Is(err, sql.ErrNoRows) {
		return f.Fail(ExitCommandError, CodeNotFound, fmt.Errorf("run %q not found", id), nil)
	}
	if err != nil {
		return f.Fail(ExitCommandError, CodeStore, err, nil)
	}

	info := runInfo(run, true)
	return f.Success(info, func(w io.Writer) {
		fmt.Fprintf(w, "id:             %s\n", info.ID)
		fmt.Fprintf(w, "seq:            %d\n", info.Seq)
		fmt.Fprintf(w, "observation_id: %s\n", info.ObservationID)
		fmt.Fprintf(w, "outcome:        %s\n", info.Outcome)
		fmt.Fprintf(w, "result:         %s\n", runSummary(info))
		fmt.Fprintf(w, "states (%d):    %s\n", info.Samples, strings.Join(info.States, " "))
	})
}

func runInfo(run store.Run, withStates bool) RunInfo {
	info := RunInfo{
		ID:            run.ID,
		Seq:           run.Seq,
		ObservationID: run.ObservationID,
		Samples:       run.Samples(),
		Outcome:       run.Outcome,
		ErrorCode:     run.ErrorCode,
		Message:       run.Message,
	}
	if run.Params != nil {
		info.Multiplier = run.Params.Multiplier.String()
		info.Increment = run.Params.Increment.String()
		info.Modulus = run.Params.Modulus.String()
	}
	if withStates {
		info.States = ir.FormatIntegers(run.States)
	}
	return info
}

func runSummary(r RunInfo) string {
	if r.Outcome == store.OutcomeRecovered {
		return fmt.Sprintf("(%s, %s, %s)", r.Multiplier, r.Increment, r.Modulus)
	}
	return r.ErrorCode
}

// openHistory opens the history database, creating its directory.
func openHistory(path string) (*store.Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}
	return store.Open(path)
}

// openExistingHistory opens the history database without creating it.
func openExistingHistory(path string) (*store.Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("history database not found: %s", path)
	}
	return store.Open(path)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
