package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/roach88/lcgbreak/internal/crack"
	"github.com/roach88/lcgbreak/internal/runid"
)

// RootOptions holds global flags for all commands.
// Fields are resolved from flags, LCGBREAK_* environment variables and the
// config file before any subcommand runs.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	DB         string
	ConfigFile string
	MinSamples int

	// IDs generates run IDs for the history database.
	// If nil, defaults to UUIDv7Generator.
	IDs runid.Generator

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the lcgbreak CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{}, viper.New())
}

func newRootCommand(opts *RootOptions, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lcgbreak",
		Short: "lcgbreak - recover linear congruential generator parameters",
		Long: `Recover the multiplier, increment and modulus of a linear congruential
generator s[n+1] = (a*s[n] + c) mod m from a run of consecutive outputs.

Configuration is read from $HOME/.lcgbreak.yaml (or --config) and from
LCGBREAK_* environment variables. Flags take precedence over both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v, opts); err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.MinSamples < crack.MinSamples {
				return NewExitError(ExitCommandError, fmt.Sprintf("min_samples must be at least %d, got %d", crack.MinSamples, opts.MinSamples))
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	flags.StringVar(&opts.DB, "db", "", "history database path (default $HOME/.lcgbreak/history.db)")
	flags.StringVar(&opts.ConfigFile, "config", "", "config file (default $HOME/.lcgbreak.yaml)")
	flags.IntVar(&opts.MinSamples, "min-samples", crack.RecommendedSamples, "warn when recovering from fewer observations")

	bindFlags(v, cmd)

	cmd.AddCommand(NewRecoverCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewPredictCommand(opts))
	cmd.AddCommand(NewPresetsCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// Logger returns the configured logger, discarding output when the root
// command has not run.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.logger
}

func (o *RootOptions) idGenerator() runid.Generator {
	if o.IDs == nil {
		return runid.UUIDv7Generator{}
	}
	return o.IDs
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  o.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: o.Verbose,
	}
}

// newLogger configures slog the way every command logs: text on stderr,
// debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
