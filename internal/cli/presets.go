package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/lcgbreak/internal/catalog"
)

// PresetInfo describes one catalog entry in command output.
type PresetInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Multiplier  string `json:"multiplier"`
	Increment   string `json:"increment"`
	Modulus     string `json:"modulus"`
}

// NewPresetsCommand creates the presets command.
func NewPresetsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "presets",
		Short:         "List well-known generator presets",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(rootOpts, cmd)
		},
	}
}

func runPresets(opts *RootOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	cat, err := catalog.Load()
	if err != nil {
		return f.Fail(ExitCommandError, CodePreset, err, nil)
	}

	infos := make([]PresetInfo, 0, len(cat.Names()))
	for _, p := range cat.Presets() {
		infos = append(infos, PresetInfo{
			Name:        p.Name,
			Description: p.Description,
			Multiplier:  p.Params.Multiplier.String(),
			Increment:   p.Params.Increment.String(),
			Modulus:     p.Params.Modulus.String(),
		})
	}

	return f.Success(infos, func(w io.Writer) {
		for _, p := range infos {
			fmt.Fprintf(w, "%-18s a=%s c=%s m=%s\n", p.Name, p.Multiplier, p.Increment, p.Modulus)
			fmt.Fprintf(w, "%-18s %s\n", "", p.Description)
		}
	})
}
