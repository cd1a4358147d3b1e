package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"surge/internal/diag"
	"surge/internal/diagfmt"
	"surge/internal/diagtui"
	"surge/internal/source"
)

var (
	diagInteractive bool
	diagContext     int8
)

var diagCmd = &cobra.Command{
	Use:   "diag",
	Short: "Render diagnostic snapshots",
}

var diagViewCmd = &cobra.Command{
	Use:   "view <snapshot.msgpack> <source-file>...",
	Short: "Render a msgpack diagnostic snapshot against its source files",
	Long: `view decodes a diag.Bag snapshot (written elsewhere via Bag.MarshalBinary)
and renders it, either as text or in the interactive browser. The source
files must be given in the same order they were loaded in when the
snapshot was produced, so file IDs line up with the encoded locations.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading snapshot %s: %w", args[0], err)
		}
		bag := diag.NewBag(0)
		if err := bag.UnmarshalBinary(data); err != nil {
			return fmt.Errorf("decoding snapshot %s: %w", args[0], err)
		}
		bag.Sort()

		fs := source.NewFileSet()
		for _, path := range args[1:] {
			if _, err := fs.Load(path); err != nil {
				return fmt.Errorf("loading source %s: %w", path, err)
			}
		}

		if diagInteractive {
			return diagtui.Run(bag, fs)
		}

		diagfmt.Pretty(cmd.OutOrStdout(), bag, fs, diagfmt.PrettyOpts{
			Color:     resolveColor(cmd, os.Stdout.Fd()),
			Context:   diagContext,
			ShowNotes: true,
		})
		return nil
	},
}

func init() {
	diagViewCmd.Flags().BoolVar(&diagInteractive, "interactive", false, "browse diagnostics in the interactive TUI")
	diagViewCmd.Flags().Int8Var(&diagContext, "context", 2, "lines of source context around each diagnostic")
	diagCmd.AddCommand(diagViewCmd)
}
