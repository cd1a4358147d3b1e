// Command surge is the ambient CLI shell around the semantic checker: it
// loads target configuration, fans out package checks, and renders or
// browses the resulting diagnostics. Parsing real `.sg` source is outside
// this module's scope (core spec §1); surge operates on the checker's
// actual inputs and outputs — TargetConfig TOML in, diagnostic snapshots
// out.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"surge/internal/diagfmt"
	"surge/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "surge",
	Short: "Surge semantic checker toolchain",
	Long:  `surge drives the Surge language's semantic checker: target configuration, diagnostic rendering, and the interactive browser.`,
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(diagCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveColor turns the --color flag plus fd's terminal-ness into a
// final bool, per SPEC_FULL's "auto-detects color via term.IsTerminal".
func resolveColor(cmd *cobra.Command, fd uintptr) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return diagfmt.AutoColor(fd)
	}
}
