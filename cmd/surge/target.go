package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"surge/internal/driver"
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Inspect target configuration",
}

var targetValidateCmd = &cobra.Command{
	Use:   "validate <config.toml>",
	Short: "Load and print a TargetConfig TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, name, err := driver.LoadTargetConfig(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "target %q: int=%d uint=%d\n", name, target.IntWidth, target.UintWidth)
		return nil
	},
}

func init() {
	targetCmd.AddCommand(targetValidateCmd)
}
