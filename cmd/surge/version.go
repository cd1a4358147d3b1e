package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"surge/internal/version"
)

var (
	commitColor = color.New(color.FgRed, color.Bold)
	dateColor   = color.New(color.FgCyan, color.Bold)
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print surge's build version",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := version.Version
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "surge %s\n", v)
		if version.GitCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commitColor.Sprint(version.GitCommit))
		}
		if version.BuildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", dateColor.Sprint(version.BuildDate))
		}
		return nil
	},
}
