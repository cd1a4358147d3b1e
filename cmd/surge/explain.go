package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"surge/internal/diag"
)

var explainCmd = &cobra.Command{
	Use:   "explain <code>",
	Short: "Explain a diagnostic code",
	Long:  `explain prints what a diagnostic code means, by name (TYPE_UNASSIGNABLE) or number (2002).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, ok := lookupCode(args[0])
		if !ok {
			return fmt.Errorf("unknown diagnostic code %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n  %s\n", code.String(), uint16(code), code.Describe())
		return nil
	},
}

// lookupCode resolves arg as either a numeric code or its name
// (case-insensitive; '-' is accepted in place of '_').
func lookupCode(arg string) (diag.Code, bool) {
	if n, err := strconv.ParseUint(arg, 10, 16); err == nil {
		return diag.Code(n), diag.Code(n).String() != fmt.Sprintf("DIAG%04d", n)
	}
	want := strings.ToUpper(strings.ReplaceAll(arg, "-", "_"))
	for _, code := range diag.AllCodes() {
		if code.String() == want {
			return code, true
		}
	}
	return 0, false
}
