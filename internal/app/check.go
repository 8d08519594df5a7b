package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aflah02/pyqa/internal/lint"
)

func NewCheckCmd(gate Gate) *cobra.Command {
	var verbose bool
	var continueOnError bool
	var onlyStr string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the code quality checks",
		Args:  cobra.NoArgs,
		Example: `
RUN THE FULL GATE (silent when everything passes)
  pyqa check

RUN A SINGLE CHECK
  pyqa check --only format

KEEP GOING PAST FAILURES
  pyqa check -C

RERUN ON EVERY FILE CHANGE
  pyqa check --watch`,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show every check result, not just failures")
	outputVal := formatValue("text")
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")
	cmd.Flags().BoolVarP(&continueOnError, "continue-on-error", "C", false,
		"Run every check even when one fails (default is to stop on first failure)")

	cmd.Flags().StringVar(&onlyStr, "only", "",
		fmt.Sprintf("Run a single check (%s, %s, %s, %s)",
			lint.CheckImports,
			lint.CheckStyle,
			lint.CheckFormat,
			lint.CheckCopyright,
		))
	var watch bool
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch for changes and rerun the checks")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		var only lint.CheckName
		if onlyStr != "" {
			var err error
			only, err = lint.NewCheckName(onlyStr)
			if err != nil {
				return err
			}
		}

		noColour, _ := cmd.Flags().GetBool("nocolour")
		useColour := !noColour

		if watch {
			return gate.WatchChecks(cmd.Context(), only, verbose, string(outputVal),
				useColour, continueOnError, nil)
		}

		return gate.RunChecks(cmd.Context(), only, verbose, string(outputVal),
			useColour, continueOnError)
	}

	return cmd
}
