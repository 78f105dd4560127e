// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/extractfeature/internal/gate"
)

// changeLineToken is the positional token that enables the
// change-size gate (the historical invocation form).
const changeLineToken = "check_change_line"

var checkCmd = &cobra.Command{
	Use:   "check [check_change_line]",
	Short: "Run the pre-commit quality gate",
	Long: `Check runs the style tools (gofmt, go vet, staticcheck), then fails
at the first tracked file over the 500-line limit. With the
check_change_line token (or --change-line), it also sums added and
deleted lines against the main baseline and fails when the total
exceeds 200 lines.

Style tool failures are reported but never fail the check; only the
line gates do.`,
	Args: validateCheckArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("change-line", false, "enable the change-size gate")
	checkCmd.Flags().String("baseline", "main", "branch the change-size gate diffs against")
	checkCmd.Flags().Int("max-file-lines", 500, "per-file line limit")
	checkCmd.Flags().Int("max-change-lines", 200, "added+deleted line limit against the baseline")
	checkCmd.Flags().StringSlice("ignore", []string{"config.yaml"}, "tracked files exempt from the line limit")
	checkCmd.Flags().Bool("skip-tools", false, "skip the style tool stage")

	rootCmd.AddCommand(checkCmd)
}

// validateCheckArgs accepts at most the check_change_line token; any
// other positional argument is rejected.
func validateCheckArgs(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if arg != changeLineToken {
			return fmt.Errorf("unknown argument %q (only %q is accepted)", arg, changeLineToken)
		}
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts := gate.DefaultOptions()

	opts.Baseline, _ = cmd.Flags().GetString("baseline")
	opts.MaxFileLines, _ = cmd.Flags().GetInt("max-file-lines")
	opts.MaxChangeLines, _ = cmd.Flags().GetInt("max-change-lines")
	opts.IgnoreFiles, _ = cmd.Flags().GetStringSlice("ignore")
	opts.SkipTools, _ = cmd.Flags().GetBool("skip-tools")

	changeLine, _ := cmd.Flags().GetBool("change-line")
	opts.CheckChange = changeLine || len(args) > 0

	report, err := gate.New(opts).Run(os.Stderr)
	report.Render(os.Stdout)
	return err
}
