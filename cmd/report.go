package cmd

import (
	"strings"

	"github.com/huangsam/finhealth/core"
	"github.com/huangsam/finhealth/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd prints the narrative health report for one company.
var reportCmd = &cobra.Command{
	Use:   "report <ticker>",
	Short: "Show the narrative health report for one company.",
	Long: `Print the full health report for a company's most recent assessed
fiscal year: overall score and status, per-category scores, all derived
ratios, growth rates and narrative notes.

Examples:
  # Report on Apple
  finhealth report AAPL

  # Machine-readable report
  finhealth report AAPL --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		ticker := strings.ToUpper(args[0])
		if err := core.ExecuteReport(rootCtx, cfg, ticker); err != nil {
			contract.LogFatal("Cannot build report", err)
		}
	},
}
