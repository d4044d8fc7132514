package cmd

import (
	"github.com/huangsam/finhealth/core"
	"github.com/huangsam/finhealth/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd ranks companies by overall health score.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Show companies ranked by health score.",
	Long: `Rank all assessed companies by overall health score.

Each company is represented by its most recent assessed fiscal year.
Companies without a computable score sort below all scored companies;
ties break alphabetically by ticker.

Examples:
  # Show the top 10 healthiest companies
  finhealth rank --limit 10

  # Export the ranking to CSV for tracking
  finhealth rank --output csv --output-file ranking.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot rank companies", err)
		}
	},
}
