package cmd

import (
	"github.com/huangsam/finhealth/core"
	"github.com/huangsam/finhealth/internal/contract"
	"github.com/spf13/cobra"
)

// pipelineCmd ingests, normalizes, scores and persists statements.
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Ingest statements and compute health assessments.",
	Long: `Run the full ingestion pipeline for the configured ticker universe.

For every ticker, the pipeline:
- Fetches raw statements from the statement provider
- Normalizes provider labels into canonical metrics
- Derives ratios, growth rates and health scores per fiscal year
- Persists company-years, assessments and KPI snapshots to the warehouse

Each ticker is processed independently; a failure for one ticker is
reported as a warning and does not abort the rest of the run.

Examples:
  # Analyze the default universe against local statement files
  finhealth pipeline --data-dir ./data

  # Analyze two companies with the category-weighted scheme
  finhealth pipeline -t AAPL,MSFT --variant category_weighted

  # Keep only the last three fiscal years per company
  finhealth pipeline --years 3`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePipeline(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run pipeline", err)
		}
	},
}
