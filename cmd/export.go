package cmd

import (
	"github.com/huangsam/finhealth/core"
	"github.com/huangsam/finhealth/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd dumps assessments and KPI snapshots for downstream tools.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export assessments and KPI snapshots.",
	Long: `Dump every stored assessment and KPI snapshot in a machine-readable
format for BI tools and notebooks.

Formats:
  csv     - assessments (plus a _kpi sibling file when writing to disk)
  json    - single document with assessments and kpi_snapshots
  parquet - two files with _health and _kpi suffixes (requires --output-file)

Examples:
  # Everything as JSON on stdout
  finhealth export --output json

  # Parquet files for a data lake
  finhealth export --output parquet --output-file finhealth.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot export results", err)
		}
	},
}
