// Package cmd defines the command-line interface for finhealth.
package cmd

import (
	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(pipelineCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(warehouseCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the warehouse subcommands to the parent warehouse command
	warehouseCmd.AddCommand(warehouseStatusCmd)
	warehouseCmd.AddCommand(warehouseClearCmd)
	warehouseCmd.AddCommand(warehouseMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("tickers", "t", "", "Comma-separated list of tickers to analyze (defaults to the configured universe)")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "data", "Directory holding provider statement files")
	rootCmd.PersistentFlags().Int("years", contract.DefaultYears, "Number of most recent fiscal years to analyze")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("merge-policy", string(schema.LastWriteWins), "Duplicate label policy: last_write_wins or first_write_wins")
	rootCmd.PersistentFlags().Bool("subtract-inventory", false, "Subtract inventory from current assets for the quick ratio")
	rootCmd.PersistentFlags().String("variant", string(schema.PointAccumulation), "Scoring scheme: point_accumulation or category_weighted")
	rootCmd.PersistentFlags().String("warehouse-backend", string(schema.SQLiteBackend), "Warehouse backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("warehouse-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug-level pipeline logging")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of warehouseMigrateCmd to Viper
	warehouseMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(warehouseMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding warehouse migrate flags", err)
	}
}
