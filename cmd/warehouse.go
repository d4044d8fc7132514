package cmd

import (
	"fmt"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/internal/outwriter"
	"github.com/huangsam/finhealth/internal/warehouse"
	"github.com/huangsam/finhealth/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// warehouseSetup loads minimal configuration needed for warehouse operations.
// This is used by commands that need warehouse access without full shared setup.
func warehouseSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get warehouse-related config values
	backend := schema.DatabaseBackend(viper.GetString("warehouse-backend"))
	connStr := viper.GetString("warehouse-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.WarehouseBackend = backend
	cfg.WarehouseDBConnect = connStr
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.OutputFile = viper.GetString("output-file")

	emojis, err := contract.ParseBoolString(viper.GetString("emoji"))
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	return nil
}

// warehouseSetupWrapper wraps warehouseSetup to provide PreRunE for warehouse commands.
func warehouseSetupWrapper(_ *cobra.Command, _ []string) error {
	return warehouseSetup()
}

// warehouseCmd focused on warehouse management.
//
// Note: Warehouse subcommands use minimal initialization (warehouseSetup)
// instead of the full sharedSetup used by pipeline commands. This avoids
// ticker universe processing for simple maintenance operations.
var warehouseCmd = &cobra.Command{
	Use:   "warehouse",
	Short: "Manage the statement and assessment warehouse",
	Long: `Manage the warehouse that stores normalized statements, health
assessments and KPI snapshots between runs.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (no persistence)

Subcommands:
  status  - Show row counts and connection info
  clear   - Remove all stored rows
  migrate - Run schema migrations

Examples:
  # Check warehouse status
  finhealth warehouse status

  # Start fresh before re-ingesting a new provider snapshot
  finhealth warehouse clear`,
}

// warehouseStatusCmd shows warehouse status.
var warehouseStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display warehouse row counts and connection details",
	Long: `Show detailed information about the warehouse.

Displays:
- Backend type and storage location
- Number of stored company-years
- Number of stored assessments and KPI snapshots

Examples:
  # Check warehouse status
  finhealth warehouse status`,
	PreRunE: warehouseSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := warehouse.NewStore(cfg)
		if err != nil {
			contract.LogFatal("Failed to open warehouse", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get warehouse status", err)
		}
		if err := outwriter.PrintWarehouseStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to print warehouse status", err)
		}
	},
}

// warehouseClearCmd clears the warehouse.
var warehouseClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored statements and assessments",
	Long: `Delete all stored rows from the configured backend.

Use this when:
- A provider shipped corrected statement data
- Scoring configuration changed and old assessments are stale
- Testing pipeline behavior from a clean slate

Examples:
  # Clear the SQLite warehouse (default)
  finhealth warehouse clear

  # Clear a MySQL warehouse (set connection string via env variable)
  FINHEALTH_WAREHOUSE_BACKEND=mysql FINHEALTH_WAREHOUSE_DB_CONNECT="..." finhealth warehouse clear`,
	PreRunE: warehouseSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := warehouse.NewStore(cfg)
		if err != nil {
			contract.LogFatal("Failed to open warehouse", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear warehouse", err)
		}
		fmt.Println("Warehouse cleared successfully.")
	},
}

// warehouseMigrateCmd runs schema migrations.
var warehouseMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run warehouse schema migrations",
	Long: `Apply versioned schema migrations to the warehouse database.

By default this migrates to the latest version. Use --target-version to
move to a specific version, or 0 to roll everything back.

Examples:
  # Migrate to the latest schema
  finhealth warehouse migrate

  # Roll back all migrations
  finhealth warehouse migrate --target-version 0`,
	PreRunE: warehouseSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := warehouse.MigrateWarehouse(cfg.WarehouseBackend, cfg.WarehouseDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
