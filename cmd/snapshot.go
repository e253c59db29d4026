package cmd

import (
	"fmt"

	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/internal/snapstore"
	"github.com/guildtools/raidscope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotSetup loads minimal configuration needed for snapshot operations.
// This is used by commands that need store access without full shared setup.
func snapshotSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backendStr := viper.GetString("snapshot-backend")
	connStr := viper.GetString("snapshot-db-connect")

	// Handle empty backend as the default
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.SQLiteBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := snapstore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// snapshotSetupWrapper wraps snapshotSetup to provide PreRunE for snapshot commands.
func snapshotSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotSetup()
}

// snapshotMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func snapshotMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("snapshot-backend")
	connStr := viper.GetString("snapshot-db-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.SQLiteBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetSnapshotDBFilePath()
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr

	return nil
}

// snapshotMigrateSetupWrapper wraps snapshotMigrateSetup to provide PreRunE for migrate command.
func snapshotMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotMigrateSetup()
}

// snapshotCmd focused on snapshot data management.
//
// Note: Snapshot subcommands use minimal initialization (snapshotSetup)
// instead of the full sharedSetup used by inference commands. This avoids
// data directory validation for simple store operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage stored resolution runs and exports",
	Long: `Manage the snapshot store holding historical resolution runs.

Every 'results' run is recorded, storing:
- Run metadata (timestamp, guild, date filter, configuration)
- Per-player resolved parameters and projected maximums

This enables longitudinal tracking of inferred parameters and data export
for spreadsheet or BI analysis.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show snapshot store statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all stored runs
  migrate - Run database schema migrations

Examples:
  # Check store status
  raidscope snapshot status

  # Export for analysis in pandas/DuckDB
  raidscope snapshot export --output-file raid-data`,
}

// snapshotStatusCmd shows snapshot store status.
var snapshotStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot store statistics and connection details",
	Long: `Show detailed information about the snapshot store.

Displays:
- Backend type and connection status
- Total number of stored runs and player rows
- Last run timestamp

Examples:
  # Check snapshot store status
  raidscope snapshot status`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := snapstore.Store().Status()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		snapstore.PrintSnapshotStatus(status)
	},
}

// snapshotClearCmd clears the snapshot data.
var snapshotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored resolution runs",
	Long: `Delete all stored runs and per-player rows from the snapshot store.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  raidscope snapshot export --output-file backup
  raidscope snapshot clear`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := snapstore.Store().Clear(); err != nil {
			contract.LogFatal("Failed to clear snapshot data", err)
		}
		fmt.Println("Snapshot data cleared successfully.")
	},
}

// snapshotExportCmd exports snapshot data to Parquet files.
var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored runs to Parquet for BI tools and analytics",
	Long: `Export all stored snapshot data to Parquet format.

Exports two datasets derived from the --output-file prefix:
- <prefix>.runs.parquet        - metadata about each resolution run
- <prefix>.player_rows.parquet - per-player resolved parameters per run

Parquet format enables fast querying with DuckDB, Apache Spark and pandas,
and direct import into BI tools.

Requires: --output-file parameter

Examples:
  # Export all data
  raidscope snapshot export --output-file raid-data

  # Use with DuckDB for analysis
  raidscope snapshot export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.player_rows.parquet') LIMIT 10"`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := snapstore.ExecuteSnapshotExport(snapstore.Store(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export snapshot data", err)
		}
	},
}

// snapshotMigrateCmd runs database migrations for the snapshot store.
var snapshotMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the snapshot store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  raidscope snapshot migrate

  # Migrate to specific version
  raidscope snapshot migrate --target-version 1

  # Rollback to initial state
  raidscope snapshot migrate --target-version 0`,
	PreRunE: snapshotMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := snapstore.MigrateSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
