// Package cmd defines the command-line interface for raidscope.
package cmd

import (
	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(guildCmd)
	rootCmd.AddCommand(remainingCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(guildsCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the snapshot subcommands to the parent snapshot command
	snapshotCmd.AddCommand(snapshotStatusCmd)
	snapshotCmd.AddCommand(snapshotClearCmd)
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("data-dir", contract.DefaultDataDir, "Directory holding per-guild score exports")
	rootCmd.PersistentFlags().StringP("date", "d", schema.AllDatesToken, "Event date to analyze (digits only, e.g. 0315) or 'all'")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("snapshot-backend", string(schema.SQLiteBackend), "Snapshot backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("snapshot-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of resultsCmd to Viper
	resultsCmd.Flags().Bool("candidates", false, "Include the ranked candidate list per player")
	if err := viper.BindPFlags(resultsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding results flags", err)
	}

	// Bind all flags of calcCmd to Viper
	calcCmd.Flags().Float64("battle", 0, "Battle rating")
	calcCmd.Flags().Int("bonus", 0, "Flat bonus tier (0, 500, 1000, 1500, 2000, 2500, 3000)")
	calcCmd.Flags().Int("extra", 0, "Extra seconds purchased (0, 20, 60, 120)")
	if err := viper.BindPFlags(calcCmd.Flags()); err != nil {
		contract.LogFatal("Error binding calc flags", err)
	}

	// Bind all flags of snapshotMigrateCmd to Viper
	snapshotMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(snapshotMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot migrate flags", err)
	}
}
