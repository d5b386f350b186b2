package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/talentlens/talentlens/core"
	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/internal/histstore"
	"github.com/talentlens/talentlens/schema"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the store with the loaded config
	if err := histstore.InitHistory(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	// Output-related config values (used by recent and export commands)
	cfg.ResultLimit = viper.GetInt("limit")
	cfg.Precision = viper.GetInt("precision")
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Width = viper.GetInt("width")
	if useColors, err := contract.ParseBoolString(viper.GetString("color")); err == nil {
		cfg.UseColors = useColors
	}

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = histstore.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on analysis history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead of
// the full sharedSetup used by analysis commands. This avoids weight validation
// and complex config processing for simple history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage stored analysis history and exports",
	Long: `Manage the stored record of past feedback analyses.

When enabled, TalentLens records every analysis run, storing:
- Candidate identity and role context
- Overall impression, sentiment and confidence scores
- The primary recommendation and highest risk level
- The full capability score vector

This enables pipeline review, trend tracking and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  recent  - Show the most recent stored analyses
  status  - Show history tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all stored analyses
  migrate - Run database schema migrations

Examples:
  # Review the latest analyses
  talentlens history recent --history-backend sqlite

  # Export for analysis in pandas/DuckDB
  talentlens history export --history-backend sqlite --output-file history-data`,
}

// historyRecentCmd lists the most recent stored analyses.
var historyRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent stored analyses",
	Long: `List the most recently recorded analyses, newest first.

Each row shows the candidate, role, interviewer rating, overall
impression, primary recommendation and risk summary.

Examples:
  # Latest analyses from the default SQLite store
  talentlens history recent --history-backend sqlite

  # Last three, exported as JSON
  talentlens history recent --history-backend sqlite --limit 3 --output json`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHistoryRecent(cfg, histstore.Manager); err != nil {
			contract.LogFatal("Cannot list analysis history", err)
		}
	},
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history tracking statistics and connection details",
	Long: `Show detailed information about stored analysis history.

Displays:
- Backend type and storage location
- Schema version
- Total number of analyses stored
- Newest and oldest analysis timestamps

Use this to:
- Verify history tracking is enabled and working
- Monitor data accumulation over time
- Check database connection health

Examples:
  # Check history tracking status
  talentlens history status --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := histstore.Manager.GetHistoryStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		histstore.PrintHistoryStatus(status)
	},
}

// historyClearCmd clears the stored analyses.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored analysis history",
	Long: `Delete all recorded analyses from the history store.

WARNING: This action cannot be undone. Consider exporting data first.

Use this when:
- Resetting pipeline tracking between hiring rounds
- Database storage is full
- Testing history features

Examples:
  # Export before clearing
  talentlens history export --history-backend sqlite --output-file backup
  talentlens history clear --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		removed, err := histstore.Manager.GetHistoryStore().ClearHistory()
		if err != nil {
			contract.LogFatal("Failed to clear analysis history", err)
		}
		fmt.Printf("Analysis history cleared successfully (%d records removed).\n", removed)
	},
}

// historyExportCmd exports stored analyses to a Parquet file.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored analyses to Parquet for BI tools and analytics",
	Long: `Export all stored analyses to Parquet format for use with analytics tools.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Use cases:
- Hiring funnel analysis across many candidates
- Custom dashboards and visualizations
- Calibration of interviewer ratings over time

Examples:
  # Export all stored analyses
  talentlens history export --history-backend sqlite --output-file talentlens-data

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('talentlens-data.history.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := histstore.ExecuteHistoryExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export analysis history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the analysis history store.

Migrations allow:
- Upgrading to new schema versions when TalentLens is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  talentlens history migrate --history-backend sqlite

  # Migrate to specific version
  talentlens history migrate --history-backend sqlite --target-version 1

  # Rollback to initial state
  talentlens history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := histstore.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run history migrations", err)
		}
	},
}
