package histstore

import (
	"errors"
	"fmt"

	"github.com/talentlens/talentlens/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of analysis history to a Parquet file.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the history store
	store := Manager.GetHistoryStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalAnalyses == 0 {
		return errors.New("no analysis history found to export")
	}

	fmt.Printf("Exporting history from %s backend...\n", status.Backend)
	fmt.Printf("Total analyses: %d\n", status.TotalAnalyses)

	// Retrieve every stored analysis, newest first
	records, err := store.RecentAnalyses(status.TotalAnalyses)
	if err != nil {
		return fmt.Errorf("failed to retrieve analysis history: %w", err)
	}

	// Convert to Parquet format and write
	parquetRecords := parquet.ConvertAnalysisRecords(records)
	historyFile := outputFile + ".history.parquet"
	if err := parquet.WriteHistoryParquet(parquetRecords, historyFile); err != nil {
		return fmt.Errorf("failed to write history records: %w", err)
	}
	fmt.Printf("Exported %d analyses to: %s\n", len(parquetRecords), historyFile)

	fmt.Println("\nExport complete! The Parquet file can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
