package histstore

import (
	"fmt"

	"github.com/talentlens/talentlens/schema"
)

// PrintHistoryStatus prints history store status information.
func PrintHistoryStatus(status schema.HistoryStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		return
	}
	fmt.Printf("Location: %s\n", status.Location)
	fmt.Printf("Schema Version: %d\n", status.SchemaVersion)
	fmt.Printf("Total Analyses: %d\n", status.TotalAnalyses)
	if status.TotalAnalyses > 0 {
		fmt.Printf("Newest Analysis: %s\n", status.NewestAnalysis.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Analysis: %s\n", status.OldestAnalysis.Format("2006-01-02 15:04:05"))
	}
}
