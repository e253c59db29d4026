package snapstore

import (
	"fmt"

	"github.com/guildtools/raidscope/schema"
)

// PrintSnapshotStatus prints snapshot store statistics to stdout.
func PrintSnapshotStatus(status schema.StoreStatus) {
	fmt.Printf("Snapshot Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	fmt.Printf("Total Player Rows: %d\n", status.TotalPlayerRows)
	if status.TotalRuns > 0 {
		fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
	}
}
