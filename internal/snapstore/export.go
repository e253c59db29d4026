package snapstore

import (
	"errors"
	"fmt"

	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/internal/parquet"
)

// ExecuteSnapshotExport exports every stored run and player row to a pair of
// Parquet files derived from the given output prefix.
func ExecuteSnapshotExport(store contract.SnapshotStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	status, err := store.Status()
	if err != nil {
		return fmt.Errorf("failed to get snapshot status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no snapshot data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total player rows: %d\n", status.TotalPlayerRows)

	runs, err := store.ListRuns(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	var playerRows []parquet.PlayerRow
	for _, run := range runs {
		rows, err := store.PlayerRows(run.RunID)
		if err != nil {
			return fmt.Errorf("failed to retrieve player rows for run %d: %w", run.RunID, err)
		}
		playerRows = append(playerRows, parquet.ConvertPlayerRowRecords(rows)...)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquet.ConvertRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(runs), runsFile)

	rowsFile := outputFile + ".player_rows.parquet"
	if err := parquet.WritePlayerRowsParquet(playerRows, rowsFile); err != nil {
		return fmt.Errorf("failed to write player rows: %w", err)
	}
	fmt.Printf("Exported %d player rows to: %s\n", len(playerRows), rowsFile)

	return nil
}
