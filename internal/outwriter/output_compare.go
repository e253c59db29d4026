package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteComparisonMatrix outputs the per-date parameter comparison,
// dispatching on the configured output format.
func WriteComparisonMatrix(matrix schema.ComparisonMatrix, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, matrix)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVComparisonMatrix(csvWriter, matrix)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(matrix, cfg, duration, w)
		}, "Wrote table")
	}
}

func writeComparisonTable(matrix schema.ComparisonMatrix, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	headers := append([]string{"Player"}, matrix.Dates...)
	table.Header(headers)

	var data [][]string
	for _, row := range matrix.Rows {
		cells := append([]string{contract.TruncateName(row.Player, getMaxTableNameWidth(cfg))}, row.Cells...)
		data = append(data, cells)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Compared %d players across %d dates in %v\n", len(matrix.Rows), len(matrix.Dates), duration)
	return err
}

func writeCSVComparisonMatrix(w *csv.Writer, matrix schema.ComparisonMatrix) error {
	header := append([]string{"player"}, matrix.Dates...)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range matrix.Rows {
		if err := w.Write(append([]string{row.Player}, row.Cells...)); err != nil {
			return err
		}
	}
	return nil
}
