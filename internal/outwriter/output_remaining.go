package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRemainingRows outputs per-player remaining capacity, dispatching on
// the configured output format.
func WriteRemainingRows(rows []schema.RemainingRow, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVRemainingRows(csvWriter, rows, cfg)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRemainingTable(rows, cfg, duration, w)
		}, "Wrote table")
	}
}

func writeRemainingTable(rows []schema.RemainingRow, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Player", "Battle", "PWS", "Bonus", "Extra", "Attacks Left", "Seconds Left", "Score Left"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range rows {
		data = append(data, []string{
			contract.TruncateName(row.Player, getMaxTableNameWidth(cfg)),
			fmtFloat(row.Battle),
			strconv.Itoa(row.PerWaveScore),
			strconv.Itoa(row.Bonus),
			strconv.Itoa(row.ExtraSeconds),
			strconv.Itoa(row.RemainingAttacks),
			strconv.Itoa(row.RemainingSeconds),
			strconv.Itoa(row.RemainingScore),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalLeft := 0
	for _, row := range rows {
		totalLeft += row.RemainingScore
	}
	_, err := fmt.Fprintf(writer, "Showing %d estimable players (score left: %d). Completed in %v\n", len(rows), totalLeft, duration)
	return err
}

func writeCSVRemainingRows(w *csv.Writer, rows []schema.RemainingRow, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	header := []string{
		"player",
		"battle",
		"per_wave_score",
		"bonus",
		"extra_seconds",
		"remaining_attacks",
		"remaining_seconds",
		"remaining_score",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{
			row.Player,
			fmtFloat(row.Battle),
			strconv.Itoa(row.PerWaveScore),
			strconv.Itoa(row.Bonus),
			strconv.Itoa(row.ExtraSeconds),
			strconv.Itoa(row.RemainingAttacks),
			strconv.Itoa(row.RemainingSeconds),
			strconv.Itoa(row.RemainingScore),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
