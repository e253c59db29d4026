package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteGuildSummary outputs the guild-level aggregate, dispatching on the
// configured output format.
func WriteGuildSummary(sum schema.GuildSummary, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, sum)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVGuildSummary(csvWriter, sum)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGuildTable(sum, cfg, duration, w)
		}, "Wrote table")
	}
}

func writeGuildTable(sum schema.GuildSummary, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Guild", sum.Guild},
		{"Date", sum.Date},
		{"Guild total", strconv.Itoa(sum.TotalScore)},
		{"Estimated max", strconv.Itoa(sum.EstimatedMax)},
		{"Remaining (estimable)", strconv.Itoa(sum.RemainingScore)},
		{"Estimable players", strconv.Itoa(len(sum.Estimable))},
		{"Estimable total", strconv.Itoa(sum.EstimableTotal)},
		{"Unestimable players", strconv.Itoa(len(sum.Unestimable))},
		{"Unestimable total", strconv.Itoa(sum.UnestimableTotal)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(sum.Unestimable) > 0 {
		if _, err := fmt.Fprintf(writer, "Unestimable: %s\n", strings.Join(sum.Unestimable, ", ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(writer, "Summary completed in %v with %d workers\n", duration, cfg.Workers)
	return err
}

func writeCSVGuildSummary(w *csv.Writer, sum schema.GuildSummary) error {
	header := []string{
		"guild",
		"date",
		"total_score",
		"estimated_max",
		"remaining_score",
		"estimable_count",
		"estimable_total",
		"unestimable_count",
		"unestimable_total",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	return w.Write([]string{
		sum.Guild,
		sum.Date,
		strconv.Itoa(sum.TotalScore),
		strconv.Itoa(sum.EstimatedMax),
		strconv.Itoa(sum.RemainingScore),
		strconv.Itoa(len(sum.Estimable)),
		strconv.Itoa(sum.EstimableTotal),
		strconv.Itoa(len(sum.Unestimable)),
		strconv.Itoa(sum.UnestimableTotal),
	})
}
