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

// WritePlayerResults outputs resolved player rows, dispatching based on the
// output format configured.
func WritePlayerResults(results []schema.PlayerResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONPlayerResults(w, results)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVPlayerResults(csvWriter, results, cfg)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePlayerTable(results, cfg, duration, w)
		}, "Wrote table")
	}
}

// writePlayerTable generates and writes the human-readable table.
func writePlayerTable(results []schema.PlayerResult, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Player", "Attacks", "Total", "Battle", "Bonus", "Extra", "PWS", "Max", "Status"}
	if cfg.ShowCandidates {
		headers = append(headers, "Candidates")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, res := range results {
		label := contract.GetPlainLabel(res)
		if cfg.UseColors {
			label = contract.GetColorLabel(res)
		}
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(res.Player, getMaxTableNameWidth(cfg)),
			strconv.Itoa(res.AttackCount),
			strconv.Itoa(res.TotalScore),
			fmtFloat(res.Battle),
			strconv.Itoa(res.Bonus),
			strconv.Itoa(res.ExtraSeconds),
			strconv.Itoa(res.PerWaveScore),
			strconv.Itoa(res.MaxScore),
			label,
		}
		if cfg.ShowCandidates {
			row = append(row, formatTopCandidates(res.Candidates, 2))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalScore := 0
	escalated := 0
	for _, res := range results {
		totalScore += res.TotalScore
		if res.Escalated {
			escalated++
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing %d players (guild total: %d, escalated: %d)\n", len(results), totalScore, escalated); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Resolution completed in %v with %d workers. Snapshot backend: %s\n", duration, cfg.Workers, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVPlayerResults writes the resolved rows in CSV format.
func writeCSVPlayerResults(w *csv.Writer, results []schema.PlayerResult, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	header := []string{
		"rank",
		"player",
		"attacks",
		"total_score",
		"average_score",
		"battle",
		"bonus",
		"extra_seconds",
		"per_wave_score",
		"max_score",
		"status",
		"candidates",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, res := range results {
		rec := []string{
			strconv.Itoa(i + 1),
			res.Player,
			strconv.Itoa(res.AttackCount),
			strconv.Itoa(res.TotalScore),
			strconv.Itoa(res.AverageScore),
			fmtFloat(res.Battle),
			strconv.Itoa(res.Bonus),
			strconv.Itoa(res.ExtraSeconds),
			strconv.Itoa(res.PerWaveScore),
			strconv.Itoa(res.MaxScore),
			contract.GetPlainLabel(res),
			formatTopCandidates(res.Candidates, 3),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONPlayerResults writes the resolved rows in JSON format.
func writeJSONPlayerResults(w io.Writer, results []schema.PlayerResult) error {
	type JSONPlayerResult struct {
		Rank   int    `json:"rank"`
		Status string `json:"status"`
		schema.PlayerResult
	}

	output := make([]JSONPlayerResult, len(results))
	for i, res := range results {
		output[i] = JSONPlayerResult{
			Rank:         i + 1,
			Status:       contract.GetPlainLabel(res),
			PlayerResult: res,
		}
	}
	return writeJSON(w, output)
}

// formatTopCandidates renders the first few candidate pairs as
// "battle/bonus" cells joined by commas.
func formatTopCandidates(candidates []schema.CandidatePair, limit int) string {
	if len(candidates) == 0 {
		return "-"
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	parts := make([]string, len(candidates))
	for i, c := range candidates {
		parts[i] = schema.PairLabel(c.Battle, c.Bonus)
	}
	return strings.Join(parts, ", ")
}
