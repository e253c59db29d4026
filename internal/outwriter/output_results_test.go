package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []schema.PlayerResult {
	return []schema.PlayerResult{
		{
			Player:       "aster",
			AttackCount:  2,
			TotalScore:   7400,
			AverageScore: 3700,
			Battle:       120,
			PerWaveScore: 2200,
			MaxScore:     2851200,
			Estimable:    true,
			Candidates: []schema.CandidatePair{
				{Battle: 120, Bonus: 0, Weight: 10},
				{Battle: 50, Bonus: 0, Weight: 3},
				{Battle: 200, Bonus: 0, Weight: 3},
			},
		},
		{
			Player:     "dahlia",
			TotalScore: 12000,
			Battle:     120,
			Estimable:  false,
		},
	}
}

func writerConfig(output schema.OutputMode, outputFile string) *contract.Config {
	return &contract.Config{
		Output:     output,
		OutputFile: outputFile,
		Precision:  1,
		Workers:    4,
		Rules:      schema.DefaultRules(),
	}
}

// TestWritePlayerResultsJSON round-trips the JSON output through a file.
func TestWritePlayerResultsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	cfg := writerConfig(schema.JSONOut, path)

	require.NoError(t, WritePlayerResults(sampleResults(), cfg, time.Millisecond))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []struct {
		Rank   int    `json:"rank"`
		Status string `json:"status"`
		schema.PlayerResult
	}
	require.NoError(t, json.Unmarshal(raw, &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "aster", rows[0].Player)
	assert.Equal(t, contract.InferredValue, rows[0].Status)
	assert.Equal(t, 2851200, rows[0].MaxScore)
	assert.Len(t, rows[0].Candidates, 3)

	assert.Equal(t, 2, rows[1].Rank)
	assert.Equal(t, contract.UnresolvedValue, rows[1].Status)
}

// TestWritePlayerResultsCSV checks the header and row layout.
func TestWritePlayerResultsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	cfg := writerConfig(schema.CSVOut, path)

	require.NoError(t, WritePlayerResults(sampleResults(), cfg, time.Millisecond))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"rank", "player", "attacks", "total_score", "average_score",
		"battle", "bonus", "extra_seconds", "per_wave_score", "max_score",
		"status", "candidates",
	}, rows[0])

	aster := rows[1]
	assert.Equal(t, "1", aster[0])
	assert.Equal(t, "aster", aster[1])
	assert.Equal(t, "120.0", aster[5]) // precision 1
	assert.Equal(t, contract.InferredValue, aster[10])
	assert.Equal(t, "120/0, 50/0, 200/0", aster[11])

	assert.Equal(t, "-", rows[2][11])
}

// TestWritePlayerResultsTable smoke-tests the text renderer through a file.
func TestWritePlayerResultsTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	cfg := writerConfig(schema.TextOut, path)
	cfg.Width = 120

	require.NoError(t, WritePlayerResults(sampleResults(), cfg, time.Millisecond))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, "aster")
	assert.Contains(t, out, "Showing 2 players (guild total: 19400, escalated: 0)")
}

// TestWriteGuildSummaryCSV round-trips the guild aggregate.
func TestWriteGuildSummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guild.csv")
	cfg := writerConfig(schema.CSVOut, path)

	sum := schema.GuildSummary{
		Guild:            "moonguard",
		Date:             "0315",
		TotalScore:       170000,
		EstimatedMax:     210000,
		RemainingScore:   60000,
		EstimableTotal:   150000,
		UnestimableTotal: 20000,
		Estimable:        []string{"aster", "briar"},
		Unestimable:      []string{"cedar"},
	}
	require.NoError(t, WriteGuildSummary(sum, cfg, time.Millisecond))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"moonguard", "0315", "170000", "210000", "60000", "2", "150000", "1", "20000"}, rows[1])
}

// TestFormatTopCandidates covers the empty list and the trim.
func TestFormatTopCandidates(t *testing.T) {
	assert.Equal(t, "-", formatTopCandidates(nil, 2))

	candidates := []schema.CandidatePair{
		{Battle: 131.5, Bonus: 0},
		{Battle: 150, Bonus: 500},
		{Battle: 83, Bonus: 0},
	}
	assert.Equal(t, "131.5/0, 150/500", formatTopCandidates(candidates, 2))
	assert.Equal(t, "131.5/0, 150/500, 83/0", formatTopCandidates(candidates, 5))
}

// TestCreateFloatFormatter pins the precision behavior.
func TestCreateFloatFormatter(t *testing.T) {
	assert.Equal(t, "120", createFloatFormatter(0)(120.4))
	assert.Equal(t, "57.3", createFloatFormatter(1)(57.3))
	assert.Equal(t, "57.30", createFloatFormatter(2)(57.3))
}

// TestGetMaxTableNameWidth checks the clamps around the width override.
func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name     string
		cfg      contract.Config
		expected int
	}{
		{name: "narrow terminal clamps low", cfg: contract.Config{Width: 40}, expected: 10},
		{name: "wide terminal clamps high", cfg: contract.Config{Width: 200}, expected: 40},
		{name: "mid-size terminal", cfg: contract.Config{Width: 90}, expected: 28},
		{name: "candidates column eats into the budget", cfg: contract.Config{Width: 120, ShowCandidates: true}, expected: 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getMaxTableNameWidth(&tt.cfg))
		})
	}
}
