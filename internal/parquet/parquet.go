// Package parquet provides data structures and functions for exporting
// snapshot data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/guildtools/raidscope/schema"
	"github.com/parquet-go/parquet-go"
)

// RunRow represents a single resolution run with metadata.
// This struct maps to the raidscope_runs database table.
type RunRow struct {
	RunID        int64      `parquet:"run_id,snappy"`
	StartedAt    time.Time  `parquet:"started_at,snappy"`
	FinishedAt   *time.Time `parquet:"finished_at,optional,snappy"`
	Guild        string     `parquet:"guild,snappy"`
	EventDate    string     `parquet:"event_date,snappy"`
	TotalPlayers int32      `parquet:"total_players,snappy"`
	ConfigParams *string    `parquet:"config_params,optional,snappy"`
}

// PlayerRow represents one resolved player inside a run.
// This struct maps to the raidscope_player_rows database table.
type PlayerRow struct {
	RunID        int64     `parquet:"run_id,snappy"`
	Player       string    `parquet:"player,snappy"`
	ResolvedAt   time.Time `parquet:"resolved_at,snappy"`
	AttackCount  int32     `parquet:"attack_count,snappy"`
	TotalScore   int64     `parquet:"total_score,snappy"`
	AverageScore int64     `parquet:"average_score,snappy"`
	Battle       float64   `parquet:"battle,snappy"`
	Bonus        int32     `parquet:"bonus,snappy"`
	ExtraSeconds int32     `parquet:"extra_seconds,snappy"`
	PerWaveScore int32     `parquet:"per_wave_score,snappy"`
	MaxScore     int64     `parquet:"max_score,snappy"`
	Estimable    bool      `parquet:"estimable,snappy"`
	Escalated    bool      `parquet:"escalated,snappy"`
}

// WriteRunsParquet writes a slice of RunRow structs to a Parquet file.
func WriteRunsParquet(data []RunRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the RunRow struct tags
	writer := parquet.NewGenericWriter[RunRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WritePlayerRowsParquet writes a slice of PlayerRow structs to a Parquet file.
func WritePlayerRowsParquet(data []PlayerRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[PlayerRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ConvertRunRecords converts schema.RunRecord to RunRow for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []RunRow {
	result := make([]RunRow, len(records))
	for i, record := range records {
		result[i] = RunRow{
			RunID:        record.RunID,
			StartedAt:    record.StartedAt,
			FinishedAt:   record.FinishedAt,
			Guild:        record.Guild,
			EventDate:    record.EventDate,
			TotalPlayers: record.TotalPlayers,
			ConfigParams: record.ConfigParams,
		}
	}
	return result
}

// ConvertPlayerRowRecords converts schema.PlayerRowRecord to PlayerRow for Parquet export.
func ConvertPlayerRowRecords(records []schema.PlayerRowRecord) []PlayerRow {
	result := make([]PlayerRow, len(records))
	for i, record := range records {
		result[i] = PlayerRow{
			RunID:        record.RunID,
			Player:       record.Player,
			ResolvedAt:   record.ResolvedAt,
			AttackCount:  record.AttackCount,
			TotalScore:   record.TotalScore,
			AverageScore: record.AverageScore,
			Battle:       record.Battle,
			Bonus:        record.Bonus,
			ExtraSeconds: record.ExtraSeconds,
			PerWaveScore: record.PerWaveScore,
			MaxScore:     record.MaxScore,
			Estimable:    record.Estimable,
			Escalated:    record.Escalated,
		}
	}
	return result
}
