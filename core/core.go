package core

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/internal/loader"
	"github.com/guildtools/raidscope/internal/outwriter"
	"github.com/guildtools/raidscope/schema"
)

// ExecutorFunc defines the function signature for executing commands.
type ExecutorFunc func(cfg *contract.Config) error

// ExecuteResults resolves every player for the selected guild and date,
// persists the run to the snapshot store, and prints the results. It serves
// as the main entry point for the 'results' command.
func ExecuteResults(cfg *contract.Config, store contract.SnapshotStore) error {
	start := time.Now()
	outwriter.LogHeader(cfg, "🔎", "Resolving guild %s (date: %s)", cfg.Guild, cfg.Date)
	results, err := GetPlayerResults(cfg, store)
	if err != nil {
		return err
	}
	return outwriter.WritePlayerResults(results, cfg, time.Since(start))
}

// GetPlayerResults resolves every player for the selected guild and date and
// returns the rows without printing. The run is still persisted when a store
// is provided. Used by the MCP server.
func GetPlayerResults(cfg *contract.Config, store contract.SnapshotStore) ([]schema.PlayerResult, error) {
	start := time.Now()
	inputs, _, err := loadEngineInputs(cfg)
	if err != nil {
		return nil, err
	}
	results := ResolveAll(cfg.Rules, inputs, cfg.Workers)
	if store != nil {
		if err := persistRun(cfg, store, start, results); err != nil {
			contract.LogWarn("saving snapshot run", err)
		}
	}
	if len(results) > cfg.ResultLimit {
		results = results[:cfg.ResultLimit]
	}
	if !cfg.ShowCandidates {
		for i := range results {
			results[i].Candidates = nil
		}
	}
	return results, nil
}

// GetGuildSummary resolves the selected guild and date and returns the
// aggregate without printing. Used by the MCP server.
func GetGuildSummary(cfg *contract.Config) (schema.GuildSummary, error) {
	inputs, _, err := loadEngineInputs(cfg)
	if err != nil {
		return schema.GuildSummary{}, err
	}
	results := ResolveAll(cfg.Rules, inputs, cfg.Workers)
	return BuildGuildSummary(cfg.Guild, cfg.Date, results), nil
}

// ExecuteGuild aggregates the selected date into guild-level totals.
func ExecuteGuild(cfg *contract.Config) error {
	start := time.Now()
	inputs, _, err := loadEngineInputs(cfg)
	if err != nil {
		return err
	}
	results := ResolveAll(cfg.Rules, inputs, cfg.Workers)
	sum := BuildGuildSummary(cfg.Guild, cfg.Date, results)
	return outwriter.WriteGuildSummary(sum, cfg, time.Since(start))
}

// ExecuteRemaining estimates per-player remaining capacity for the selected date.
func ExecuteRemaining(cfg *contract.Config) error {
	start := time.Now()
	inputs, records, err := loadEngineInputs(cfg)
	if err != nil {
		return err
	}
	results := ResolveAll(cfg.Rules, inputs, cfg.Workers)
	rows := BuildRemainingRows(cfg.Rules, results, records)
	if len(rows) > cfg.ResultLimit {
		rows = rows[:cfg.ResultLimit]
	}
	return outwriter.WriteRemainingRows(rows, cfg, time.Since(start))
}

// ExecuteCompare builds the player-by-date parameter comparison matrix.
// The date filter is ignored here; the matrix always spans every date the
// guild has data for.
func ExecuteCompare(cfg *contract.Config) error {
	start := time.Now()
	bundle, err := loadBundle(cfg)
	if err != nil {
		return err
	}
	matrix := BuildComparisonMatrix(cfg.Rules, bundle)
	return outwriter.WriteComparisonMatrix(matrix, cfg, time.Since(start))
}

// BuildComparisonMatrix renders, per player and date, either the confirmed
// battle/bonus pair or the top inferred pairs, "-" when the player has no
// records that day and "unresolved" when inference finds nothing.
func BuildComparisonMatrix(r schema.Rules, bundle *loader.Bundle) schema.ComparisonMatrix {
	matrix := schema.ComparisonMatrix{Dates: bundle.Dates()}

	byPlayerDate := make(map[string]map[string][]int)
	for _, rec := range bundle.Records {
		if rec.Category != schema.BossCategory {
			continue
		}
		if byPlayerDate[rec.Player] == nil {
			byPlayerDate[rec.Player] = make(map[string][]int)
		}
		byPlayerDate[rec.Player][rec.Date] = append(byPlayerDate[rec.Player][rec.Date], rec.Score)
	}
	players := make([]string, 0, len(byPlayerDate))
	for p := range byPlayerDate {
		players = append(players, p)
	}
	sort.Strings(players)

	for _, player := range players {
		row := schema.ComparisonRow{Player: player}
		for _, date := range matrix.Dates {
			scores := byPlayerDate[player][date]
			if len(scores) == 0 {
				row.Cells = append(row.Cells, "-")
				continue
			}
			ov := loader.MatchOverride(bundle.Overrides, player, date)
			if ov != nil && ov.Battle != nil {
				bonus := 0
				if ov.Bonus != nil {
					bonus = *ov.Bonus
				}
				row.Cells = append(row.Cells, schema.PairLabel(*ov.Battle, bonus))
				continue
			}
			candidates := SearchCandidates(r, scores, ov)
			if len(candidates) == 0 {
				row.Cells = append(row.Cells, "unresolved")
				continue
			}
			if len(candidates) > 2 {
				candidates = candidates[:2]
			}
			cell := schema.PairLabel(candidates[0].Battle, candidates[0].Bonus)
			if len(candidates) == 2 {
				cell += ", " + schema.PairLabel(candidates[1].Battle, candidates[1].Bonus)
			}
			row.Cells = append(row.Cells, cell)
		}
		matrix.Rows = append(matrix.Rows, row)
	}
	return matrix
}

// loadBundle loads the guild's data directory and warns about any files
// that failed to parse.
func loadBundle(cfg *contract.Config) (*loader.Bundle, error) {
	if cfg.Guild == "" {
		return nil, errors.New("guild is required (pass it as the first argument)")
	}
	bundle, err := loader.LoadGuildData(cfg.DataDir, cfg.Guild)
	if err != nil {
		return nil, err
	}
	for _, out := range bundle.Outcomes {
		if out.Err != nil {
			contract.LogWarn("skipping unreadable file", out.Err)
		}
	}
	return bundle, nil
}

// loadEngineInputs loads the bundle, applies the date filter, and groups the
// surviving records into per-player engine inputs with matching overrides.
func loadEngineInputs(cfg *contract.Config) ([]PlayerInput, []schema.ScoreRecord, error) {
	bundle, err := loadBundle(cfg)
	if err != nil {
		return nil, nil, err
	}

	var filtered []schema.ScoreRecord
	for _, rec := range bundle.Records {
		if cfg.Date != schema.AllDatesToken && rec.Date != cfg.Date {
			continue
		}
		filtered = append(filtered, rec)
	}

	byPlayer := make(map[string][]schema.ScoreRecord)
	for _, rec := range filtered {
		byPlayer[rec.Player] = append(byPlayer[rec.Player], rec)
	}
	players := make([]string, 0, len(byPlayer))
	for p := range byPlayer {
		players = append(players, p)
	}
	sort.Strings(players)

	inputs := make([]PlayerInput, 0, len(players))
	for _, p := range players {
		inputs = append(inputs, PlayerInput{
			Player:   p,
			Records:  byPlayer[p],
			Override: loader.MatchOverride(bundle.Overrides, p, cfg.Date),
		})
	}
	return inputs, filtered, nil
}

// persistRun records one resolution run and its player rows.
func persistRun(cfg *contract.Config, store contract.SnapshotStore, start time.Time, results []schema.PlayerResult) error {
	now := time.Now()
	params := fmt.Sprintf("date=%s workers=%d limit=%d", cfg.Date, cfg.Workers, cfg.ResultLimit)
	run := schema.RunRecord{
		RunID:        now.UnixNano(),
		StartedAt:    start,
		FinishedAt:   &now,
		Guild:        cfg.Guild,
		EventDate:    cfg.Date,
		TotalPlayers: int32(len(results)),
		ConfigParams: &params,
	}
	rows := make([]schema.PlayerRowRecord, 0, len(results))
	for _, res := range results {
		rows = append(rows, schema.PlayerRowRecord{
			RunID:        run.RunID,
			Player:       res.Player,
			ResolvedAt:   now,
			AttackCount:  int32(res.AttackCount),
			TotalScore:   int64(res.TotalScore),
			AverageScore: int64(res.AverageScore),
			Battle:       res.Battle,
			Bonus:        int32(res.Bonus),
			ExtraSeconds: int32(res.ExtraSeconds),
			PerWaveScore: int32(res.PerWaveScore),
			MaxScore:     int64(res.MaxScore),
			Estimable:    res.Estimable,
			Escalated:    res.Escalated,
		})
	}
	return store.SaveRun(run, rows)
}
