// Package loader reads the guild data directory into engine input records.
//
// Layout: <data-dir>/<guild>/<date-digits>/boss.csv and normal.csv hold raw
// score rows; <data-dir>/<guild>/common.csv holds operator-confirmed
// overrides. Headers are matched case-insensitively against English and
// Korean aliases, since the sheets the data is exported from use both.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/guildtools/raidscope/schema"
)

// LoadOutcome is the per-file result of a load attempt. Malformed files are
// reported here and skipped; a bad file never aborts the whole load.
type LoadOutcome struct {
	Path string
	Rows int
	Err  error
}

// Bundle is everything loaded for one guild.
type Bundle struct {
	Guild     string
	Records   []schema.ScoreRecord
	Overrides []schema.ConfirmedOverride
	Outcomes  []LoadOutcome
}

// Dates returns the sorted distinct date tokens present in the records.
func (b *Bundle) Dates() []string {
	seen := make(map[string]struct{})
	for _, rec := range b.Records {
		seen[rec.Date] = struct{}{}
	}
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// ListGuilds returns the sorted guild directory names under the data dir.
func ListGuilds(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("reading data directory: %w", err)
	}
	var guilds []string
	for _, e := range entries {
		if e.IsDir() {
			guilds = append(guilds, e.Name())
		}
	}
	sort.Strings(guilds)
	return guilds, nil
}

// LoadGuildData loads every date directory and the common override file for
// one guild. Only a missing guild directory is an error; per-file problems
// land in the bundle's outcomes.
func LoadGuildData(dataDir, guild string) (*Bundle, error) {
	base := filepath.Join(dataDir, guild)
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("guild directory %q not found: %w", base, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("guild path %q is not a directory", base)
	}

	bundle := &Bundle{Guild: guild}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("reading guild directory: %w", err)
	}
	var dateDirs []string
	for _, e := range entries {
		if e.IsDir() && isDigits(e.Name()) {
			dateDirs = append(dateDirs, e.Name())
		}
	}
	sort.Strings(dateDirs)

	for _, d := range dateDirs {
		bossPath := filepath.Join(base, d, "boss.csv")
		if _, err := os.Stat(bossPath); err == nil {
			recs, n, err := loadScoreFile(bossPath, guild, d, schema.BossCategory)
			bundle.Outcomes = append(bundle.Outcomes, LoadOutcome{Path: bossPath, Rows: n, Err: err})
			bundle.Records = append(bundle.Records, recs...)
		}
		normalPath := filepath.Join(base, d, "normal.csv")
		if _, err := os.Stat(normalPath); err == nil {
			recs, n, err := loadScoreFile(normalPath, guild, d, schema.NormalCategory)
			bundle.Outcomes = append(bundle.Outcomes, LoadOutcome{Path: normalPath, Rows: n, Err: err})
			bundle.Records = append(bundle.Records, recs...)
		}
	}

	commonPath := filepath.Join(base, "common.csv")
	if _, err := os.Stat(commonPath); err == nil {
		ovs, n, err := loadOverrideFile(commonPath)
		bundle.Outcomes = append(bundle.Outcomes, LoadOutcome{Path: commonPath, Rows: n, Err: err})
		bundle.Overrides = append(bundle.Overrides, ovs...)
	}

	return bundle, nil
}

// MatchOverride picks the override that applies to a player on a date.
// A date-scoped override wins over a player-global one; when the date filter
// is the all-dates token only global overrides apply.
func MatchOverride(overrides []schema.ConfirmedOverride, player, date string) *schema.ConfirmedOverride {
	var global *schema.ConfirmedOverride
	for i := range overrides {
		ov := &overrides[i]
		if ov.Player != player {
			continue
		}
		if ov.Date == date && date != schema.AllDatesToken {
			return ov
		}
		if ov.Date == "" && global == nil {
			global = ov
		}
	}
	return global
}

// headerIndex maps normalized column names to their positions.
type headerIndex map[string]int

func indexHeader(header []string) headerIndex {
	idx := make(headerIndex, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

// pick returns the first alias present in the header, or -1.
func (h headerIndex) pick(aliases ...string) int {
	for _, a := range aliases {
		if i, ok := h[a]; ok {
			return i
		}
	}
	return -1
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// loadScoreFile parses one boss.csv or normal.csv. The first unparseable row
// aborts the file, mirroring how the sheets fail as a unit when a column
// shifts.
func loadScoreFile(path, guild, date string, category schema.EventCategory) ([]schema.ScoreRecord, int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, nil
	}

	idx := indexHeader(rows[0])
	guildCol := idx.pick("guild")
	dateCol := idx.pick("date", "날짜")
	orderCol := idx.pick("boss_order", "order")
	levelCol := idx.pick("boss_level", "level")
	rankCol := idx.pick("rank")
	nickCol := idx.pick("nickname", "닉네임")
	scoreCol := idx.pick("score", "점수")
	if nickCol < 0 || scoreCol < 0 {
		return nil, 0, fmt.Errorf("%s: missing nickname or score column", path)
	}

	var recs []schema.ScoreRecord
	for n, row := range rows[1:] {
		rec := schema.ScoreRecord{
			Guild:    guild,
			Date:     date,
			Category: category,
			SubIndex: string(schema.NormalCategory),
			Player:   field(row, nickCol),
		}
		if v := field(row, guildCol); v != "" {
			rec.Guild = v
		}
		if v := field(row, dateCol); v != "" {
			rec.Date = v
		}
		if category == schema.BossCategory {
			rec.SubIndex = field(row, orderCol)
			rec.Level = field(row, levelCol)
			if v := field(row, rankCol); v != "" {
				rank, err := strconv.Atoi(v)
				if err != nil {
					return nil, 0, fmt.Errorf("%s row %d: bad rank %q: %w", path, n+2, v, err)
				}
				rec.Rank = rank
			}
		}
		score, err := strconv.Atoi(field(row, scoreCol))
		if err != nil {
			return nil, 0, fmt.Errorf("%s row %d: bad score %q: %w", path, n+2, field(row, scoreCol), err)
		}
		if score < 0 {
			return nil, 0, fmt.Errorf("%s row %d: negative score %d", path, n+2, score)
		}
		rec.Score = score
		recs = append(recs, rec)
	}
	return recs, len(recs), nil
}

// loadOverrideFile parses common.csv into confirmed overrides. Empty cells
// stay unset; zero is a valid confirmed value and is kept distinct from
// absence via pointer fields.
func loadOverrideFile(path string) ([]schema.ConfirmedOverride, int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, nil
	}

	idx := indexHeader(rows[0])
	dateCol := idx.pick("date", "날짜")
	nickCol := idx.pick("nickname", "닉네임")
	bonusCol := idx.pick("add_score", "추가점수")
	extraCol := idx.pick("add_second", "추가초", "추가 획득 초")
	battleCol := idx.pick("battle_score", "격전지", "격전지점수")
	rangeMinCol := idx.pick("range_min")
	rangeMaxCol := idx.pick("range_max")
	excludeCol := idx.pick("exclude")
	if nickCol < 0 {
		return nil, 0, fmt.Errorf("%s: missing nickname column", path)
	}

	var ovs []schema.ConfirmedOverride
	for n, row := range rows[1:] {
		ov := schema.ConfirmedOverride{
			Player: field(row, nickCol),
			Date:   field(row, dateCol),
		}
		if ov.Player == "" {
			continue
		}
		line := n + 2
		if ov.Battle, err = parseOptFloat(field(row, battleCol)); err != nil {
			return nil, 0, fmt.Errorf("%s row %d: bad battle value: %w", path, line, err)
		}
		if ov.Bonus, err = parseOptInt(field(row, bonusCol)); err != nil {
			return nil, 0, fmt.Errorf("%s row %d: bad bonus value: %w", path, line, err)
		}
		if ov.Extra, err = parseOptInt(field(row, extraCol)); err != nil {
			return nil, 0, fmt.Errorf("%s row %d: bad extra value: %w", path, line, err)
		}
		if ov.RangeMin, err = parseOptFloat(field(row, rangeMinCol)); err != nil {
			return nil, 0, fmt.Errorf("%s row %d: bad range_min value: %w", path, line, err)
		}
		if ov.RangeMax, err = parseOptFloat(field(row, rangeMaxCol)); err != nil {
			return nil, 0, fmt.Errorf("%s row %d: bad range_max value: %w", path, line, err)
		}
		if v := field(row, excludeCol); v != "" {
			exclude, err := strconv.ParseBool(v)
			if err != nil {
				return nil, 0, fmt.Errorf("%s row %d: bad exclude value %q: %w", path, line, v, err)
			}
			ov.Exclude = exclude
		}
		ovs = append(ovs, ov)
	}
	return ovs, len(ovs), nil
}

func parseOptFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // sheets export ragged rows on occasion
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}
