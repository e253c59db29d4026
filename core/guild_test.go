package core

import (
	"testing"

	"github.com/guildtools/raidscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildGuildSummary checks the estimable/unestimable partition and the
// remaining-score headroom.
func TestBuildGuildSummary(t *testing.T) {
	results := []schema.PlayerResult{
		{Player: "aster", TotalScore: 100000, MaxScore: 150000, Estimable: true},
		{Player: "briar", TotalScore: 50000, MaxScore: 60000, Estimable: true},
		{Player: "cedar", TotalScore: 20000, Estimable: false},
	}

	sum := BuildGuildSummary("moonguard", "0315", results)

	assert.Equal(t, "moonguard", sum.Guild)
	assert.Equal(t, "0315", sum.Date)
	assert.Equal(t, 170000, sum.TotalScore)
	assert.Equal(t, 150000, sum.EstimableTotal)
	assert.Equal(t, 20000, sum.UnestimableTotal)
	assert.Equal(t, 210000, sum.EstimatedMax)
	assert.Equal(t, 60000, sum.RemainingScore)
	assert.Equal(t, []string{"aster", "briar"}, sum.Estimable)
	assert.Equal(t, []string{"cedar"}, sum.Unestimable)
}

// TestBuildGuildSummaryNoHeadroom ensures an exhausted guild reports zero
// remaining rather than a negative number.
func TestBuildGuildSummaryNoHeadroom(t *testing.T) {
	results := []schema.PlayerResult{
		{Player: "aster", TotalScore: 200000, MaxScore: 150000, Estimable: true},
	}

	sum := BuildGuildSummary("moonguard", "all", results)
	assert.Zero(t, sum.RemainingScore)
}

// TestBuildRemainingRows pins the time-budget math for one player.
func TestBuildRemainingRows(t *testing.T) {
	r := schema.DefaultRules()
	results := []schema.PlayerResult{
		{
			Player:       "aster",
			Battle:       100,
			PerWaveScore: 2000,
			Bonus:        500,
			ExtraSeconds: 0,
			TotalScore:   30000,
			MaxScore:     100000,
			Estimable:    true,
		},
		{Player: "cedar", TotalScore: 5000, Estimable: false},
	}
	records := []schema.ScoreRecord{
		// Bonus-only attack: no wave time consumed
		{Player: "aster", Category: schema.BossCategory, Score: 5000},
		{Player: "aster", Category: schema.BossCategory, Score: 7000},
		{Player: "cedar", Category: schema.BossCategory, Score: 5000},
	}

	rows := BuildRemainingRows(r, results, records)
	require.Len(t, rows, 1) // unestimable players carry no projection

	row := rows[0]
	assert.Equal(t, "aster", row.Player)
	assert.Equal(t, 70000, row.RemainingScore)
	// 1200s budget minus one timed attack at 100s leaves 11 full attacks
	assert.Equal(t, 11, row.RemainingAttacks)
	// (70000 - 11*5000) / 2000 = 7.5, rounded
	assert.Equal(t, 8, row.RemainingSeconds)
}

// TestBuildRemainingRowsOrdering verifies descending remaining score with
// name tiebreak.
func TestBuildRemainingRowsOrdering(t *testing.T) {
	r := schema.DefaultRules()
	results := []schema.PlayerResult{
		{Player: "zed", Battle: 120, PerWaveScore: 2200, TotalScore: 1000, MaxScore: 5000, Estimable: true},
		{Player: "amy", Battle: 120, PerWaveScore: 2200, TotalScore: 1000, MaxScore: 5000, Estimable: true},
		{Player: "max", Battle: 120, PerWaveScore: 2200, TotalScore: 1000, MaxScore: 9000, Estimable: true},
	}

	rows := BuildRemainingRows(r, results, nil)
	require.Len(t, rows, 3)
	assert.Equal(t, "max", rows[0].Player)
	assert.Equal(t, "amy", rows[1].Player)
	assert.Equal(t, "zed", rows[2].Player)
}
