package core

import (
	"fmt"
	"testing"

	"github.com/guildtools/raidscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bossRecord(player string, score int) schema.ScoreRecord {
	return schema.ScoreRecord{Player: player, Category: schema.BossCategory, Score: score}
}

func normalRecord(player string, score int) schema.ScoreRecord {
	return schema.ScoreRecord{Player: player, Category: schema.NormalCategory, Score: score}
}

// TestResolvePlayerInferred covers the plain evidence-backed path.
func TestResolvePlayerInferred(t *testing.T) {
	r := schema.DefaultRules()
	in := PlayerInput{
		Player:  "aster",
		Records: []schema.ScoreRecord{bossRecord("aster", 4400), bossRecord("aster", 3000)},
	}

	res := ResolvePlayer(r, in)

	assert.Equal(t, "aster", res.Player)
	assert.Equal(t, 2, res.AttackCount)
	assert.Equal(t, 7400, res.TotalScore)
	assert.Equal(t, 3700, res.AverageScore)
	assert.Equal(t, 120.0, res.Battle)
	assert.Equal(t, 0, res.Bonus)
	assert.Equal(t, 0, res.ExtraSeconds)
	assert.Equal(t, 2200, res.PerWaveScore)
	assert.True(t, res.Estimable)
	assert.False(t, res.Escalated)
	assert.GreaterOrEqual(t, res.MaxScore, res.TotalScore)
	assert.NotEmpty(t, res.Candidates)
}

// TestResolvePlayerConfirmedPair checks that a fully confirmed override wins
// over anything inference would prefer.
func TestResolvePlayerConfirmedPair(t *testing.T) {
	r := schema.DefaultRules()
	in := PlayerInput{
		Player:  "briar",
		Records: []schema.ScoreRecord{bossRecord("briar", 4400)},
		Override: &schema.ConfirmedOverride{
			Player: "briar",
			Battle: floatPtr(100),
			Bonus:  intPtr(500),
		},
	}

	res := ResolvePlayer(r, in)

	assert.Equal(t, 100.0, res.Battle)
	assert.Equal(t, 500, res.Bonus)
	assert.Equal(t, 2000, res.PerWaveScore)
	assert.True(t, res.Confirmed.Battle)
	assert.True(t, res.Confirmed.Bonus)
	assert.False(t, res.Confirmed.Extra)
	assert.True(t, res.Estimable)
	assert.False(t, res.Escalated)
}

// TestResolvePlayerConfirmedExtra verifies a confirmed extra-seconds value is
// a hard filter, not a starting point.
func TestResolvePlayerConfirmedExtra(t *testing.T) {
	r := schema.DefaultRules()
	in := PlayerInput{
		Player:  "cedar",
		Records: []schema.ScoreRecord{bossRecord("cedar", 4400)},
		Override: &schema.ConfirmedOverride{
			Player: "cedar",
			Extra:  intPtr(60),
		},
	}

	res := ResolvePlayer(r, in)

	// 0 extra seconds would already cover the total, but 60 is confirmed
	assert.Equal(t, 60, res.ExtraSeconds)
	assert.True(t, res.Confirmed.Extra)
}

// TestResolvePlayerNeutralFallback covers a player with no boss evidence.
func TestResolvePlayerNeutralFallback(t *testing.T) {
	r := schema.DefaultRules()
	in := PlayerInput{
		Player:  "dahlia",
		Records: []schema.ScoreRecord{normalRecord("dahlia", 12000)},
	}

	res := ResolvePlayer(r, in)

	assert.Equal(t, r.TypicalBattle, res.Battle)
	assert.Equal(t, 0, res.Bonus)
	assert.Equal(t, 0, res.ExtraSeconds)
	assert.False(t, res.Estimable)
	assert.False(t, res.Escalated)
	assert.Empty(t, res.Candidates)
}

// TestResolvePlayerConfirmedBattleOnly ensures a confirmed battle keeps a
// player estimable even without boss evidence.
func TestResolvePlayerConfirmedBattleOnly(t *testing.T) {
	r := schema.DefaultRules()
	in := PlayerInput{
		Player:  "elm",
		Records: []schema.ScoreRecord{normalRecord("elm", 12000)},
		Override: &schema.ConfirmedOverride{
			Player: "elm",
			Battle: floatPtr(57.3),
		},
	}

	res := ResolvePlayer(r, in)

	assert.Equal(t, 57.3, res.Battle)
	assert.Equal(t, 1573, res.PerWaveScore)
	assert.True(t, res.Estimable)
}

// TestResolvePlayerEscalation covers totals no modeled ceiling can reach.
func TestResolvePlayerEscalation(t *testing.T) {
	r := schema.DefaultRules()

	t.Run("unconfirmed battle is stepped up to the ceiling", func(t *testing.T) {
		in := PlayerInput{
			Player: "fennel",
			Records: []schema.ScoreRecord{
				bossRecord("fennel", 4400),
				normalRecord("fennel", 20000000),
			},
		}

		res := ResolvePlayer(r, in)

		assert.True(t, res.Escalated)
		assert.GreaterOrEqual(t, res.Battle, r.EscalationCeiling)
	})

	t.Run("confirmed battle is never stepped", func(t *testing.T) {
		in := PlayerInput{
			Player:  "gorse",
			Records: []schema.ScoreRecord{normalRecord("gorse", 20000000)},
			Override: &schema.ConfirmedOverride{
				Player: "gorse",
				Battle: floatPtr(6.0),
				Bonus:  intPtr(0),
				Extra:  intPtr(0),
			},
		}

		res := ResolvePlayer(r, in)

		assert.True(t, res.Escalated)
		assert.Equal(t, 6.0, res.Battle)
		assert.Less(t, res.MaxScore, res.TotalScore)
	})
}

// TestResolvePlayerFeasibility asserts the core invariant: outside
// escalation, the projected ceiling covers the observed total.
func TestResolvePlayerFeasibility(t *testing.T) {
	r := schema.DefaultRules()
	scoreSets := [][]int{
		{2500},
		{2500, 3080, 3660},
		{4400, 7128, 3000},
		{1060, 2120, 3180},
	}

	for i, scores := range scoreSets {
		t.Run(fmt.Sprintf("set %d", i), func(t *testing.T) {
			var records []schema.ScoreRecord
			for _, s := range scores {
				records = append(records, bossRecord("p", s))
			}
			res := ResolvePlayer(r, PlayerInput{Player: "p", Records: records})
			if !res.Escalated {
				assert.GreaterOrEqual(t, res.MaxScore, res.TotalScore)
			}
		})
	}
}

// TestResolveAll checks worker-pool resolution and output ordering.
func TestResolveAll(t *testing.T) {
	r := schema.DefaultRules()
	inputs := []PlayerInput{
		{Player: "low", Records: []schema.ScoreRecord{bossRecord("low", 2500)}},
		{Player: "high", Records: []schema.ScoreRecord{bossRecord("high", 4400), bossRecord("high", 4400)}},
		{Player: "alpha", Records: []schema.ScoreRecord{bossRecord("alpha", 2500)}},
	}

	results := ResolveAll(r, inputs, 4)
	require.Len(t, results, 3)

	assert.Equal(t, "high", results[0].Player)
	// Equal totals fall back to name order
	assert.Equal(t, "alpha", results[1].Player)
	assert.Equal(t, "low", results[2].Player)
}

// TestResolveAllWorkerFloor ensures a nonsense worker count still resolves.
func TestResolveAllWorkerFloor(t *testing.T) {
	r := schema.DefaultRules()
	inputs := []PlayerInput{
		{Player: "solo", Records: []schema.ScoreRecord{bossRecord("solo", 4400)}},
	}

	results := ResolveAll(r, inputs, 0)
	require.Len(t, results, 1)
	assert.Equal(t, "solo", results[0].Player)
}

func BenchmarkResolvePlayer(b *testing.B) {
	r := schema.DefaultRules()
	in := PlayerInput{
		Player: "bench",
		Records: []schema.ScoreRecord{
			bossRecord("bench", 2500),
			bossRecord("bench", 3080),
			bossRecord("bench", 3660),
		},
	}

	for b.Loop() {
		ResolvePlayer(r, in)
	}
}
