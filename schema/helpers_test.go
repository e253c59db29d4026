package schema

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSnapBattle pins the 0.1 grid rounding.
func TestSnapBattle(t *testing.T) {
	assert.Equal(t, 120.0, SnapBattle(120.0))
	assert.Equal(t, 57.3, SnapBattle(57.34))
	assert.Equal(t, 57.4, SnapBattle(57.35))
	// Accumulated step error snaps back onto the grid
	assert.Equal(t, 131.5, SnapBattle(6.0+251*0.5))
}

// TestFormatBattle checks the trailing-zero trim.
func TestFormatBattle(t *testing.T) {
	tests := []struct {
		battle   float64
		expected string
	}{
		{120, "120"},
		{57.3, "57.3"},
		{131.5, "131.5"},
		{6, "6"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatBattle(tt.battle))
	}
}

// TestPairLabel checks the compact cell rendering.
func TestPairLabel(t *testing.T) {
	assert.Equal(t, "120/0", PairLabel(120, 0))
	assert.Equal(t, "57.3/1500", PairLabel(57.3, 1500))
}

// TestDefaultRulesSanity guards the parameter grids the search depends on.
func TestDefaultRulesSanity(t *testing.T) {
	r := DefaultRules()

	assert.Less(t, r.BattleMin, r.BattleMax)
	assert.Less(t, r.BattleMax, r.EscalationCeiling)
	assert.Greater(t, r.BattleStep, r.RefinedStep)
	assert.Greater(t, r.MaxCandidates, 0)

	assert.True(t, sort.IntsAreSorted(r.BonusTiers))
	assert.True(t, sort.IntsAreSorted(r.ExtraSeconds))
	assert.Equal(t, 0, r.BonusTiers[0])
	assert.Equal(t, 0, r.ExtraSeconds[0])
}
