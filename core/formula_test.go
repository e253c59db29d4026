package core

import (
	"testing"

	"github.com/guildtools/raidscope/schema"
	"github.com/stretchr/testify/assert"
)

// TestPerWaveScore checks the rounding path on the 0.1 battle grid.
func TestPerWaveScore(t *testing.T) {
	tests := []struct {
		name     string
		battle   float64
		expected int
	}{
		{name: "zero battle", battle: 0, expected: 1000},
		{name: "grid minimum", battle: 6.0, expected: 1060},
		{name: "typical battle", battle: 120.0, expected: 2200},
		{name: "tenth precision", battle: 57.3, expected: 1573},
		{name: "half step", battle: 131.5, expected: 2315},
		{name: "grid maximum", battle: 250.0, expected: 3500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PerWaveScore(tt.battle))
		})
	}
}

// TestMaxScore pins known ceilings and the truncation behavior of the
// event multiplier.
func TestMaxScore(t *testing.T) {
	r := schema.DefaultRules()

	tests := []struct {
		name     string
		battle   float64
		bonus    int
		extra    int
		expected int
	}{
		{name: "typical no purchases", battle: 120, bonus: 0, extra: 0, expected: 2851200},
		{name: "typical full extra", battle: 120, bonus: 0, extra: 120, expected: 3136320},
		{name: "tenth battle with purchases", battle: 57.3, bonus: 1500, extra: 60, expected: 2156738},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaxScore(r, tt.battle, tt.bonus, tt.extra))
		})
	}
}

// TestMaxScoreMonotonic verifies the ceiling grows with each parameter.
func TestMaxScoreMonotonic(t *testing.T) {
	r := schema.DefaultRules()
	base := MaxScore(r, 120, 0, 0)

	assert.Greater(t, MaxScore(r, 120.5, 0, 0), base)
	assert.Greater(t, MaxScore(r, 120, 500, 0), base)
	assert.Greater(t, MaxScore(r, 120, 0, 20), base)
}

func BenchmarkMaxScore(b *testing.B) {
	r := schema.DefaultRules()

	for b.Loop() {
		MaxScore(r, 131.5, 1500, 60)
	}
}
