// Package core implements the parameter-inference engine: formula math,
// evidence scoring, candidate search and the resolution policy.
package core

import (
	"math"

	"github.com/guildtools/raidscope/schema"
)

// PerWaveScore returns the score one cleared wave awards for a battle rating.
// Rounds battle*10 before widening so a 0.1-grid value like 57.3 maps to 573,
// not the 572 a bare float truncation would produce.
func PerWaveScore(battle float64) int {
	return 1000 + int(math.Round(battle*10))
}

// MaxScore returns the ceiling a player's cumulative score cannot exceed for
// the given parameter triple. Waves accrue one per second over the base
// duration plus purchased extra seconds; the flat bonus lands once at ten
// points per tier unit; the event multiplier scales the whole total, with the
// product truncated to an integer.
func MaxScore(r schema.Rules, battle float64, bonus, extraSeconds int) int {
	raw := (r.BaseSeconds+extraSeconds)*PerWaveScore(battle) + bonus*10
	return int(float64(raw) * r.ScalingMultiplier)
}
