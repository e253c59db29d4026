package core

import (
	"math"

	"github.com/guildtools/raidscope/schema"
)

// matchEvidence is the scored outcome of testing one (battle, bonus)
// hypothesis against a player's observed boss scores.
type matchEvidence struct {
	Weight  float64
	InRange bool // battle fell inside the override's plausible range
}

// scorePair computes the match weight for one candidate pair. Weights are
// layered: a human-declared plausible range dominates numeric fit, an exact
// whole-wave decomposition of a round score is strong evidence, the same
// decomposition of a non-round score could be a coincidental divisor hit,
// and a fractional-wave fit is soft corroboration only.
func scorePair(r schema.Rules, battle float64, bonus int, scores []int, exclude bool, ov *schema.ConfirmedOverride) matchEvidence {
	ev := matchEvidence{}
	if ov.HasRange() && battle >= *ov.RangeMin && battle <= *ov.RangeMax {
		ev.Weight += schema.RangeWeight
		ev.InRange = true
	}

	pws := PerWaveScore(battle)
	flat := bonus * 10
	for _, sc := range scores {
		if matchesWholeWaves(r, sc, flat, pws) {
			if exclude || sc%10 == 0 || sc%10 == 5 {
				ev.Weight += schema.ExactMatchWeight
			} else {
				ev.Weight += schema.WeakMatchWeight
			}
			continue
		}
		// Fractional-wave fallback: the raw score implies a partial-time
		// attack; keep it only when the implied elapsed time is playable.
		elapsed := (float64(sc) - float64(flat)) / float64(pws)
		if elapsed > 0 && elapsed < float64(r.MaxElapsedSeconds) {
			ev.Weight += schema.FractionalWeight
		}
	}
	return ev
}

// matchesWholeWaves reports whether an observed score decomposes into the
// flat bonus plus a whole number of waves, under either de-scaling
// hypothesis (event multiplier applied or not) and a one-point rounding
// offset in either direction. The offsets absorb the integer truncation the
// scaling step introduces upstream.
func matchesWholeWaves(r schema.Rules, score, flat, pws int) bool {
	for _, mult := range []float64{r.ScalingMultiplier, 1.0} {
		descaled := int(math.Round(float64(score) / mult))
		for _, offset := range []int{-1, 0, 1} {
			raw := descaled + offset
			diff := raw - flat
			if diff >= 0 && diff%pws == 0 {
				return true
			}
		}
	}
	return false
}
