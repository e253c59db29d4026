package core

import (
	"math"
	"sort"

	"github.com/guildtools/raidscope/schema"
)

// SearchCandidates enumerates the full (battle x bonus) grid, scores every
// pair against the player's observed boss scores, and returns a ranked,
// de-duplicated list capped at r.MaxCandidates. The override (may be nil)
// supplies the plausible range and the exclude flag; confirmed battle/bonus
// values are handled later by the resolution policy, not here.
//
// A pair qualifies when it contributed evidence beyond the range base weight,
// or when it sits outside the range but still accumulated any weight at all
// (kept as a low-ranked fallback).
func SearchCandidates(r schema.Rules, scores []int, ov *schema.ConfirmedOverride) []schema.CandidatePair {
	if len(scores) == 0 {
		return nil
	}

	step := r.BattleStep
	exclude := false
	if ov != nil && ov.Exclude {
		step = r.RefinedStep
		exclude = true
	}

	var pairs []schema.CandidatePair
	steps := int(math.Round((r.BattleMax - r.BattleMin) / step))
	for i := 0; i <= steps; i++ {
		// Snap to the grid each iteration instead of accumulating the step,
		// so 0.1-grid values stay exact enough for PerWaveScore rounding.
		battle := schema.SnapBattle(r.BattleMin + float64(i)*step)
		for _, bonus := range r.BonusTiers {
			ev := scorePair(r, battle, bonus, scores, exclude, ov)
			qualified := (ev.InRange && ev.Weight > schema.RangeWeight) ||
				(!ev.InRange && ev.Weight > 0)
			if qualified {
				pairs = append(pairs, schema.CandidatePair{Battle: battle, Bonus: bonus, Weight: ev.Weight})
			}
		}
	}

	rankPairs(r, pairs)
	pairs = dedupePairs(pairs)
	if len(pairs) > r.MaxCandidates {
		pairs = pairs[:r.MaxCandidates]
	}
	return pairs
}

// rankKey orders candidates: raw weight, nudged toward the structurally
// common zero-bonus case, damped away from implausibly extreme battle values
// so distance only breaks near-ties.
func rankKey(r schema.Rules, p schema.CandidatePair) float64 {
	key := p.Weight
	if p.Bonus == 0 {
		key += schema.ZeroBonusBias
	}
	return key - schema.DistanceDamping*math.Abs(p.Battle-r.TypicalBattle)
}

func rankPairs(r schema.Rules, pairs []schema.CandidatePair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		ki, kj := rankKey(r, pairs[i]), rankKey(r, pairs[j])
		if ki != kj {
			return ki > kj
		}
		di := math.Abs(pairs[i].Battle - r.TypicalBattle)
		dj := math.Abs(pairs[j].Battle - r.TypicalBattle)
		if di != dj {
			return di < dj
		}
		if pairs[i].Battle != pairs[j].Battle {
			return pairs[i].Battle < pairs[j].Battle
		}
		return pairs[i].Bonus < pairs[j].Bonus
	})
}

// dedupePairs drops repeated (battle, bonus) identities, keeping the
// first-seen (highest-ranked) entry.
func dedupePairs(pairs []schema.CandidatePair) []schema.CandidatePair {
	type identity struct {
		battle float64
		bonus  int
	}
	seen := make(map[identity]struct{}, len(pairs))
	out := pairs[:0]
	for _, p := range pairs {
		id := identity{p.Battle, p.Bonus}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, p)
	}
	return out
}
