package core

import (
	"sort"
	"sync"

	"github.com/guildtools/raidscope/schema"
)

// PlayerInput bundles everything the resolution policy needs for one player.
type PlayerInput struct {
	Player   string
	Records  []schema.ScoreRecord
	Override *schema.ConfirmedOverride
}

// ResolvePlayer picks one final (battle, bonus, extra-seconds) triple for a
// player. Confirmed override fields are locked and never replaced by
// inference; the remaining fields come from the ranked candidate list via a
// feasibility sweep against the observed total. The policy never fails:
// sparse or contradictory data degrades to escalation or the neutral
// fallback, flagged accordingly.
func ResolvePlayer(r schema.Rules, in PlayerInput) schema.PlayerResult {
	res := schema.PlayerResult{Player: in.Player}
	var bossScores []int
	for _, rec := range in.Records {
		res.AttackCount++
		res.TotalScore += rec.Score
		if rec.Category == schema.BossCategory {
			bossScores = append(bossScores, rec.Score)
		}
	}
	if res.AttackCount > 0 {
		res.AverageScore = res.TotalScore / res.AttackCount
	}

	ov := in.Override
	var confBattle *float64
	var confBonus, confExtra *int
	if ov != nil {
		confBattle, confBonus, confExtra = ov.Battle, ov.Bonus, ov.Extra
		res.Confirmed = schema.ConfirmedFields{
			Battle: confBattle != nil,
			Bonus:  confBonus != nil,
			Extra:  confExtra != nil,
		}
	}

	res.Candidates = SearchCandidates(r, bossScores, ov)
	working, synthetic := workingSet(r, res.Candidates, confBattle, confBonus)
	res.Estimable = !synthetic || confBattle != nil

	extras := r.ExtraSeconds
	if confExtra != nil {
		extras = []int{*confExtra}
	}

	// Feasibility sweep: cheapest extra-seconds first, candidates in rank
	// order, first combination whose ceiling covers the observed total wins.
	for _, extra := range extras {
		for _, pair := range working {
			if MaxScore(r, pair.Battle, pair.Bonus, extra) >= res.TotalScore {
				res.Battle = pair.Battle
				res.Bonus = pair.Bonus
				res.ExtraSeconds = extra
				res.PerWaveScore = PerWaveScore(res.Battle)
				res.MaxScore = MaxScore(r, res.Battle, res.Bonus, extra)
				return res
			}
		}
	}

	// Every modeled ceiling fell short of the observed total. A total can
	// never exceed its true ceiling, so the battle rating was under-estimated;
	// step it up until the ceiling covers the total or the hard cap hits.
	best := working[0]
	res.Battle = best.Battle
	res.Bonus = best.Bonus
	res.ExtraSeconds = extras[0]
	res.Escalated = true

	step := r.BattleStep
	if ov != nil && ov.Exclude {
		step = r.RefinedStep
	}
	if confBattle == nil {
		for res.Battle < r.EscalationCeiling &&
			MaxScore(r, res.Battle, res.Bonus, res.ExtraSeconds) < res.TotalScore {
			res.Battle += step
		}
	}
	res.PerWaveScore = PerWaveScore(res.Battle)
	res.MaxScore = MaxScore(r, res.Battle, res.Bonus, res.ExtraSeconds)
	return res
}

// workingSet narrows the ranked candidates to pairs consistent with the
// confirmed fields. An empty result falls back to a single synthetic pair
// built from confirmed values with neutral defaults for the rest; the
// synthetic flag lets the caller distinguish evidence-backed resolutions.
func workingSet(r schema.Rules, candidates []schema.CandidatePair, confBattle *float64, confBonus *int) (pairs []schema.CandidatePair, synthetic bool) {
	if confBattle != nil && confBonus != nil {
		return []schema.CandidatePair{{Battle: *confBattle, Bonus: *confBonus}}, false
	}
	for _, c := range candidates {
		if confBattle != nil && c.Battle != *confBattle {
			continue
		}
		if confBonus != nil && c.Bonus != *confBonus {
			continue
		}
		pairs = append(pairs, c)
	}
	if len(pairs) > 0 {
		return pairs, false
	}
	fallback := schema.CandidatePair{Battle: r.TypicalBattle, Bonus: 0}
	if confBattle != nil {
		fallback.Battle = *confBattle
	}
	if confBonus != nil {
		fallback.Bonus = *confBonus
	}
	return []schema.CandidatePair{fallback}, true
}

// ResolveAll resolves every player concurrently over a bounded worker pool
// and returns results ordered by total score descending, player ascending.
func ResolveAll(r schema.Rules, inputs []PlayerInput, workers int) []schema.PlayerResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]schema.PlayerResult, len(inputs))
	idxCh := make(chan int, len(inputs))
	for i := range inputs {
		idxCh <- i
	}
	close(idxCh)

	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for i := range idxCh {
				results[i] = ResolvePlayer(r, inputs[i])
			}
		})
	}
	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].TotalScore != results[j].TotalScore {
			return results[i].TotalScore > results[j].TotalScore
		}
		return results[i].Player < results[j].Player
	})
	return results
}
