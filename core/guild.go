package core

import (
	"math"
	"sort"

	"github.com/guildtools/raidscope/schema"
)

// BuildGuildSummary aggregates one date's resolutions into guild-level
// totals. The estimated max only sums over estimable players; unestimable
// players still count toward the raw guild total.
func BuildGuildSummary(guild, date string, results []schema.PlayerResult) schema.GuildSummary {
	sum := schema.GuildSummary{Guild: guild, Date: date}
	for _, res := range results {
		sum.TotalScore += res.TotalScore
		if res.Estimable {
			sum.Estimable = append(sum.Estimable, res.Player)
			sum.EstimableTotal += res.TotalScore
			sum.EstimatedMax += res.MaxScore
		} else {
			sum.Unestimable = append(sum.Unestimable, res.Player)
			sum.UnestimableTotal += res.TotalScore
		}
	}
	if remaining := sum.EstimatedMax - sum.EstimableTotal; remaining > 0 {
		sum.RemainingScore = remaining
	}
	return sum
}

// BuildRemainingRows estimates, per estimable player, how much score is still
// reachable on the date: remaining ceiling headroom, attacks the unused time
// still allows, and the seconds those remaining points represent. An attack
// whose score equals the flat bonus consumed no wave time and is excluded
// from the time-used estimate. Rows come back sorted by remaining score
// descending.
func BuildRemainingRows(r schema.Rules, results []schema.PlayerResult, records []schema.ScoreRecord) []schema.RemainingRow {
	byPlayer := make(map[string]schema.PlayerResult, len(results))
	for _, res := range results {
		byPlayer[res.Player] = res
	}
	attacksWithTime := make(map[string]int)
	for _, rec := range records {
		if res, ok := byPlayer[rec.Player]; ok && rec.Score == res.Bonus*10 {
			continue
		}
		attacksWithTime[rec.Player]++
	}

	var rows []schema.RemainingRow
	for _, res := range results {
		if !res.Estimable {
			continue
		}
		row := schema.RemainingRow{
			Player:       res.Player,
			Battle:       res.Battle,
			PerWaveScore: res.PerWaveScore,
			Bonus:        res.Bonus,
			ExtraSeconds: res.ExtraSeconds,
		}
		if remaining := res.MaxScore - res.TotalScore; remaining > 0 {
			row.RemainingScore = remaining
		}

		totalTime := float64(r.BaseSeconds + res.ExtraSeconds)
		timeUsed := float64(attacksWithTime[res.Player]) * res.Battle
		timeLeft := math.Max(0, totalTime-timeUsed)
		if res.Battle > 0 {
			row.RemainingAttacks = int(timeLeft / res.Battle)
		}
		if res.PerWaveScore > 0 {
			secs := (float64(row.RemainingScore) - float64(row.RemainingAttacks*res.Bonus*10)) /
				float64(res.PerWaveScore)
			row.RemainingSeconds = int(math.Round(math.Max(0, secs)))
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].RemainingScore != rows[j].RemainingScore {
			return rows[i].RemainingScore > rows[j].RemainingScore
		}
		return rows[i].Player < rows[j].Player
	})
	return rows
}
