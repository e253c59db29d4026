package schema

// Evidence weights for candidate scoring. A plausible-range confirmation
// dominates everything else; an exact per-wave total match dominates the
// weaker structural signals.
const (
	RangeWeight      = 50.0 // battle inside the override's plausible range
	ExactMatchWeight = 10.0 // observed score decomposes exactly into whole waves
	WeakMatchWeight  = 2.0  // near-decomposition within one wave-score unit
	FractionalWeight = 1.0  // implied elapsed seconds land in the playable window

	ZeroBonusBias   = 0.5 // ranking nudge toward the common no-bonus case
	DistanceDamping = 0.1 // ranking penalty per unit of |battle - typical|
)

// Rules carries every tunable constant of the scoring event. Engine calls
// take a Rules value and never consult package state, so variant rule sets
// (different tier grids, different multipliers) stay side by side.
type Rules struct {
	BaseSeconds       int     // time budget per attack before extras
	ScalingMultiplier float64 // event-wide score multiplier

	BattleMin   float64 // inclusive grid bounds for battle rating
	BattleMax   float64
	BattleStep  float64 // default search granularity
	RefinedStep float64 // granularity under refined (exclude-flag) matching

	BonusTiers   []int // valid flat-bonus tiers, ascending
	ExtraSeconds []int // purchasable extra-time options, ascending

	TypicalBattle     float64 // ranking anchor and neutral-fallback value
	EscalationCeiling float64 // hard cap when stepping battle up for feasibility
	MaxCandidates     int     // ranked candidate list cap
	MaxElapsedSeconds int     // open upper bound for fractional-evidence elapsed time
}

// DefaultRules returns the canonical rule set for the current event season.
func DefaultRules() Rules {
	return Rules{
		BaseSeconds:       1200,
		ScalingMultiplier: 1.08,
		BattleMin:         6.0,
		BattleMax:         250.0,
		BattleStep:        0.5,
		RefinedStep:       0.1,
		BonusTiers:        []int{0, 500, 1000, 1500, 2000, 2500, 3000},
		ExtraSeconds:      []int{0, 20, 60, 120},
		TypicalBattle:     120.0,
		EscalationCeiling: 500.0,
		MaxCandidates:     20,
		MaxElapsedSeconds: 1500,
	}
}
