// Package schema has configs, models and shared constants for all parts of raidscope.
package schema

import "time"

// ScoreRecord is one observed scoring event for one player. Records are
// produced by the loader and treated as immutable by the engine.
type ScoreRecord struct {
	Guild    string        // Guild the record belongs to
	Date     string        // Event date token, as found in the data directory
	Category EventCategory // boss or normal
	SubIndex string        // Boss order within the day, or "normal"
	Level    string        // Boss level, when the source file carries one
	Rank     int           // In-game rank column (informational only)
	Player   string        // Player nickname, trimmed
	Score    int           // Raw score value, >= 0
}

// ConfirmedOverride holds operator-confirmed values for one player.
// A nil pointer means "unset" - zero is a valid confirmed value and must
// never be conflated with absence. Date-scoped overrides win over global
// ones (empty Date).
type ConfirmedOverride struct {
	Player   string
	Date     string // empty = applies to every date
	Battle   *float64
	Bonus    *int
	Extra    *int
	RangeMin *float64 // plausible battle range, inclusive
	RangeMax *float64
	Exclude  bool // refined matching: 0.1 battle grid, relaxed round-score check
}

// HasRange reports whether the override declares a plausible battle range.
func (o *ConfirmedOverride) HasRange() bool {
	return o != nil && o.RangeMin != nil && o.RangeMax != nil
}

// CandidatePair is a hypothesized (battle, bonus) combination with its
// accumulated match weight. Generated fresh per player per inference call.
type CandidatePair struct {
	Battle float64 `json:"battle"`
	Bonus  int     `json:"bonus"`
	Weight float64 `json:"weight"`
}

// ConfirmedFields records which parts of a resolution came from an
// operator override rather than inference.
type ConfirmedFields struct {
	Battle bool `json:"battle"`
	Bonus  bool `json:"bonus"`
	Extra  bool `json:"extra"`
}

// PlayerResult is the final per-player output of the resolution policy.
type PlayerResult struct {
	Player       string  `json:"player"`
	AttackCount  int     `json:"attack_count"`
	TotalScore   int     `json:"total_score"`
	AverageScore int     `json:"average_score"`
	Battle       float64 `json:"battle"`
	Bonus        int     `json:"bonus"`
	ExtraSeconds int     `json:"extra_seconds"`
	PerWaveScore int     `json:"per_wave_score"`
	MaxScore     int     `json:"max_score"`

	// Estimable is true when candidates or a confirmed battle value backed
	// the resolution; neutral-fallback rows are not estimable.
	Estimable bool `json:"estimable"`

	// Escalated is true when no candidate/extra-seconds combination reached
	// the observed total and the battle value had to be stepped up. Worth
	// operator review: it indicates a grid or confirmed-data mismatch.
	Escalated bool `json:"escalated"`

	Confirmed ConfirmedFields `json:"confirmed"`

	// Candidates is the ranked pre-resolution list, for diagnostic output.
	Candidates []CandidatePair `json:"candidates,omitempty"`
}

// GuildSummary aggregates one date's resolutions for a whole guild.
type GuildSummary struct {
	Guild            string   `json:"guild"`
	Date             string   `json:"date"`
	TotalScore       int      `json:"total_score"`
	EstimatedMax     int      `json:"estimated_max"`
	RemainingScore   int      `json:"remaining_score"`
	EstimableTotal   int      `json:"estimable_total"`
	UnestimableTotal int      `json:"unestimable_total"`
	Estimable        []string `json:"estimable"`
	Unestimable      []string `json:"unestimable"`
}

// RemainingRow estimates how much score a player can still earn on a date.
type RemainingRow struct {
	Player           string  `json:"player"`
	Battle           float64 `json:"battle"`
	PerWaveScore     int     `json:"per_wave_score"`
	Bonus            int     `json:"bonus"`
	ExtraSeconds     int     `json:"extra_seconds"`
	RemainingAttacks int     `json:"remaining_attacks"`
	RemainingSeconds int     `json:"remaining_seconds"`
	RemainingScore   int     `json:"remaining_score"`
}

// ComparisonRow is one player's confirmed/inferred parameters across dates.
// Cells align with ComparisonMatrix.Dates.
type ComparisonRow struct {
	Player string   `json:"player"`
	Cells  []string `json:"cells"`
}

// ComparisonMatrix is the per-date parameter comparison for a guild.
type ComparisonMatrix struct {
	Dates []string        `json:"dates"`
	Rows  []ComparisonRow `json:"rows"`
}

// RunRecord describes one stored resolution run.
type RunRecord struct {
	RunID        int64
	StartedAt    time.Time
	FinishedAt   *time.Time
	Guild        string
	EventDate    string
	TotalPlayers int32
	ConfigParams *string
}

// PlayerRowRecord is one stored per-player resolution row.
type PlayerRowRecord struct {
	RunID        int64
	Player       string
	ResolvedAt   time.Time
	AttackCount  int32
	TotalScore   int64
	AverageScore int64
	Battle       float64
	Bonus        int32
	ExtraSeconds int32
	PerWaveScore int32
	MaxScore     int64
	Estimable    bool
	Escalated    bool
}

// StoreStatus holds status information about the snapshot store.
type StoreStatus struct {
	Backend         string
	Connected       bool
	TotalRuns       int64
	TotalPlayerRows int64
	LastRunTime     time.Time
}
