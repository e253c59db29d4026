package schema

import (
	"fmt"
	"math"
	"strconv"
)

// SnapBattle rounds a battle rating onto the 0.1 grid the search walks,
// cancelling float accumulation error.
func SnapBattle(battle float64) float64 {
	return math.Round(battle*10) / 10
}

// FormatBattle renders a battle rating without trailing zero noise
// (57.30 -> "57.3", 120.00 -> "120").
func FormatBattle(battle float64) string {
	return strconv.FormatFloat(battle, 'f', -1, 64)
}

// PairLabel renders a (battle, bonus) pair as a compact cell value.
func PairLabel(battle float64, bonus int) string {
	return fmt.Sprintf("%s/%d", FormatBattle(battle), bonus)
}
