package cmd

import (
	"github.com/guildtools/raidscope/core"
	"github.com/guildtools/raidscope/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd builds the player-by-date parameter comparison matrix.
var compareCmd = &cobra.Command{
	Use:   "compare <guild>",
	Short: "Compare inferred parameters across every recorded date.",
	Long: `Build a player-by-date matrix of inferred (battle/bonus) pairs.

Each cell shows either the operator-confirmed pair, the top two inferred
candidates for that date, "-" when the player has no records that day, or
"unresolved" when inference found nothing usable.

Use this to spot players whose inferred parameters drift between dates,
which usually means noisy data or a missing confirmed override.

The --date filter is ignored here; the matrix always spans every date the
guild has data for.

Examples:
  # Full comparison matrix
  raidscope compare moonguard

  # Matrix as CSV for spreadsheets
  raidscope compare moonguard --output csv --output-file compare.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCompare(cfg); err != nil {
			contract.LogFatal("Cannot build comparison matrix", err)
		}
	},
}
