package cmd

import (
	"github.com/guildtools/raidscope/core"
	"github.com/guildtools/raidscope/internal/contract"
	"github.com/spf13/cobra"
)

// remainingCmd estimates how much score each player can still earn.
var remainingCmd = &cobra.Command{
	Use:   "remaining <guild>",
	Short: "Estimate each player's remaining attacks, seconds and score.",
	Long: `Estimate how much headroom each player still has in the event.

For each player the command computes, from their resolved parameters and the
attacks already spent:
- Remaining score up to the projected maximum
- Attack time already consumed and time left in the budget
- Full attacks that still fit and leftover seconds

Attacks that only banked the flat bonus (no waves cleared) do not consume
attack time and are excluded from the time math.

Examples:
  # Remaining capacity for a single event date
  raidscope remaining moonguard --date 0315

  # Export as CSV for the guild planning sheet
  raidscope remaining moonguard --date 0315 --output csv --output-file remaining.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRemaining(cfg); err != nil {
			contract.LogFatal("Cannot estimate remaining capacity", err)
		}
	},
}
