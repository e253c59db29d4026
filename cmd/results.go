package cmd

import (
	"github.com/guildtools/raidscope/core"
	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/internal/snapstore"
	"github.com/spf13/cobra"
)

// resultsCmd resolves per-player parameters and projects max scores.
var resultsCmd = &cobra.Command{
	Use:   "results <guild>",
	Short: "Resolve per-player parameters and project maximum scores.",
	Long: `Resolve every player's hidden parameters from the guild's score exports.

For each player the command recovers:
- Battle rating (how much score each cleared wave is worth)
- Bonus tier (the flat score bought before the event)
- Extra seconds (purchased additional attack time)
- Per-wave score and theoretical maximum score

Players with operator-confirmed values are reported as Confirmed; players
whose observed totals exceed the projected maximum are escalated for review.
Every run is recorded in the snapshot store for later export.

Examples:
  # Resolve all players across every recorded date
  raidscope results moonguard

  # Single event date, top 20 players only
  raidscope results moonguard --date 0315 --limit 20

  # Include the ranked candidate pairs per player
  raidscope results moonguard --candidates

  # Export findings to CSV for tracking
  raidscope results moonguard --output csv --output-file results.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteResults(cfg, snapstore.Store()); err != nil {
			contract.LogFatal("Cannot resolve players", err)
		}
	},
}
