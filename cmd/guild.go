package cmd

import (
	"github.com/guildtools/raidscope/core"
	"github.com/guildtools/raidscope/internal/contract"
	"github.com/spf13/cobra"
)

// guildCmd aggregates player results into guild-level totals.
var guildCmd = &cobra.Command{
	Use:   "guild <guild>",
	Short: "Show guild-level totals and the achievement rate.",
	Long: `Aggregate every player's resolution into guild-level numbers.

Reports:
- Observed total score across all counted players
- Estimated maximum achievable total
- Achievement rate (observed / estimated maximum)
- Players excluded because no parameters could be estimated

Players without usable evidence are listed by name so operators can supply
confirmed values for them.

Examples:
  # Guild summary across every recorded date
  raidscope guild moonguard

  # Single event date as JSON
  raidscope guild moonguard --date 0315 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGuild(cfg); err != nil {
			contract.LogFatal("Cannot build guild summary", err)
		}
	},
}
