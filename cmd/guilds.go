package cmd

import (
	"fmt"

	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/internal/loader"
	"github.com/spf13/cobra"
)

// guildsCmd lists the guilds present in the data directory.
var guildsCmd = &cobra.Command{
	Use:   "guilds",
	Short: "List the guilds found in the data directory.",
	Long: `List every guild directory found under the configured data directory.

A guild directory holds one subdirectory per event date (digits only, e.g.
0315/) with boss.csv and normal.csv exports, plus an optional common.csv
with operator-confirmed overrides.

Examples:
  # List guilds in the default data directory
  raidscope guilds

  # List guilds in a custom directory
  raidscope guilds --data-dir /srv/raid-exports`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		guilds, err := loader.ListGuilds(cfg.DataDir)
		if err != nil {
			contract.LogFatal("Cannot list guilds", err)
		}
		if len(guilds) == 0 {
			fmt.Println("No guilds found.")
			return
		}
		for _, g := range guilds {
			fmt.Println(g)
		}
	},
}
