package cmd

import (
	"fmt"

	"github.com/guildtools/raidscope/core"
	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// calcSetup loads minimal configuration needed for the calculator.
// No data directory or snapshot store is touched here.
func calcSetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}
	cfg.Rules = schema.DefaultRules()
	return nil
}

// calcCmd computes the theoretical maximum score for given parameters.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute per-wave and maximum score for known parameters.",
	Long: `Compute the per-wave score and theoretical maximum score for an
explicitly given (battle, bonus, extra seconds) combination.

No score exports are read; this is the pure scoring formula, useful for
sanity-checking inferred values or planning purchases.

Examples:
  # Baseline player, no purchases
  raidscope calc --battle 120

  # Player with a 1500 bonus tier and 60 extra seconds
  raidscope calc --battle 57.3 --bonus 1500 --extra 60`,
	PreRunE: calcSetup,
	Run: func(_ *cobra.Command, _ []string) {
		battle := viper.GetFloat64("battle")
		bonus := viper.GetInt("bonus")
		extra := viper.GetInt("extra")

		if err := contract.RevalidateCalc(cfg.Rules, battle, bonus, extra); err != nil {
			contract.LogFatal("Invalid calc parameters", err)
		}

		battle = schema.SnapBattle(battle)
		pws := core.PerWaveScore(battle)
		maxScore := core.MaxScore(cfg.Rules, battle, bonus, extra)

		fmt.Printf("Battle rating: %s\n", schema.FormatBattle(battle))
		fmt.Printf("Bonus tier:    %d\n", bonus)
		fmt.Printf("Extra seconds: %d\n", extra)
		fmt.Printf("Per-wave:      %d\n", pws)
		fmt.Printf("Max score:     %d\n", maxScore)
	},
}
