// main is the entry point for the raidscope CLI.
package main

import (
	"github.com/guildtools/raidscope/cmd"
	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/internal/snapstore"
)

func main() {
	err := cmd.Execute()

	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("stopping profiling", perr)
	}
	if cerr := snapstore.CloseStore(); cerr != nil {
		contract.LogWarn("closing snapshot store", cerr)
	}
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
