// Command lexkit-minimize minimizes a DFA transition table via
// partition refinement, preserving its language but not its state ids.
package main

import (
	"github.com/projectdiscovery/gologger"

	"github.com/shadowCow/lexkit/internal/cli"
)

func main() {
	cfg, err := cli.ParseMinimizeFlags()
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}

	if err := cli.RunMinimize(cfg); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}
