// Command lexkit-tokenize tokenizes an input file against a scanner
// definition, emitting a token record stream.
package main

import (
	"github.com/projectdiscovery/gologger"

	"github.com/shadowCow/lexkit/internal/cli"
)

func main() {
	cfg, err := cli.ParseTokenizeFlags()
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}

	if err := cli.RunTokenize(cfg); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}
