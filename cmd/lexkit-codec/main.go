// Command lexkit-codec encodes raw bytes to, or decodes raw bytes from,
// the safe-text alphabet codec.
package main

import (
	"fmt"

	"github.com/projectdiscovery/gologger"

	"github.com/shadowCow/lexkit/internal/cli"
)

func main() {
	cfg, err := cli.ParseCodecFlags()
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}

	printEncoded := func(token string) { fmt.Println(token) }
	if err := cli.RunCodec(cfg, printEncoded); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}
