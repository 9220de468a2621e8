// Package cli provides the command-line flag adapters for lexkit's three
// front-ends: tokenize, minimize, and codec. Each adapter parses its own
// flag set and delegates to the runner package for execution.
//
// The specification's front-ends are external collaborators specified only
// at the interface level (§6); this adapter follows the flag-group
// convention used throughout the rest of the dependency stack instead of
// raw positional argv parsing.
package cli

import (
	"fmt"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/shadowCow/lexkit/runner"
)

// TokenizeConfig holds parsed flags for the tokenize front-end.
type TokenizeConfig struct {
	ScannerDef    string
	Manifest      bool
	Input         string
	Output        string
	Debug         bool
	Silent        bool
	MmapThreshold int
}

// ParseTokenizeFlags parses the tokenize front-end's flags.
func ParseTokenizeFlags() (*TokenizeConfig, error) {
	cfg := &TokenizeConfig{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Tokenize an input file against a scanner definition using maximal-munch matching.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&cfg.ScannerDef, "scanner", "s", "", "scanner definition file (text format, or YAML with -manifest)"),
		flagSet.BoolVar(&cfg.Manifest, "manifest", false, "treat the scanner definition as a YAML manifest"),
		flagSet.StringVarP(&cfg.Input, "input", "i", "", "input file to tokenize"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&cfg.Output, "output", "o", "", "token stream output file"),
		flagSet.BoolVarP(&cfg.Debug, "debug", "d", false, "print diagnostic progress to the log"),
		flagSet.BoolVar(&cfg.Silent, "silent", false, "suppress all but error diagnostics"),
	)

	flagSet.CreateGroup("performance", "Performance",
		flagSet.IntVar(&cfg.MmapThreshold, "mmap-threshold", 1<<20, "file size in bytes above which input is memory-mapped"),
	)

	if err := flagSet.Parse(); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	applyVerbosity(cfg.Silent, cfg.Debug)

	if cfg.ScannerDef == "" || cfg.Input == "" || cfg.Output == "" {
		return nil, fmt.Errorf("usage: lexkit-tokenize -scanner <file> -input <file> -output <file>")
	}
	return cfg, nil
}

// RunTokenize executes the tokenize front-end for a parsed config.
func RunTokenize(cfg *TokenizeConfig) error {
	return runner.Tokenize(runner.TokenizeOptions{
		ScannerDefPath: cfg.ScannerDef,
		Manifest:       cfg.Manifest,
		InputPath:      cfg.Input,
		OutputPath:     cfg.Output,
		Debug:          cfg.Debug,
		MmapThreshold:  int64(cfg.MmapThreshold),
	})
}

// MinimizeConfig holds parsed flags for the minimize front-end.
type MinimizeConfig struct {
	Input  string
	Output string
	Silent bool
}

// ParseMinimizeFlags parses the minimize front-end's flags.
func ParseMinimizeFlags() (*MinimizeConfig, error) {
	cfg := &MinimizeConfig{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Minimize a DFA transition table via partition refinement, preserving its language.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&cfg.Input, "in", "i", "", "transition table file to minimize"),
	)
	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&cfg.Output, "out", "o", "", "minimized transition table output file"),
		flagSet.BoolVar(&cfg.Silent, "silent", false, "suppress all but error diagnostics"),
	)

	if err := flagSet.Parse(); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	applyVerbosity(cfg.Silent, false)

	if cfg.Input == "" || cfg.Output == "" {
		return nil, fmt.Errorf("usage: lexkit-minimize -in <file> -out <file>")
	}
	return cfg, nil
}

// RunMinimize executes the minimize front-end for a parsed config.
func RunMinimize(cfg *MinimizeConfig) error {
	return runner.Minimize(runner.MinimizeOptions{
		InputPath:  cfg.Input,
		OutputPath: cfg.Output,
	})
}

// CodecConfig holds parsed flags for the codec front-end.
type CodecConfig struct {
	Mode   string // "encode" or "decode"
	Input  string // encode: file to read; decode: the encoded token itself
	Output string // decode only: file to write raw bytes to
	Silent bool
}

// ParseCodecFlags parses the codec front-end's flags.
func ParseCodecFlags() (*CodecConfig, error) {
	cfg := &CodecConfig{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Encode raw bytes to, or decode raw bytes from, the safe-text alphabet codec.")

	flagSet.CreateGroup("mode", "Mode",
		flagSet.StringVarP(&cfg.Mode, "mode", "m", "", "encode or decode"),
		flagSet.StringVarP(&cfg.Input, "input", "i", "", "encode: input file path; decode: the encoded token"),
		flagSet.StringVarP(&cfg.Output, "output", "o", "", "output file (required for decode, encoded text prints to stdout for encode)"),
		flagSet.BoolVar(&cfg.Silent, "silent", false, "suppress all but error diagnostics"),
	)

	if err := flagSet.Parse(); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	applyVerbosity(cfg.Silent, false)

	switch cfg.Mode {
	case "encode":
		if cfg.Input == "" {
			return nil, fmt.Errorf("usage: lexkit-codec -mode encode -input <file>")
		}
	case "decode":
		if cfg.Input == "" || cfg.Output == "" {
			return nil, fmt.Errorf("usage: lexkit-codec -mode decode -input <token> -output <file>")
		}
	default:
		return nil, fmt.Errorf("mode must be %q or %q, got %q", "encode", "decode", cfg.Mode)
	}
	return cfg, nil
}

// RunCodec executes the codec front-end for a parsed config. For encode
// mode it passes the encoded text to printEncoded (typically stdout)
// instead of a file, mirroring the spec's "prints encoded token" contract.
func RunCodec(cfg *CodecConfig, printEncoded func(string)) error {
	switch cfg.Mode {
	case "encode":
		return runner.CodecEncodeTo(cfg.Input, printEncoded)
	case "decode":
		return runner.CodecDecode(cfg.Input, cfg.Output)
	default:
		return fmt.Errorf("unknown codec mode %q", cfg.Mode)
	}
}

func applyVerbosity(silent, debug bool) {
	if silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if debug {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
}
