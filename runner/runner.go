// Package runner provides a simple API to execute lexkit's tokenize,
// minimize, and codec operations from files.
package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/projectdiscovery/gologger"

	"github.com/shadowCow/lexkit/alphabet"
	"github.com/shadowCow/lexkit/automata"
	"github.com/shadowCow/lexkit/internal/source"
	"github.com/shadowCow/lexkit/lexerr"
	"github.com/shadowCow/lexkit/scanner"
	"github.com/shadowCow/lexkit/tokenize"
)

// TokenizeOptions configures a single tokenize run.
type TokenizeOptions struct {
	ScannerDefPath string // scanner definition in text format, unless Manifest is set
	Manifest       bool   // treat ScannerDefPath as a YAML manifest instead
	InputPath      string
	OutputPath     string
	Debug          bool
	MmapThreshold  int64 // 0 means use source.MmapThreshold
}

// Tokenize reads a scanner definition and an input file, tokenizes the
// input, and writes the token records to OutputPath. The output file is
// written to a temporary sibling and renamed into place, so a failed or
// interrupted run never leaves a partial output file behind.
func Tokenize(opts TokenizeOptions) error {
	runID := uuid.New().String()

	load := scanner.LoadScanner
	if opts.Manifest {
		load = scanner.LoadManifest
	}

	if opts.Debug {
		gologger.Info().Msgf("[%s] loading scanner definition from %s", runID, opts.ScannerDefPath)
	}
	sc, err := load(opts.ScannerDefPath)
	if err != nil {
		return fmt.Errorf("run %s: loading scanner definition: %w", runID, err)
	}

	threshold := int64(source.MmapThreshold)
	if opts.MmapThreshold > 0 {
		threshold = opts.MmapThreshold
	}
	src, err := source.OpenWithThreshold(opts.InputPath, threshold)
	if err != nil {
		return fmt.Errorf("run %s: opening input: %w", runID, err)
	}
	defer src.Close()

	tk, err := tokenize.New(sc)
	if err != nil {
		return fmt.Errorf("run %s: building tokenizer: %w", runID, err)
	}

	if opts.Debug {
		gologger.Info().Msgf("[%s] tokenizing %d bytes from %s", runID, len(src.Bytes()), opts.InputPath)
	}
	tokens, err := tk.Tokenize(src.Bytes())
	if err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}

	if opts.Debug {
		gologger.Info().Msgf("[%s] emitted %d tokens", runID, len(tokens))
	}
	return writeAtomically(opts.OutputPath, tokenize.Format(tokens))
}

// MinimizeOptions configures a single DFA minimization run.
type MinimizeOptions struct {
	InputPath  string // transition table in text format
	OutputPath string
}

// Minimize reads a transition table, merges language-equivalent states, and
// writes the resulting table back out in the same text format.
func Minimize(opts MinimizeOptions) error {
	runID := uuid.New().String()

	raw, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return fmt.Errorf("run %s: reading %s: %w", runID, opts.InputPath, err)
	}

	// A standalone transition-table file carries no alphabet of its own
	// (§6): only the column count matters to minimize and print, not which
	// byte backs which column. A placeholder alphabet of that many
	// synthetic symbols satisfies Table's structural requirement.
	columns, err := inferColumnCount(string(raw))
	if err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}
	alpha, err := placeholderAlphabet(columns)
	if err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}

	table, err := automata.ParseTable(string(raw), alpha)
	if err != nil {
		return fmt.Errorf("run %s: parsing transition table: %w", runID, err)
	}

	before := table.NumStates()
	minimized := automata.Minimize(table)
	gologger.Info().Msgf("[%s] minimized %d states to %d", runID, before, minimized.NumStates())

	return writeAtomically(opts.OutputPath, []byte(automata.Print(minimized)))
}

// CodecEncode reads raw bytes from inputPath and writes their safe-text
// encoding to outputPath.
func CodecEncode(inputPath, outputPath string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	encoded, err := alphabet.Encode(raw)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", inputPath, err)
	}
	return writeAtomically(outputPath, []byte(encoded))
}

// CodecEncodeTo reads raw bytes from inputPath, encodes them, and passes
// the result to emit instead of writing a file — matching the codec
// front-end's "prints encoded token" contract (§6).
func CodecEncodeTo(inputPath string, emit func(string)) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	encoded, err := alphabet.Encode(raw)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", inputPath, err)
	}
	emit(encoded)
	return nil
}

// CodecDecode decodes the safe-text token and writes the raw bytes to
// outputPath.
func CodecDecode(token, outputPath string) error {
	decoded, err := alphabet.Decode(token)
	if err != nil {
		return fmt.Errorf("decoding token: %w", err)
	}
	return writeAtomically(outputPath, decoded)
}

// inferColumnCount reads the first non-blank line of a transition-table
// file and counts its transition fields, without validating the rest of the
// file (ParseTable does that once the column count is known).
func inferColumnCount(text string) (int, error) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) < 2 {
			return 0, &lexerr.ConfigError{Err: lexerr.ErrMalformedRow}
		}
		return len(fields) - 2, nil
	}
	return 0, &lexerr.ConfigError{Err: lexerr.ErrEmptyTable}
}

// placeholderAlphabet builds an Alphabet of n synthetic, distinct byte
// symbols. Minimize and Print never consult which byte backs a column, so
// any distinct sequence of the right length is structurally sufficient.
func placeholderAlphabet(n int) (automata.Alphabet, error) {
	if n <= 0 || n > 256 {
		return automata.Alphabet{}, &lexerr.ConfigError{Err: lexerr.ErrMalformedRow}
	}
	syms := make([]byte, n)
	for i := range syms {
		syms[i] = byte(i)
	}
	return automata.NewAlphabet(syms)
}

// writeAtomically writes data to a temporary file alongside path, then
// renames it into place, so readers never observe a partially written file.
func writeAtomically(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp output file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}
