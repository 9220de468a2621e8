package scanner

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/shadowCow/lexkit/alphabet"
	"github.com/shadowCow/lexkit/automata"
	"github.com/shadowCow/lexkit/lexerr"
)

// LoadScanner parses the scanner-definition text format: the first
// non-empty line is a whitespace-stripped, codec-encoded alphabet; every
// subsequent non-empty line is `<tt_path> <token_id> [<literal_token_value>]`
// naming a transition-table file, resolved relative to path's directory.
// Blank lines between entries are ignored.
func LoadScanner(path string) (*Scanner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &lexerr.IOError{Path: path, Op: "open", Err: err}
	}

	lines := splitLines(string(data))
	if len(lines) == 0 {
		return nil, &lexerr.ConfigError{Path: path, Err: lexerr.ErrEmptyAlphabet}
	}

	idx := 0
	var alphabetLine string
	for idx < len(lines) {
		trimmed := strings.TrimSpace(lines[idx])
		idx++
		if trimmed != "" {
			alphabetLine = trimmed
			break
		}
	}
	if alphabetLine == "" {
		return nil, &lexerr.ConfigError{Path: path, Err: lexerr.ErrEmptyAlphabet}
	}

	encodedAlphabet := stripWhitespace(alphabetLine)
	alphabetBytes, err := alphabet.Decode(encodedAlphabet)
	if err != nil {
		return nil, &lexerr.ConfigError{Path: path, Err: err}
	}
	alphaIdx, err := automata.NewAlphabet(alphabetBytes)
	if err != nil {
		return nil, &lexerr.ConfigError{Path: path, Err: err}
	}

	baseDir := filepath.Dir(path)
	var recognizers []Recognizer
	for ; idx < len(lines); idx++ {
		line := strings.TrimSpace(lines[idx])
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, &lexerr.ConfigError{Path: path, Line: idx + 1, Err: lexerr.ErrMalformedEntry}
		}

		ttPath := fields[0]
		if !filepath.IsAbs(ttPath) {
			ttPath = filepath.Join(baseDir, ttPath)
		}

		table, err := loadTable(ttPath, alphaIdx)
		if err != nil {
			return nil, err
		}

		rec := Recognizer{Table: table, TokenID: fields[1]}
		if len(fields) == 3 {
			v := fields[2]
			rec.TokenValue = &v
		}
		recognizers = append(recognizers, rec)
	}

	return &Scanner{Alphabet: alphaIdx, Recognizers: recognizers}, nil
}

func loadTable(path string, alpha automata.Alphabet) (*automata.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &lexerr.IOError{Path: path, Op: "open", Err: err}
	}
	table, err := automata.ParseTable(string(data), alpha)
	if err != nil {
		return nil, &lexerr.ConfigError{Path: path, Err: err}
	}
	return table, nil
}

func splitLines(text string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
