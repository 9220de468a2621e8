package scanner

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/shadowCow/lexkit/alphabet"
	"github.com/shadowCow/lexkit/automata"
	"github.com/shadowCow/lexkit/lexerr"
)

// manifestDoc mirrors the YAML manifest form described in SPEC_FULL.md
// §4.3: the same (alphabet, ordered recognizer list) data as the text
// format, declared as structured config instead of a line-oriented file.
type manifestDoc struct {
	Alphabet    string          `yaml:"alphabet"`
	Recognizers []manifestEntry `yaml:"recognizers"`
}

type manifestEntry struct {
	Table string `yaml:"table"`
	Token string `yaml:"token"`
	Value string `yaml:"value,omitempty"`
}

// LoadManifest parses a YAML scanner manifest at path. It shares validation
// with LoadScanner: alphabet decode errors, duplicate alphabet bytes, and
// transition-table malformation all surface the same lexerr types.
func LoadManifest(path string) (*Scanner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &lexerr.IOError{Path: path, Op: "open", Err: err}
	}

	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &lexerr.ConfigError{Path: path, Err: err}
	}

	alphabetBytes, err := alphabet.Decode(stripWhitespace(doc.Alphabet))
	if err != nil {
		return nil, &lexerr.ConfigError{Path: path, Err: err}
	}
	alphaIdx, err := automata.NewAlphabet(alphabetBytes)
	if err != nil {
		return nil, &lexerr.ConfigError{Path: path, Err: err}
	}

	baseDir := filepath.Dir(path)
	recognizers := make([]Recognizer, 0, len(doc.Recognizers))
	for i, entry := range doc.Recognizers {
		if entry.Table == "" || entry.Token == "" {
			return nil, &lexerr.ConfigError{Path: path, Line: i + 1, Err: lexerr.ErrMalformedEntry}
		}

		ttPath := entry.Table
		if !filepath.IsAbs(ttPath) {
			ttPath = filepath.Join(baseDir, ttPath)
		}

		table, err := loadTable(ttPath, alphaIdx)
		if err != nil {
			return nil, err
		}

		rec := Recognizer{Table: table, TokenID: entry.Token}
		if entry.Value != "" {
			v := entry.Value
			rec.TokenValue = &v
		}
		recognizers = append(recognizers, rec)
	}

	return &Scanner{Alphabet: alphaIdx, Recognizers: recognizers}, nil
}
