// Package keywordindex accelerates maximal-munch tokenization of
// literal-valued recognizers (the keyword case: fixed strings like "if" or
// ",") by compiling their distinct literal values into a single
// Aho-Corasick automaton instead of running one DFA simulation per keyword
// per position.
//
// This is a pure accelerator: it must never change the set of candidate
// matches the tokenizer considers, only how cheaply they are found. See
// SPEC_FULL.md §4.5.
package keywordindex

import "github.com/coregx/ahocorasick"

// MinLiterals is the smallest number of distinct literal values worth
// compiling an automaton for; below this, per-recognizer DFA simulation is
// cheap enough that building the index doesn't pay for itself.
const MinLiterals = 3

// Index answers "does some literal value match at this exact position".
type Index struct {
	automaton *ahocorasick.Automaton
}

// Build compiles the distinct values in literals into an Index. Duplicate
// values are deduplicated before compilation. Build returns (nil, nil) when
// fewer than MinLiterals distinct values remain, signaling the caller to
// skip acceleration for this scanner.
func Build(literals []string) (*Index, error) {
	seen := make(map[string]bool, len(literals))
	var unique []string
	for _, lit := range literals {
		if lit == "" || seen[lit] {
			continue
		}
		seen[lit] = true
		unique = append(unique, lit)
	}
	if len(unique) < MinLiterals {
		return nil, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range unique {
		builder.AddPattern([]byte(lit))
	}

	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Index{automaton: automaton}, nil
}

// MatchAt reports the literal value (and its length) that the automaton
// finds anchored exactly at offset within haystack, if any.
func (idx *Index) MatchAt(haystack []byte, offset int) (value string, length int, ok bool) {
	if idx == nil {
		return "", 0, false
	}

	m := idx.automaton.Find(haystack, offset)
	if m == nil || m.Start != offset {
		return "", 0, false
	}
	return string(haystack[m.Start:m.End]), m.End - m.Start, true
}
