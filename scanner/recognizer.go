// Package scanner loads scanner definitions — an ordered table of token
// recognizers sharing one byte alphabet — from the text format specified in
// spec.md §4.3/§6, or from an equivalent YAML manifest (SPEC_FULL.md §4.3).
package scanner

import "github.com/shadowCow/lexkit/automata"

// Recognizer pairs a DFA with the token identifier it produces and an
// optional fixed literal value that overrides the matched lexeme (the
// keyword case).
type Recognizer struct {
	Table      *automata.Table
	TokenID    string
	TokenValue *string // nil unless a fixed literal value was declared
}

// Scanner is an ordered list of recognizers; order is tie-break priority,
// lower index wins ties at equal match length.
type Scanner struct {
	Alphabet    automata.Alphabet
	Recognizers []Recognizer
}
