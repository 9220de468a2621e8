package tokenize

import (
	"bytes"
	"fmt"

	"github.com/shadowCow/lexkit/alphabet"
	"github.com/shadowCow/lexkit/automata"
	"github.com/shadowCow/lexkit/lexerr"
	"github.com/shadowCow/lexkit/scanner"
)

// Tokenizer drives one maximal-munch scan over an input byte sequence using
// an ordered recognizer table. Declaration order breaks ties: among
// recognizers accepting a lexeme of equal maximal length, the lowest index
// wins.
type Tokenizer struct {
	recognizers []scanner.Recognizer
	simulators  []*automata.Simulator
	accel       *scanner.KeywordAccelerator
}

// New builds a Tokenizer for sc. It compiles a keyword accelerator
// internally (SPEC_FULL.md §4.5); callers never need to manage it.
func New(sc *scanner.Scanner) (*Tokenizer, error) {
	accel, err := scanner.BuildKeywordAccelerator(sc)
	if err != nil {
		return nil, err
	}

	sims := make([]*automata.Simulator, len(sc.Recognizers))
	for i, rec := range sc.Recognizers {
		sims[i] = automata.NewSimulator(rec.Table)
	}

	return &Tokenizer{
		recognizers: sc.Recognizers,
		simulators:  sims,
		accel:       accel,
	}, nil
}

// Tokenize scans input end to end, returning every emitted token in order.
// It returns a *lexerr.LexError the moment no recognizer matches a
// non-empty prefix at some position; no partial token slice is ever
// returned alongside an error.
func (tk *Tokenizer) Tokenize(input []byte) ([]Token, error) {
	var tokens []Token

	position, line, column := 0, 1, 1

	for position < len(input) {
		suffix := input[position:]

		matchLen, matchIdx, ok := tk.longestMatch(suffix)
		if !ok {
			return nil, &lexerr.LexError{Line: line, Column: column, Offset: position}
		}

		rec := tk.recognizers[matchIdx]
		lexeme := suffix[:matchLen]

		value, err := emittedValue(rec, lexeme)
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, Token{
			TokenID: rec.TokenID,
			Value:   value,
			Line:    line,
			Column:  column,
			Offset:  position,
		})

		for _, b := range lexeme {
			if b == '\n' {
				line++
				column = 1
			} else {
				column++
			}
		}
		position += matchLen
	}

	return tokens, nil
}

// longestMatch runs every recognizer over suffix and selects the strictly
// longest accepted prefix, breaking ties by lowest declaration index.
func (tk *Tokenizer) longestMatch(suffix []byte) (length int, index int, ok bool) {
	var literalAt string
	var literalLen int
	var literalOK bool
	if tk.accel != nil && tk.accel.Index != nil {
		literalAt, literalLen, literalOK = tk.accel.Index.MatchAt(suffix, 0)
	}

	bestLen := 0
	bestIdx := -1

	for i, rec := range tk.recognizers {
		var candidateLen int

		if rec.TokenValue != nil && tk.accel != nil && tk.accel.Index != nil && tk.accel.Verified[i] {
			// Only a recognizer whose DFA is confirmed (at load time) to
			// accept exactly its own token_value may skip simulation: the
			// Aho-Corasick hit is then provably equivalent to simulating
			// this recognizer's DFA. Every other recognizer, including an
			// unverified literal one, always simulates.
			if literalOK && literalAt == *rec.TokenValue {
				candidateLen = literalLen
			} else {
				candidateLen = 0
			}
		} else {
			sim := tk.simulators[i]
			sim.Simulate(suffix)
			candidateLen = len(sim.LongestAcceptingMatch())
		}

		if candidateLen > bestLen {
			bestLen = candidateLen
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestLen == 0 {
		return 0, 0, false
	}
	return bestLen, bestIdx, true
}

// emittedValue computes the value to emit for a match: the recognizer's
// fixed literal value if declared, otherwise the codec-encoded lexeme.
func emittedValue(rec scanner.Recognizer, lexeme []byte) (string, error) {
	if rec.TokenValue != nil {
		return *rec.TokenValue, nil
	}
	encoded, err := alphabet.Encode(lexeme)
	if err != nil {
		return "", fmt.Errorf("encoding matched lexeme for token %s: %w", rec.TokenID, err)
	}
	return encoded, nil
}

// Format renders tokens in the output record format: one line per token,
// whitespace-separated `token_id token_value line column`, terminated by a
// newline.
func Format(tokens []Token) []byte {
	var buf bytes.Buffer
	for _, tok := range tokens {
		fmt.Fprintf(&buf, "%s %s %d %d\n", tok.TokenID, tok.Value, tok.Line, tok.Column)
	}
	return buf.Bytes()
}
