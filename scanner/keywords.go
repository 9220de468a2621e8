package scanner

import (
	"github.com/shadowCow/lexkit/automata"
	"github.com/shadowCow/lexkit/scanner/keywordindex"
)

// KeywordAccelerator pairs a compiled keywordindex.Index with the mapping
// back from literal value to the (possibly several) recognizers that
// declared it, so a single index lookup can seed every matching
// recognizer's candidate length.
//
// token_value is declared independently of the bytes a recognizer's DFA
// accepts (SPEC_FULL.md §4.5 and §3), so the index is only a safe substitute
// for simulating a given recognizer's DFA when that recognizer's own
// language is exactly its token_value string. Verified records, per
// recognizer index, whether that has been checked; a recognizer absent from
// Verified (or mapped to false) must always be simulated.
type KeywordAccelerator struct {
	Index          *keywordindex.Index
	RecognizersFor map[string][]int
	Verified       map[int]bool
}

// BuildKeywordAccelerator compiles every fixed-literal-valued recognizer in
// sc into a KeywordAccelerator. Index is nil when sc has too few distinct
// literal values to make the automaton worth building; callers must treat a
// nil Index as "accelerate nothing, simulate every recognizer".
func BuildKeywordAccelerator(sc *Scanner) (*KeywordAccelerator, error) {
	recognizersFor := make(map[string][]int)
	verified := make(map[int]bool)
	var literals []string
	for i, rec := range sc.Recognizers {
		if rec.TokenValue == nil {
			continue
		}
		recognizersFor[*rec.TokenValue] = append(recognizersFor[*rec.TokenValue], i)
		literals = append(literals, *rec.TokenValue)
		verified[i] = dfaAcceptsExactly(rec.Table, *rec.TokenValue)
	}

	idx, err := keywordindex.Build(literals)
	if err != nil {
		return nil, err
	}
	return &KeywordAccelerator{Index: idx, RecognizersFor: recognizersFor, Verified: verified}, nil
}

// dfaAcceptsExactly reports whether table's language is exactly {value}: no
// state before the end of the deterministic path for value's bytes is
// accepting, no transition leaving that path leads to or reaches an accepting
// state, the path ends in an accepting state, and no further byte sequence
// from that state reaches another accepting state. Together these make an
// Aho-Corasick hit for value provably equivalent to simulating table for
// every possible continuation of the input, not merely for value read in
// isolation.
func dfaAcceptsExactly(table *automata.Table, value string) bool {
	state := 0
	for i := 0; i < len(value); i++ {
		if table.IsAccepting(state) {
			return false
		}
		col, ok := table.Alphabet.ColumnOf(value[i])
		if !ok {
			return false
		}
		for c, other := range table.Rows[state].Transitions {
			if c != col && other >= 0 && (table.IsAccepting(other) || reachesAcceptingState(table, other)) {
				return false
			}
		}
		dest := table.Rows[state].Transitions[col]
		if dest < 0 {
			return false
		}
		state = dest
	}
	if !table.IsAccepting(state) {
		return false
	}
	return !reachesAcceptingState(table, state)
}

// reachesAcceptingState reports whether any state reachable from start by
// consuming one or more further bytes is accepting.
func reachesAcceptingState(table *automata.Table, start int) bool {
	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		for _, dest := range table.Rows[state].Transitions {
			if dest < 0 {
				continue
			}
			if table.IsAccepting(dest) {
				return true
			}
			if !visited[dest] {
				visited[dest] = true
				queue = append(queue, dest)
			}
		}
	}
	return false
}
