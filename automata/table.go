// Package automata implements deterministic finite automata over a finite
// byte alphabet: state tables, longest-prefix-match simulation, and
// Hopcroft-style partition-refinement minimization.
//
// Construction from config files produces an immutable Table. Running a
// simulation is the job of a separate Simulator value, so one Table can be
// shared read-only across any number of concurrently running simulations
// (the Rust source this is grounded on conflates the two; they are split here
// per design note).
package automata

import "github.com/shadowCow/lexkit/lexerr"

// noTransition marks a dead (absent) transition.
const noTransition = -1

// StateRow is one row of a transition table. Its position within Table.Rows
// is its implicit state id; Row 0 is always the start state.
type StateRow struct {
	Accepting   bool
	Transitions []int // noTransition (-1) marks an absent transition
}

// Table is the immutable transition table of a DFA, plus the alphabet index
// shared by every recognizer in a scanner.
type Table struct {
	Rows     []StateRow
	Alphabet Alphabet
}

// Alphabet maps a byte to its column index in every StateRow's Transitions.
type Alphabet struct {
	index [256]int16
	size  int
}

const noColumn = -1

// NewAlphabet builds an Alphabet from an ordered, duplicate-free byte
// sequence. Bytes not present map to no column.
func NewAlphabet(bytes []byte) (Alphabet, error) {
	a := Alphabet{}
	for i := range a.index {
		a.index[i] = noColumn
	}
	for i, b := range bytes {
		if a.index[b] != noColumn {
			return Alphabet{}, &lexerr.ConfigError{Err: lexerr.ErrDuplicateByte}
		}
		a.index[b] = int16(i)
	}
	a.size = len(bytes)
	return a, nil
}

// Size returns the number of symbols in the alphabet.
func (a Alphabet) Size() int { return a.size }

// ColumnOf returns the column index for b and whether b is a member.
func (a Alphabet) ColumnOf(b byte) (int, bool) {
	col := a.index[b]
	if col == noColumn {
		return 0, false
	}
	return int(col), true
}

// NewTable constructs a Table from state rows and an alphabet, validating
// the invariants from the data model: the row sequence must be non-empty,
// and every row's transition count must equal the alphabet size.
func NewTable(rows []StateRow, alphabet Alphabet) (*Table, error) {
	if len(rows) == 0 {
		return nil, &lexerr.InvariantError{Detail: "dfa table must contain at least one state"}
	}
	for _, row := range rows {
		if len(row.Transitions) != alphabet.Size() {
			return nil, &lexerr.ConfigError{Err: lexerr.ErrMalformedRow}
		}
		for _, dest := range row.Transitions {
			if dest != noTransition && (dest < 0 || dest >= len(rows)) {
				return nil, &lexerr.ConfigError{Err: lexerr.ErrMalformedRow}
			}
		}
	}
	return &Table{Rows: rows, Alphabet: alphabet}, nil
}

// NumStates returns the number of rows in the table.
func (t *Table) NumStates() int { return len(t.Rows) }

// IsAccepting reports whether state id is an accepting state. Out-of-range
// ids are never accepting.
func (t *Table) IsAccepting(id int) bool {
	if id < 0 || id >= len(t.Rows) {
		return false
	}
	return t.Rows[id].Accepting
}

// transition returns the destination state for (state, column), or
// (0, false) if there is none.
func (t *Table) transition(state, column int) (int, bool) {
	dest := t.Rows[state].Transitions[column]
	if dest == noTransition {
		return 0, false
	}
	return dest, true
}
