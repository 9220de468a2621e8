package scanner_test

import (
	"testing"

	"github.com/shadowCow/lexkit/automata"
	"github.com/shadowCow/lexkit/scanner"
)

func literalValue(s string) *string { return &s }

// buildExactTable accepts exactly literal and nothing else: one state per
// prefix, the last one accepting.
func buildExactTable(t *testing.T, literal string) *automata.Table {
	t.Helper()

	seen := make(map[byte]bool)
	var syms []byte
	for i := 0; i < len(literal); i++ {
		b := literal[i]
		if !seen[b] {
			seen[b] = true
			syms = append(syms, b)
		}
	}

	alpha, err := automata.NewAlphabet(syms)
	if err != nil {
		t.Fatalf("NewAlphabet(%q): %v", literal, err)
	}

	n := alpha.Size()
	numStates := len(literal) + 1
	rows := make([]automata.StateRow, numStates)
	for s := 0; s < numStates; s++ {
		trans := make([]int, n)
		for i := range trans {
			trans[i] = -1
		}
		if s < len(literal) {
			col, ok := alpha.ColumnOf(literal[s])
			if !ok {
				t.Fatalf("no column for byte %q", literal[s])
			}
			trans[col] = s + 1
		}
		rows[s] = automata.StateRow{Accepting: s == len(literal), Transitions: trans}
	}

	table, err := automata.NewTable(rows, alpha)
	if err != nil {
		t.Fatalf("NewTable(%q): %v", literal, err)
	}
	return table
}

// buildInIntTable accepts "in" and "int" — a strict superset of the literal
// "in", reproducing a scanner definition where a recognizer's table doesn't
// accept exactly its declared token_value.
func buildInIntTable(t *testing.T) *automata.Table {
	t.Helper()

	alpha, err := automata.NewAlphabet([]byte{'i', 'n', 't'})
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	col := func(b byte) int {
		c, ok := alpha.ColumnOf(b)
		if !ok {
			t.Fatalf("no column for %q", b)
		}
		return c
	}
	none := func() []int { return []int{-1, -1, -1} }

	row0 := none()
	row0[col('i')] = 1
	row1 := none()
	row1[col('n')] = 2
	row2 := none()
	row2[col('t')] = 3
	row3 := none()

	rows := []automata.StateRow{
		{Accepting: false, Transitions: row0},
		{Accepting: false, Transitions: row1},
		{Accepting: true, Transitions: row2},
		{Accepting: true, Transitions: row3},
	}
	table, err := automata.NewTable(rows, alpha)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return table
}

func TestBuildKeywordAcceleratorVerifiesExactMatchRecognizers(t *testing.T) {
	sc := &scanner.Scanner{
		Recognizers: []scanner.Recognizer{
			{Table: buildExactTable(t, "if"), TokenID: "IF", TokenValue: literalValue("if")},
			{Table: buildExactTable(t, "else"), TokenID: "ELSE", TokenValue: literalValue("else")},
			{Table: buildInIntTable(t), TokenID: "IN", TokenValue: literalValue("in")},
		},
	}

	accel, err := scanner.BuildKeywordAccelerator(sc)
	if err != nil {
		t.Fatalf("BuildKeywordAccelerator: %v", err)
	}
	if accel.Index == nil {
		t.Fatal("expected an index with 3 distinct literals")
	}
	if !accel.Verified[0] {
		t.Error("IF's table accepts exactly \"if\"; expected Verified[0] == true")
	}
	if !accel.Verified[1] {
		t.Error("ELSE's table accepts exactly \"else\"; expected Verified[1] == true")
	}
	if accel.Verified[2] {
		t.Error("IN's table also accepts \"int\", a longer string; expected Verified[2] == false")
	}
}
