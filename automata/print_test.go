package automata

import "testing"

func TestPrintFormat(t *testing.T) {
	table := buildAB(t)
	got := Print(table)
	want := "- 0 1 E\n+ 1 E 1\n"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestParseTableRoundTrip(t *testing.T) {
	table := buildAB(t)
	text := Print(table)

	parsed, err := ParseTable(text, table.Alphabet)
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}

	for _, s := range []string{"a", "ab", "abbb", "b", ""} {
		before := acceptedPrefix(t, table, s)
		after := acceptedPrefix(t, parsed, s)
		if before != after {
			t.Errorf("round trip diverged on %q: before=%q after=%q", s, before, after)
		}
	}
}

func TestParseTableRoundTripThroughMinimize(t *testing.T) {
	table := buildMinimizableExample(t)
	min := Minimize(table)
	text := Print(min)

	parsed, err := ParseTable(text, min.Alphabet)
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	if parsed.NumStates() != min.NumStates() {
		t.Errorf("NumStates() after round trip = %d, want %d", parsed.NumStates(), min.NumStates())
	}
}

func TestParseTableRejectsBadMarker(t *testing.T) {
	alpha, _ := NewAlphabet([]byte{'a'})
	if _, err := ParseTable("x 0 E\n", alpha); err == nil {
		t.Fatal("expected error for row not starting with +/-")
	}
}

func TestParseTableRejectsWrongTransitionCount(t *testing.T) {
	alpha, _ := NewAlphabet([]byte{'a', 'b'})
	if _, err := ParseTable("+ 0 E\n", alpha); err == nil {
		t.Fatal("expected error for transition count mismatch")
	}
}

func TestParseTableSkipsBlankLines(t *testing.T) {
	alpha, _ := NewAlphabet([]byte{'a'})
	text := "+ 0 E\n\n\n"
	parsed, err := ParseTable(text, alpha)
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	if parsed.NumStates() != 1 {
		t.Errorf("NumStates() = %d, want 1", parsed.NumStates())
	}
}
