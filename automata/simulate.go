package automata

// Simulator holds the ephemeral, per-run state of a longest-prefix
// simulation over a shared, immutable Table. Each Simulator value is
// single-owner; distinct Simulators over the same Table may run
// concurrently from separate goroutines.
type Simulator struct {
	table *Table

	currentState    int
	readSequence    []byte
	longestAccepted []byte
	willNotMatch    bool
	selfIsAccepting bool
}

// NewSimulator returns a Simulator bound to table, ready for Simulate.
func NewSimulator(table *Table) *Simulator {
	return &Simulator{table: table}
}

// reset clears all ephemeral fields back to the start state.
func (s *Simulator) reset() {
	s.currentState = 0
	s.readSequence = s.readSequence[:0]
	s.longestAccepted = nil
	s.willNotMatch = false
	s.selfIsAccepting = false
}

// Simulate resets the simulator and runs input byte by byte from the start
// state, tracking the longest prefix that ended in an accepting state.
// Simulation halts at the first byte outside the alphabet or the first dead
// transition. It returns whether any non-empty accepting prefix was
// observed.
func (s *Simulator) Simulate(input []byte) bool {
	s.reset()

	for _, b := range input {
		if s.willNotMatch {
			break
		}
		s.step(b)
	}

	return len(s.longestAccepted) > 0
}

// step advances the simulation by one byte.
func (s *Simulator) step(b byte) {
	column, inAlphabet := s.table.Alphabet.ColumnOf(b)
	if !inAlphabet {
		s.willNotMatch = true
		return
	}

	dest, ok := s.table.transition(s.currentState, column)
	if !ok {
		s.willNotMatch = true
		return
	}

	s.currentState = dest
	s.readSequence = append(s.readSequence, b)

	if s.table.IsAccepting(dest) {
		s.selfIsAccepting = true
		s.longestAccepted = append(s.longestAccepted[:0:0], s.readSequence...)
	}
}

// LongestAcceptingMatch returns the longest accepted prefix observed during
// the last Simulate call.
func (s *Simulator) LongestAcceptingMatch() []byte { return s.longestAccepted }

// WillNotMatch reports whether the simulation reached a dead end (no further
// input can extend the match from the current state).
func (s *Simulator) WillNotMatch() bool { return s.willNotMatch }

// SelfIsAccepting reports whether any accepting state was reached during the
// last Simulate call.
func (s *Simulator) SelfIsAccepting() bool { return s.selfIsAccepting }
