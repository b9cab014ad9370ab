package dfa

// StateID identifies a DFA state. Unlike nfa.StateID (an NFA state),
// this indexes the dense table built by Determinize/Minimize.
type StateID uint32

// InvalidState marks the absence of a state.
const InvalidState StateID = 0xFFFFFFFF

// DFA is a tuple (q0, F, δ) with δ total over every reachable (state,
// symbol) pair. Represented as a dense transition
// table (one row per state, one column per alphabet symbol), following
// coregx dfa/lazy.State's table-per-state layout, scaled from a sparse
// byte->StateID map (coregx, arbitrary bytes) to a dense row (this
// module's alphabet is a small fixed set, so a dense row is both
// simpler and faster than a map).
type DFA struct {
	alphabet    []byte
	alphaIndex  map[byte]int
	transitions [][]StateID // transitions[state][alphaIndex[c]] = target
	final       []bool      // final[state]
	start       StateID
}

// NumStates returns the number of states in the DFA (including any
// reachable sink/trap state).
func (d *DFA) NumStates() int { return len(d.transitions) }

// Start returns q0.
func (d *DFA) Start() StateID { return d.start }

// IsFinal reports whether id is an accepting state.
func (d *DFA) IsFinal(id StateID) bool { return d.final[id] }

// Alphabet returns the symbol set this DFA was built over.
func (d *DFA) Alphabet() []byte { return d.alphabet }

// Step returns δ(id, c) and whether c is in this DFA's alphabet at all.
// A symbol outside the alphabet has no defined transition anywhere in
// the table (as opposed to an in-alphabet symbol routed to the
// sink/trap state, which is a normal, total transition).
func (d *DFA) Step(id StateID, c byte) (StateID, bool) {
	i, ok := d.alphaIndex[c]
	if !ok {
		return InvalidState, false
	}
	return d.transitions[id][i], true
}
