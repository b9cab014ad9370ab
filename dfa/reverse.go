package dfa

import (
	"github.com/kalinin-dev/retomat/internal/sparse"
	"github.com/kalinin-dev/retomat/nfa"
)

// Reverse builds the NFA obtained by swapping a DFA's initial and final
// states and reversing every transition: new initial = old F, new final
// = {q0}, and for every p --a--> q in d, add q --a--> p in the result.
// The result is an NFA, not a DFA, because several DFA transitions may
// land on the same target, making the reversed fan-out
// non-deterministic.
//
// Grounded on original automaton.c's dfa_transpose() and on coregx
// nfa/reverse.go's Reverse(), adapted from that package's two-pass
// (collect edges, then build) structure to this module's simpler
// single-pass construction — this module's DFA states are already
// densely numbered 0..NumStates()-1, so no edge-collection pass or
// state-ID remapping is needed before building.
func Reverse(d *DFA) (*nfa.NFA, error) {
	numStates := d.NumStates()
	if numStates == 0 {
		capacityError("Reverse: DFA has no states")
	}

	b := nfa.NewBuilder(uint32(numStates))
	for i := 0; i < numStates; i++ {
		b.AddState()
	}

	for p := 0; p < numStates; p++ {
		for i, c := range d.alphabet {
			q := d.transitions[p][i]
			b.AddCharTransition(nfa.StateID(q), c, nfa.StateID(p))
		}
	}

	init := sparse.New(uint32(numStates))
	for p := 0; p < numStates; p++ {
		if d.IsFinal(StateID(p)) {
			init.Insert(uint32(p))
		}
	}

	final := sparse.New(uint32(numStates))
	final.Insert(uint32(d.Start()))

	return b.Build(init, final), nil
}
