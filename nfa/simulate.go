package nfa

import "github.com/kalinin-dev/retomat/internal/sparse"

// Step computes δ(S, a) = ε-closure(⋃_{q ∈ S} δ(q, a)).
func (n *NFA) Step(states *sparse.Set, a byte) *sparse.Set {
	next := n.newSet()
	states.Iter(func(v uint32) {
		for _, to := range n.CharTransitions(StateID(v), a) {
			next.Insert(uint32(to))
		}
	})
	return n.EpsilonClosure(next)
}

// DeltaStar computes δ*(S, w): Step applied once per symbol of w, left
// to right, starting from S.
func (n *NFA) DeltaStar(states *sparse.Set, w string) *sparse.Set {
	cur := states
	for i := 0; i < len(w); i++ {
		cur = n.Step(cur, w[i])
	}
	return cur
}

// IsFinalSet reports whether any state in states is accepting.
func (n *NFA) IsFinalSet(states *sparse.Set) bool {
	found := false
	states.Iter(func(v uint32) {
		if found {
			return
		}
		if n.IsFinal(StateID(v)) {
			found = true
		}
	})
	return found
}

// Accept decides whether w belongs to the NFA's language: w is accepted
// iff δ*(I, w) ∩ F ≠ ∅. Absent transitions simply yield the empty set;
// Accept never errors on input — a malformed NFA (e.g. a dangling state
// id) is a programming error surfaced by Builder/Compile, not here.
func (n *NFA) Accept(w string) bool {
	start := n.EpsilonClosure(n.Init())
	end := n.DeltaStar(start, w)
	return n.IsFinalSet(end)
}
