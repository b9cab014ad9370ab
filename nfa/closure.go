package nfa

import "github.com/kalinin-dev/retomat/internal/sparse"

// EpsilonClosure computes the ε-closure of states: the smallest set
// containing states and closed under ε-transitions. Implemented as a
// worklist over internal/sparse, following original
// automaton.c's nfa_epsilon_closure (a stack-based fixed point) and
// coregx dfa/lazy/builder.go's epsilonClosure method, which has the
// identical worklist-over-a-state-set shape.
func (n *NFA) EpsilonClosure(states *sparse.Set) *sparse.Set {
	closure := n.newSet()
	worklist := make([]StateID, 0, states.Size())
	states.Iter(func(v uint32) { worklist = append(worklist, StateID(v)) })

	for len(worklist) > 0 {
		q := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if closure.Contains(uint32(q)) {
			continue
		}
		closure.Insert(uint32(q))
		for _, next := range n.EpsilonTransitions(q) {
			if !closure.Contains(uint32(next)) {
				worklist = append(worklist, next)
			}
		}
	}
	return closure
}
