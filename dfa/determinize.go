package dfa

import (
	"github.com/kalinin-dev/retomat/internal/sparse"
	"github.com/kalinin-dev/retomat/nfa"
)

// Determinize builds the DFA whose states are reachable subsets of nfa
// states, by classical subset construction. alphabet is Σ; a DFA state
// is created for every reachable subset, including the empty set (the
// sink/trap state is deliberately preserved, not collapsed away).
//
// Set identity is the pivotal correctness requirement: two subsets with
// the same NFA states must be the *same* DFA state. This is resolved
// never by checking whether the NFA's transition table happens to
// mention a state (a test that conflates two distinct namespaces) —
// but by keying a map on sparse.Set.Key(), the canonical
// order-invariant form. This mirrors coregx dfa/lazy/cache.go's Cache,
// keyed by a StateKey hash of the NFA state set rather than by any
// NFA-internal structure.
func Determinize(n *nfa.NFA, alphabet []byte) (*DFA, error) {
	if len(alphabet) == 0 {
		capacityError("Determinize: empty alphabet")
	}

	alphaIndex := make(map[byte]int, len(alphabet))
	for i, c := range alphabet {
		alphaIndex[c] = i
	}

	d := &DFA{alphabet: alphabet, alphaIndex: alphaIndex}

	cache := make(map[string]StateID)
	var stateSets []*sparse.Set

	addState := func(set *sparse.Set) StateID {
		id := StateID(len(stateSets))
		cache[set.Key()] = id
		stateSets = append(stateSets, set)
		d.final = append(d.final, n.IsFinalSet(set))
		d.transitions = append(d.transitions, make([]StateID, len(alphabet)))
		return id
	}

	start := n.EpsilonClosure(n.Init())
	d.start = addState(start)

	worklist := []StateID{d.start}
	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		set := stateSets[cur]

		for i, c := range alphabet {
			next := n.Step(set, c)
			key := next.Key()
			target, seen := cache[key]
			if !seen {
				target = addState(next)
				worklist = append(worklist, target)
			}
			d.transitions[cur][i] = target
		}
	}
	return d, nil
}
