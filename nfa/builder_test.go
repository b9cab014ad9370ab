package nfa

import "testing"

// TestAddCharTransitionAccumulates ensures repeated calls for the same
// (from, c) pair with different targets fan out instead of overwriting
// one another — the property dfa.Reverse relies on when several DFA
// states converge on one target for a symbol.
func TestAddCharTransitionAccumulates(t *testing.T) {
	b := NewBuilder(3)
	s0, s1, s2 := b.AddState(), b.AddState(), b.AddState()

	b.AddCharTransition(s0, 'a', s1)
	b.AddCharTransition(s0, 'a', s2)

	got := b.states[s0].charTo['a']
	if len(got) != 2 {
		t.Fatalf("charTo['a'] has %d targets, want 2: %v", len(got), got)
	}
	seen := map[StateID]bool{}
	for _, to := range got {
		seen[to] = true
	}
	if !seen[s1] || !seen[s2] {
		t.Fatalf("charTo['a'] = %v, want both %d and %d", got, s1, s2)
	}
}

// TestAddCharTransitionDedups ensures adding the same (from, c, to)
// tuple twice does not produce a duplicate target.
func TestAddCharTransitionDedups(t *testing.T) {
	b := NewBuilder(2)
	s0, s1 := b.AddState(), b.AddState()

	b.AddCharTransition(s0, 'x', s1)
	b.AddCharTransition(s0, 'x', s1)

	got := b.states[s0].charTo['x']
	if len(got) != 1 {
		t.Fatalf("charTo['x'] = %v, want exactly one target", got)
	}
}
