// Package nfa implements the Thompson-constructed NFA: its state
// representation, ε-closure, and simulation.
package nfa

import "github.com/kalinin-dev/retomat/internal/sparse"

// StateID uniquely identifies an NFA state. Fresh IDs are handed out by
// Builder in monotonically increasing order.
type StateID uint32

// InvalidState is returned where no target state exists.
const InvalidState StateID = 0xFFFFFFFF

// state is one node of the NFA graph: a set of single-symbol
// transitions plus a set of ε-transitions. δ is formally a function
// State × (Σ ∪ {ε}) → Set<State>, so both charTo and eps must be able
// to fan out to more than one target from the same state on the same
// symbol — Thompson construction itself never needs that for charTo,
// but a transposed NFA built by dfa.Reverse does: several DFA states
// routinely share a target on the same symbol, and reversing those
// transitions turns that convergence into genuine fan-out from one
// state. charTo therefore maps a symbol to a slice of targets, exactly
// like eps already does for ε-edges.
type state struct {
	id     StateID
	charTo map[byte][]StateID
	eps    []StateID
}

// NFA is an immutable automaton (I, F, δ), built once by a Builder
// (through Compile, or through dfa.Reverse) and then only ever read.
type NFA struct {
	states []*state
	init   *sparse.Set
	final  *sparse.Set
}

// NumStates returns the number of states in the automaton.
func (n *NFA) NumStates() int { return len(n.states) }

// Init returns the NFA's initial state set I.
func (n *NFA) Init() *sparse.Set { return n.init }

// Final returns the NFA's accepting state set F.
func (n *NFA) Final() *sparse.Set { return n.final }

// IsFinal reports whether id is an accepting state.
func (n *NFA) IsFinal(id StateID) bool { return n.final.Contains(uint32(id)) }

// CharTransitions returns δ(id, c): every target reachable from id on
// c. Returns nil when no transition on c is defined (δ(q,a)=∅ by
// convention when absent).
func (n *NFA) CharTransitions(id StateID, c byte) []StateID {
	return n.states[id].charTo[c]
}

// EpsilonTransitions returns the ε-successors of id.
func (n *NFA) EpsilonTransitions(id StateID) []StateID {
	return n.states[id].eps
}

// newSet allocates a sparse.Set sized to this NFA's state count,
// suitable for holding any subset of its states.
func (n *NFA) newSet() *sparse.Set {
	return sparse.New(uint32(len(n.states)))
}
