package nfa

import "github.com/kalinin-dev/retomat/internal/sparse"

// Builder constructs an NFA incrementally, handing out fresh StateIDs
// from a single counter shared across an entire compilation. Grounded
// on coregx nfa/builder.go's AddX-method shape, trimmed to the
// transitions this module's Thompson construction actually needs (char
// transitions and ε-edges; no byte-range/split/capture states, which
// are coregx's generalization to arbitrary regexp/syntax trees).
type Builder struct {
	states   []*state
	capacity uint32
}

// NewBuilder creates a Builder whose fragment sets will be sized for up
// to capacity states. capacity must be the exact number of states the
// compilation is about to produce (2 per CharGroup/Empty leaf) —
// Compile computes this up front by walking the AST.
func NewBuilder(capacity uint32) *Builder {
	if capacity == 0 {
		capacityError("NewBuilder requires a positive capacity")
	}
	return &Builder{
		states:   make([]*state, 0, capacity),
		capacity: capacity,
	}
}

// AddState allocates and returns a fresh state with no transitions.
func (b *Builder) AddState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, &state{id: id, charTo: make(map[byte][]StateID)})
	return id
}

// AddCharTransition adds to to the set of states δ(from, c) targets.
// Multiple calls with the same (from, c) and different to accumulate —
// they do not overwrite one another — since δ is set-valued: a
// transposed NFA built by dfa.Reverse routinely needs several targets
// for one (state, symbol) pair.
func (b *Builder) AddCharTransition(from StateID, c byte, to StateID) {
	if int(from) >= len(b.states) || int(to) >= len(b.states) {
		invalidOperation("AddCharTransition: state id out of range")
	}
	st := b.states[from]
	for _, existing := range st.charTo[c] {
		if existing == to {
			return
		}
	}
	st.charTo[c] = append(st.charTo[c], to)
}

// AddEpsilon adds an ε-edge from -> to.
func (b *Builder) AddEpsilon(from, to StateID) {
	if int(from) >= len(b.states) || int(to) >= len(b.states) {
		invalidOperation("AddEpsilon: state id out of range")
	}
	b.states[from].eps = append(b.states[from].eps, to)
}

// NumStates returns how many states have been allocated so far.
func (b *Builder) NumStates() int { return len(b.states) }

// singleton returns a fresh state set containing only id.
func (b *Builder) singleton(id StateID) *sparse.Set {
	s := sparse.New(b.capacity)
	s.Insert(uint32(id))
	return s
}

// union returns a fresh state set containing every member of a and b.
// Used by Thompson's Union case, which introduces no fresh states:
// only the index sets grow.
func (b *Builder) union(a, c *sparse.Set) *sparse.Set {
	s := sparse.New(b.capacity)
	a.Iter(func(v uint32) { s.Insert(v) })
	c.Iter(func(v uint32) { s.Insert(v) })
	return s
}

// Build finalizes the NFA with the given initial/final state sets.
func (b *Builder) Build(init, final *sparse.Set) *NFA {
	return &NFA{states: b.states, init: init, final: final}
}
