// Package sparse provides a sparse set data structure for efficient
// membership testing over a small, known universe of uint32 values —
// here, NFA state IDs.
package sparse

import "sort"

// Set is a set of uint32 values supporting O(1) insertion, membership
// testing, and iteration, plus an order-invariant canonical form used to
// key subset-construction's DFA-state cache (a sorted-vector strategy
// for set-as-state hashing).
type Set struct {
	sparse []uint32 // value -> index in dense, valid only when Contains(value)
	dense  []uint32
	size   uint32
}

// New creates a Set whose universe is [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. No-op if already present.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear empties the set in O(1), keeping the backing arrays.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Size returns the number of elements in the set.
func (s *Set) Size() int { return int(s.size) }

// IsEmpty reports whether the set has no elements.
func (s *Set) IsEmpty() bool { return s.size == 0 }

// Values returns the dense slice of elements in insertion order. Valid
// until the next mutation.
func (s *Set) Values() []uint32 { return s.dense[:s.size] }

// Iter calls f for each element. Iteration order is unspecified.
func (s *Set) Iter(f func(uint32)) {
	for i := uint32(0); i < s.size; i++ {
		f(s.dense[i])
	}
}

// Canonical returns a sorted copy of the set's elements: two sets
// containing the same NFA states produce identical Canonical() output
// regardless of insertion order, which is exactly the order-invariant
// identity a set used as a DFA state requires. The returned slice can
// be converted to a string (via Key) to key a map.
func (s *Set) Canonical() []uint32 {
	out := make([]uint32, s.size)
	copy(out, s.dense[:s.size])
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Key returns a value directly usable as a Go map key, built from the
// set's canonical form. Two Sets with the same members always produce
// the same Key, independent of insertion order.
func (s *Set) Key() string {
	canon := s.Canonical()
	// 5 bytes per uint32 (4 little-endian bytes plus a separator, fixed
	// width) keeps the encoding injective.
	buf := make([]byte, 0, len(canon)*5)
	for _, v := range canon {
		buf = append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), ',')
	}
	return string(buf)
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	c := &Set{
		sparse: make([]uint32, len(s.sparse)),
		dense:  make([]uint32, len(s.dense)),
		size:   s.size,
	}
	copy(c.sparse, s.sparse)
	copy(c.dense, s.dense)
	return c
}
