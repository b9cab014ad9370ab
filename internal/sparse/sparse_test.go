package sparse

import "testing"

func TestInsertContains(t *testing.T) {
	s := New(8)
	if s.Contains(3) {
		t.Fatal("empty set should not contain 3")
	}
	s.Insert(3)
	if !s.Contains(3) {
		t.Fatal("set should contain 3 after Insert")
	}
	if s.Size() != 1 {
		t.Fatalf("size = %d, want 1", s.Size())
	}
	s.Insert(3) // no-op
	if s.Size() != 1 {
		t.Fatal("duplicate Insert must not grow the set")
	}
}

func TestClear(t *testing.T) {
	s := New(4)
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	if !s.IsEmpty() {
		t.Fatal("expected empty set after Clear")
	}
	if s.Contains(1) {
		t.Fatal("cleared set should not contain old members")
	}
}

func TestCanonicalOrderInvariant(t *testing.T) {
	a := New(10)
	a.Insert(5)
	a.Insert(1)
	a.Insert(3)

	b := New(10)
	b.Insert(3)
	b.Insert(5)
	b.Insert(1)

	ca, cb := a.Canonical(), b.Canonical()
	if len(ca) != len(cb) {
		t.Fatalf("canonical lengths differ: %d vs %d", len(ca), len(cb))
	}
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("canonical forms differ at %d: %d vs %d", i, ca[i], cb[i])
		}
	}
	if a.Key() != b.Key() {
		t.Fatal("insertion-order-independent sets must produce the same Key")
	}
}

func TestKeyDistinguishesDifferentSets(t *testing.T) {
	a := New(10)
	a.Insert(1)
	b := New(10)
	b.Insert(2)
	if a.Key() == b.Key() {
		t.Fatal("different sets must produce different keys")
	}
}

func TestClone(t *testing.T) {
	a := New(10)
	a.Insert(1)
	b := a.Clone()
	b.Insert(2)
	if a.Contains(2) {
		t.Fatal("Clone must be independent of the original")
	}
	if !b.Contains(1) || !b.Contains(2) {
		t.Fatal("clone should contain original and new members")
	}
}
