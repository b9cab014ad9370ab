package ast

import "testing"

func TestCharGroupPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty CharGroup")
		}
	}()
	CharGroup(nil)
}

func TestConcatPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil operand")
		}
	}()
	Concat(CharGroup([]byte("a")), nil)
}

func TestAccessors(t *testing.T) {
	a := CharGroup([]byte("a"))
	b := CharGroup([]byte("b"))
	c := Concat(a, b)

	if c.Kind() != KindConcat {
		t.Fatalf("got kind %v, want KindConcat", c.Kind())
	}
	if c.Left() != a || c.Right() != b {
		t.Fatal("Concat did not preserve operands")
	}

	u := Union(a, b)
	if u.Kind() != KindUnion || u.Left() != a || u.Right() != b {
		t.Fatal("Union did not preserve operands")
	}

	s := Star(a)
	if s.Kind() != KindStar || s.Child() != a {
		t.Fatal("Star did not preserve child")
	}

	e := Empty()
	if e.Kind() != KindEmpty || e.Left() != nil || e.Chars() != nil {
		t.Fatal("Empty should carry no payload")
	}
}

func TestCharGroupCopiesInput(t *testing.T) {
	chars := []byte("abc")
	n := CharGroup(chars)
	chars[0] = 'z'
	if n.Chars()[0] != 'a' {
		t.Fatal("CharGroup must copy its input slice")
	}
}

func TestString(t *testing.T) {
	// (ab)*  built as Star(Concat(a,b))
	n := Star(Concat(CharGroup([]byte("a")), CharGroup([]byte("b"))))
	got := n.String()
	want := "((ab))*"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
