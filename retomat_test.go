package retomat

import "testing"

func checkScenario(t *testing.T, postfix string, cases map[string]bool) {
	t.Helper()
	m, err := Compile(postfix)
	if err != nil {
		t.Fatalf("Compile(%q): %v", postfix, err)
	}
	for w, want := range cases {
		got, err := m.Accept(w)
		if err != nil {
			t.Fatalf("Accept(%q): %v", w, err)
		}
		if got != want {
			t.Errorf("%q: Accept(%q) = %v, want %v", postfix, w, got, want)
		}
	}
}

func TestScenario1Concat(t *testing.T) {
	checkScenario(t, "ab@", map[string]bool{"ab": true, "": false, "a": false, "abc": false})
}

func TestScenario2Star(t *testing.T) {
	checkScenario(t, "ab@*", map[string]bool{"": true, "ab": true, "abab": true, "a": false, "aba": false})
}

func TestScenario3Union(t *testing.T) {
	checkScenario(t, "ab|", map[string]bool{"a": true, "b": true, "": false, "ab": false})
}

func TestScenario4WildcardStar(t *testing.T) {
	m, err := Compile(".*")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, w := range []string{"", "a", "Zz9", "hello123World"} {
		ok, err := m.Accept(w)
		if err != nil {
			t.Fatalf("Accept(%q): %v", w, err)
		}
		if !ok {
			t.Errorf(".* must accept %q", w)
		}
	}
}

func TestScenario5StarThenLiteral(t *testing.T) {
	checkScenario(t, "a*b@", map[string]bool{"b": true, "ab": true, "aaab": true, "": false, "a": false, "ba": false})
}

func TestScenario6Optional(t *testing.T) {
	checkScenario(t, "a?b@", map[string]bool{"b": true, "ab": true, "": false, "aab": false})
}

func TestAllThreeStagesAgree(t *testing.T) {
	postfix := "a*b@"
	word := "aaab"

	nfaMatcher := New()
	if err := nfaMatcher.Compile(postfix, Config{Alphabet: DefaultConfig().Alphabet, Strategy: StrategyNFA}); err != nil {
		t.Fatalf("Compile (NFA): %v", err)
	}
	dfaMatcher := New()
	if err := dfaMatcher.Compile(postfix, Config{Alphabet: DefaultConfig().Alphabet, Strategy: StrategyDFA}); err != nil {
		t.Fatalf("Compile (DFA): %v", err)
	}
	minMatcher := New()
	if err := minMatcher.Compile(postfix, Config{Alphabet: DefaultConfig().Alphabet, Strategy: StrategyMinimalDFA}); err != nil {
		t.Fatalf("Compile (minimal DFA): %v", err)
	}

	for _, w := range []string{"", "b", "ab", "aaab", "a", "ba"} {
		a, _ := nfaMatcher.Accept(w)
		b, _ := dfaMatcher.Accept(w)
		c, _ := minMatcher.Accept(w)
		if a != b || b != c {
			t.Fatalf("disagreement on %q: nfa=%v dfa=%v minimal=%v", w, a, b, c)
		}
	}
	if ok, _ := minMatcher.Accept(word); !ok {
		t.Fatalf("all three stages must accept %q", word)
	}
}

func TestMalformedRegexFails(t *testing.T) {
	_, err := Compile("@")
	if err == nil {
		t.Fatal("expected error for malformed postfix")
	}
}

func TestLifecycle(t *testing.T) {
	m := New()
	if _, err := m.Accept("a"); err == nil {
		t.Fatal("Accept before Compile must fail")
	}

	if err := m.Compile("a", DefaultConfig()); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if ok, err := m.Accept("a"); err != nil || !ok {
		t.Fatalf("Accept(\"a\") = %v, %v; want true, nil", ok, err)
	}

	m.Release()
	if _, err := m.Accept("a"); err != ErrReleased {
		t.Fatalf("Accept after Release: got %v, want ErrReleased", err)
	}
}

func TestEmptyStringAcceptedIffLanguageContainsEpsilon(t *testing.T) {
	m := MustCompile("a*")
	ok, err := m.Accept("")
	if err != nil || !ok {
		t.Fatalf("a* must accept the empty string, got %v, %v", ok, err)
	}

	m2 := MustCompile("a")
	ok2, err2 := m2.Accept("")
	if err2 != nil || ok2 {
		t.Fatalf("\"a\" must not accept the empty string, got %v, %v", ok2, err2)
	}
}
