package dfa

// Minimize computes the canonical minimal DFA for d via Brzozowski's
// double-reversal algorithm:
//
//	minimal = Determinize(Reverse(Determinize(Reverse(d))))
//
// Grounded on original algorithm.c's brzozowski(). Worst-case
// exponential in theory; acceptable here because the patterns this
// matcher compiles are small.
func Minimize(d *DFA) (*DFA, error) {
	mirror, err := Reverse(d)
	if err != nil {
		return nil, &DFAError{Op: "minimize: reverse pass 1", Err: err}
	}
	mirrorDet, err := Determinize(mirror, d.alphabet)
	if err != nil {
		return nil, &DFAError{Op: "minimize: determinize pass 1", Err: err}
	}
	back, err := Reverse(mirrorDet)
	if err != nil {
		return nil, &DFAError{Op: "minimize: reverse pass 2", Err: err}
	}
	minimal, err := Determinize(back, d.alphabet)
	if err != nil {
		return nil, &DFAError{Op: "minimize: determinize pass 2", Err: err}
	}
	return minimal, nil
}
