package dfa

// DeltaStar advances one state per input symbol via δ, starting at q0.
// Returns (InvalidState, false) the moment a symbol outside the DFA's
// alphabet is encountered: such a string cannot possibly belong to the
// language this DFA describes.
func (d *DFA) DeltaStar(w string) (StateID, bool) {
	state := d.start
	for i := 0; i < len(w); i++ {
		next, ok := d.Step(state, w[i])
		if !ok {
			return InvalidState, false
		}
		state = next
	}
	return state, true
}

// Accept decides whether w belongs to the DFA's language: accept iff
// the final state reached is in F. The total-transition invariant means
// no absence checks are needed on the hot path for in-alphabet input;
// out-of-alphabet input is rejected outright.
func (d *DFA) Accept(w string) bool {
	state, ok := d.DeltaStar(w)
	if !ok {
		return false
	}
	return d.IsFinal(state)
}
