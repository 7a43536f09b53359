package dfa

// DecideString implements spec.md §4.G decideString for a DFA: follow the
// transition function from the start state one symbol at a time. Unlike the
// NFA engine there is no epsilon-closure step; a DFA's start state is always
// the recognizer's actual initial state. Returns (accepted, true) if w could
// be decided, or (false, false) if w contains a character outside
// d.Alphabet(). A walk that falls off the sparse transition table enters the
// implicit dead state: w is then rejected (false, true), unless a later
// character is outside the alphabet, which still makes w undecidable.
func DecideString(d *DFA, w []rune) (accepted bool, ok bool) {
	current := d.start
	dead := false
	for _, c := range w {
		if !d.alphabet.Contains(c) {
			return false, false
		}
		if dead {
			continue
		}
		next, has := d.Transition(current, c)
		if !has {
			dead = true
			continue
		}
		current = next
	}
	return !dead && d.IsAccept(current), true
}
