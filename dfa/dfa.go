// Package dfa implements deterministic finite automata: the subset
// (Thompson) and Brzozowski constructions that build a DFA, Moore
// partition-refinement minimization, and string recognition.
package dfa

import (
	"fmt"
	"sort"

	"github.com/rburd/Regex-to-DFA-Constructor/ast"
)

// StateID uniquely identifies a DFA state. States are always a dense range
// 0..N-1.
type StateID int

// InvalidState is a sentinel for "no such state".
const InvalidState StateID = -1

// DFA is an immutable deterministic finite automaton: the tuple
// (Q, Sigma, delta, q0, F). delta is a sparse partial function; an absent
// (state, char) entry means the implicit dead transition.
type DFA struct {
	numStates int
	alphabet  ast.Alphabet
	trans     map[StateID]map[rune]StateID
	start     StateID
	accept    map[StateID]bool
}

// NumStates returns |Q|.
func (d *DFA) NumStates() int { return d.numStates }

// Alphabet returns Sigma.
func (d *DFA) Alphabet() ast.Alphabet { return d.alphabet }

// Start returns q0.
func (d *DFA) Start() StateID { return d.start }

// IsAccept reports whether q is in F.
func (d *DFA) IsAccept(q StateID) bool { return d.accept[q] }

// States returns every state 0..N-1.
func (d *DFA) States() []StateID {
	out := make([]StateID, d.numStates)
	for i := range out {
		out[i] = StateID(i)
	}
	return out
}

// AcceptStates returns F as a sorted slice.
func (d *DFA) AcceptStates() []StateID {
	out := make([]StateID, 0, len(d.accept))
	for q, ok := range d.accept {
		if ok {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Transition returns delta(q, c) and whether it is present. A false ok
// means the implicit dead transition.
func (d *DFA) Transition(q StateID, c rune) (next StateID, ok bool) {
	next, ok = d.trans[q][c]
	return next, ok
}

// String returns a debug representation of d.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states=%d, start=%d, accept=%v, alphabet=%v}",
		d.numStates, d.start, d.AcceptStates(), d.alphabet)
}

// Equal implements the structural equality contract of spec.md §4.I:
// identical start, state count, accept set, transition mapping and
// alphabet, all compared order-independently.
func Equal(a, b *DFA) bool {
	if a.numStates != b.numStates || a.start != b.start {
		return false
	}
	if !a.alphabet.Equal(b.alphabet) {
		return false
	}
	if len(a.AcceptStates()) != len(b.AcceptStates()) {
		return false
	}
	for _, q := range a.AcceptStates() {
		if !b.IsAccept(q) {
			return false
		}
	}
	for q := StateID(0); int(q) < a.numStates; q++ {
		at, bt := a.trans[q], b.trans[q]
		if len(at) != len(bt) {
			return false
		}
		for c, target := range at {
			if bTarget, ok := bt[c]; !ok || bTarget != target {
				return false
			}
		}
	}
	return true
}
