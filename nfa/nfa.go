package nfa

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rburd/Regex-to-DFA-Constructor/ast"
)

// StateID uniquely identifies an NFA state. States are always a dense range
// 0..N-1, as produced by Builder.
type StateID int

// InvalidState is a sentinel for "no such state".
const InvalidState StateID = -1

// NFA is an immutable nondeterministic finite automaton: the tuple
// (Q, Sigma, delta, q0, F). delta is split into charTrans (the Some(c)
// transitions) and epsilon (the None transitions); both are sparse maps, so
// a state with no outgoing edges of a kind simply has no entry.
type NFA struct {
	numStates int
	alphabet  ast.Alphabet
	charTrans map[StateID]map[rune][]StateID
	epsilon   map[StateID][]StateID
	start     StateID
	accept    map[StateID]bool
}

// NumStates returns |Q|.
func (n *NFA) NumStates() int { return n.numStates }

// Alphabet returns Sigma.
func (n *NFA) Alphabet() ast.Alphabet { return n.alphabet }

// Start returns q0.
func (n *NFA) Start() StateID { return n.start }

// IsAccept reports whether q is in F.
func (n *NFA) IsAccept(q StateID) bool { return n.accept[q] }

// States returns every state 0..N-1.
func (n *NFA) States() []StateID {
	out := make([]StateID, n.numStates)
	for i := range out {
		out[i] = StateID(i)
	}
	return out
}

// AcceptStates returns F as a sorted slice.
func (n *NFA) AcceptStates() []StateID {
	out := make([]StateID, 0, len(n.accept))
	for q, ok := range n.accept {
		if ok {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CharTargets returns delta(q, Some(c)), the (possibly empty) set of states
// reachable from q by consuming c directly.
func (n *NFA) CharTargets(q StateID, c rune) []StateID {
	return n.charTrans[q][c]
}

// EpsilonTargets returns delta(q, None), the states reachable from q via a
// single epsilon transition.
func (n *NFA) EpsilonTargets(q StateID) []StateID {
	return n.epsilon[q]
}

// String returns a debug representation of n.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states=%d, start=%d, accept=%v, alphabet=%v}",
		n.numStates, n.start, n.AcceptStates(), n.alphabet)
}

// Equal implements the structural equality contract of spec.md §4.I:
// identical start, state count, accept set, transition mapping and
// alphabet. Transition maps are compared as mappings, independent of any
// incidental ordering; alphabets are compared as sets.
func Equal(a, b *NFA) bool {
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
	return transitionsEqual(a, b)
}

func transitionsEqual(a, b *NFA) bool {
	for q := StateID(0); int(q) < a.numStates; q++ {
		if !stateSliceEqual(a.epsilon[q], b.epsilon[q]) {
			return false
		}
		aChars, bChars := a.charTrans[q], b.charTrans[q]
		if len(aChars) != len(bChars) {
			return false
		}
		for c, targets := range aChars {
			if !stateSliceEqual(targets, bChars[c]) {
				return false
			}
		}
	}
	return true
}

func stateSliceEqual(a, b []StateID) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := append([]StateID(nil), a...), append([]StateID(nil), b...)
	sort.Slice(as, func(i, j int) bool { return as[i] < as[j] })
	sort.Slice(bs, func(i, j int) bool { return bs[i] < bs[j] })
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// StateSet is a set of NFA states, as produced by EpsilonClosure and
// SymbolReachable. It carries a canonical Key() so sets of NFA states can be
// used as map keys during subset construction, the same role
// ComputeStateKey plays for the teacher's lazy-DFA state cache.
type StateSet struct {
	members map[StateID]bool
}

// NewStateSet builds a StateSet containing the given states.
func NewStateSet(states ...StateID) *StateSet {
	s := &StateSet{members: make(map[StateID]bool, len(states))}
	for _, q := range states {
		s.members[q] = true
	}
	return s
}

// Add inserts q into the set.
func (s *StateSet) Add(q StateID) { s.members[q] = true }

// Contains reports whether q is in the set.
func (s *StateSet) Contains(q StateID) bool { return s.members[q] }

// Len returns the number of states in the set.
func (s *StateSet) Len() int { return len(s.members) }

// IsEmpty reports whether the set has no members.
func (s *StateSet) IsEmpty() bool { return len(s.members) == 0 }

// ToSlice returns the set's members in ascending order.
func (s *StateSet) ToSlice() []StateID {
	out := make([]StateID, 0, len(s.members))
	for q := range s.members {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy of the set.
func (s *StateSet) Clone() *StateSet {
	c := NewStateSet()
	for q := range s.members {
		c.members[q] = true
	}
	return c
}

// Key returns a canonical string identifying the set's membership,
// independent of insertion order. Two StateSets with the same members
// always produce the same Key, which is what makes it safe to use as the
// corr map key during subset construction.
func (s *StateSet) Key() string {
	members := s.ToSlice()
	var b strings.Builder
	for i, q := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(q)))
	}
	return b.String()
}

// IntersectsAccept reports whether the set contains any accepting state of
// n.
func (s *StateSet) IntersectsAccept(n *NFA) bool {
	for q := range s.members {
		if n.IsAccept(q) {
			return true
		}
	}
	return false
}
