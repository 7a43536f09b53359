package nfa

import (
	"fmt"

	"github.com/rburd/Regex-to-DFA-Constructor/ast"
)

// Builder assembles an NFA incrementally, in the same spirit as the
// teacher's nfa.Builder: states are allocated monotonically, transitions
// are patched in as they're discovered, and Build validates everything
// before handing back an immutable NFA.
type Builder struct {
	alphabet  ast.Alphabet
	numStates int
	charTrans map[StateID]map[rune][]StateID
	epsilon   map[StateID][]StateID
	start     StateID
	accept    map[StateID]bool
}

// NewBuilder creates an empty Builder over the given alphabet.
func NewBuilder(alphabet ast.Alphabet) *Builder {
	return &Builder{
		alphabet:  alphabet,
		charTrans: make(map[StateID]map[rune][]StateID),
		epsilon:   make(map[StateID][]StateID),
		accept:    make(map[StateID]bool),
		start:     InvalidState,
	}
}

// AddState allocates a fresh state and returns its ID.
func (b *Builder) AddState() StateID {
	id := StateID(b.numStates)
	b.numStates++
	return id
}

// AddCharTransition adds q -c-> next to delta.
func (b *Builder) AddCharTransition(q StateID, c rune, next StateID) {
	if b.charTrans[q] == nil {
		b.charTrans[q] = make(map[rune][]StateID)
	}
	b.charTrans[q][c] = append(b.charTrans[q][c], next)
}

// AddEpsilon adds q -eps-> next to delta.
func (b *Builder) AddEpsilon(q, next StateID) {
	b.epsilon[q] = append(b.epsilon[q], next)
}

// SetStart sets q0.
func (b *Builder) SetStart(q StateID) { b.start = q }

// SetAccept marks q as accepting (adds it to F).
func (b *Builder) SetAccept(q StateID) { b.accept[q] = true }

// NumStates returns the number of states allocated so far.
func (b *Builder) NumStates() int { return b.numStates }

// Validate checks the invariants of spec.md §3: every referenced state is
// in range, and every Some(c) transition uses a character from Sigma.
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: "start state not set", State: InvalidState}
	}
	if int(b.start) >= b.numStates {
		return &BuildError{Message: "start state out of range", State: b.start}
	}
	inRange := func(q StateID) bool { return q >= 0 && int(q) < b.numStates }
	for q, targets := range b.epsilon {
		if !inRange(q) {
			return &BuildError{Message: "epsilon source out of range", State: q}
		}
		for _, t := range targets {
			if !inRange(t) {
				return &BuildError{Message: fmt.Sprintf("epsilon target %d out of range", t), State: q}
			}
		}
	}
	for q, byChar := range b.charTrans {
		if !inRange(q) {
			return &BuildError{Message: "char-transition source out of range", State: q}
		}
		for c, targets := range byChar {
			if !b.alphabet.Contains(c) {
				return &BuildError{Message: fmt.Sprintf("transition on %q outside alphabet", c), State: q}
			}
			for _, t := range targets {
				if !inRange(t) {
					return &BuildError{Message: fmt.Sprintf("char-transition target %d out of range", t), State: q}
				}
			}
		}
	}
	for q := range b.accept {
		if !inRange(q) {
			return &BuildError{Message: "accept state out of range", State: q}
		}
	}
	return nil
}

// Build finalizes the NFA, validating first.
func (b *Builder) Build() (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &NFA{
		numStates: b.numStates,
		alphabet:  b.alphabet,
		charTrans: b.charTrans,
		epsilon:   b.epsilon,
		start:     b.start,
		accept:    b.accept,
	}, nil
}

// shift returns a copy of targets with every state ID increased by delta.
// This is how union/concat/kleene renumber an embedded sub-NFA's states
// when splicing it into a larger Builder.
func shift(targets []StateID, delta StateID) []StateID {
	out := make([]StateID, len(targets))
	for i, t := range targets {
		out[i] = t + delta
	}
	return out
}

// embed copies every state of src into b, shifting all of src's state IDs
// by offset. src's start and accept markings are not copied. b's alphabet
// is assumed to already equal src's.
func embed(b *Builder, src *NFA, offset StateID) {
	for q := StateID(0); int(q) < src.numStates; q++ {
		b.AddState()
	}
	for q := StateID(0); int(q) < src.numStates; q++ {
		for c, targets := range src.charTrans[q] {
			for _, t := range shift(targets, offset) {
				b.AddCharTransition(q+offset, c, t)
			}
		}
		for _, t := range shift(src.epsilon[q], offset) {
			b.AddEpsilon(q+offset, t)
		}
	}
}

// SingleCharNFA builds the two-state NFA for Char{c}: delta(0, Some c) =
// {1}, accept = {1}. Matches spec.md §8 scenario S1 when c is the sole
// character of a singleton alphabet.
func SingleCharNFA(c rune, alphabet ast.Alphabet) *NFA {
	b := NewBuilder(alphabet)
	q0 := b.AddState()
	q1 := b.AddState()
	b.AddCharTransition(q0, c, q1)
	b.SetStart(q0)
	b.SetAccept(q1)
	nfa, err := b.Build()
	if err != nil {
		panic(err) // reached only if c is outside alphabet; CharClassNFA checks this first
	}
	return nfa
}

// EmptyStringNFA builds the one-state NFA matching exactly the empty
// string: a single state that is both start and accept.
func EmptyStringNFA(alphabet ast.Alphabet) *NFA {
	b := NewBuilder(alphabet)
	q0 := b.AddState()
	b.SetStart(q0)
	b.SetAccept(q0)
	nfa, _ := b.Build()
	return nfa
}

// EmptySetNFA builds the one-state NFA matching no string: a single state,
// no transitions, and an empty accept set.
func EmptySetNFA(alphabet ast.Alphabet) *NFA {
	b := NewBuilder(alphabet)
	q0 := b.AddState()
	b.SetStart(q0)
	nfa, _ := b.Build()
	return nfa
}

// AcceptsEmptyNFA returns a copy of n with its start state added to F. This
// is the spec's designated fix for patterns whose start can only reach an
// accept state via epsilon, since DecideString deliberately does not
// epsilon-close the initial state set (see spec.md §4.C).
func AcceptsEmptyNFA(n *NFA) *NFA {
	b := NewBuilder(n.alphabet)
	embed(b, n, 0)
	b.SetStart(n.start)
	for _, q := range n.AcceptStates() {
		b.SetAccept(q)
	}
	b.SetAccept(n.start)
	nfa, _ := b.Build()
	return nfa
}

// UnionNFA builds n1|n2: a fresh start with epsilon transitions to the
// (shifted) starts of n1 and n2, and epsilon transitions from each original
// accept state to a fresh shared accept state. n1's states are renumbered
// by +1, n2's by +(|n1|+1), matching spec.md §4.B exactly (see S2).
func UnionNFA(n1, n2 *NFA) *NFA {
	b := NewBuilder(n1.alphabet)
	start := b.AddState() // state 0

	off1 := StateID(1)
	embed(b, n1, off1)
	off2 := off1 + StateID(n1.numStates)
	embed(b, n2, off2)

	accept := b.AddState()

	b.AddEpsilon(start, n1.start+off1)
	b.AddEpsilon(start, n2.start+off2)
	for _, q := range n1.AcceptStates() {
		b.AddEpsilon(q+off1, accept)
	}
	for _, q := range n2.AcceptStates() {
		b.AddEpsilon(q+off2, accept)
	}

	b.SetStart(start)
	b.SetAccept(accept)
	nfa, _ := b.Build()
	return nfa
}

// ConcatNFA builds n1 n2: a fresh start with epsilon transitions to
// *both* the shifted start of n1 and the shifted start of n2 (a deliberate
// over-connection preserved from the source design — see spec.md §9 Open
// Question 1 — rather than only to n1's start), an epsilon transition from
// n1's old accept to n2's start, and n2's accept as the final accept.
func ConcatNFA(n1, n2 *NFA) *NFA {
	b := NewBuilder(n1.alphabet)
	start := b.AddState() // state 0

	off1 := StateID(1)
	embed(b, n1, off1)
	off2 := off1 + StateID(n1.numStates)
	embed(b, n2, off2)

	b.AddEpsilon(start, n1.start+off1)
	b.AddEpsilon(start, n2.start+off2)
	for _, q := range n1.AcceptStates() {
		b.AddEpsilon(q+off1, n2.start+off2)
	}

	b.SetStart(start)
	for _, q := range n2.AcceptStates() {
		b.SetAccept(q + off2)
	}
	nfa, _ := b.Build()
	return nfa
}

// KleeneNFA builds n*: a fresh start with epsilon transitions to the
// shifted inner start and to a fresh accept, plus epsilon transitions from
// the inner accept back to the inner start and forward to the fresh accept.
//
// Precondition (spec.md §9 Open Question 2): n must have at least 2 states.
// Thompson compilation never calls KleeneNFA on a smaller n (see
// nfa.ThompsonNFA). The back edges run from each accept state of n to n's
// start; they are not computed from state indices.
func KleeneNFA(n *NFA) *NFA {
	b := NewBuilder(n.alphabet)
	start := b.AddState() // state 0

	off := StateID(1)
	embed(b, n, off)

	accept := b.AddState()

	b.AddEpsilon(start, n.start+off)
	b.AddEpsilon(start, accept)
	for _, q := range n.AcceptStates() {
		b.AddEpsilon(q+off, n.start+off)
		b.AddEpsilon(q+off, accept)
	}

	b.SetStart(start)
	b.SetAccept(accept)
	nfa, _ := b.Build()
	return nfa
}

// CharClassNFA builds the NFA for Char{cs}: each character in cs becomes a
// SingleCharNFA, folded together with UnionNFA. alphabet is the full
// alphabet of the enclosing regex, not merely cs, per spec.md §4.B.
func CharClassNFA(cs []rune, alphabet ast.Alphabet) (*NFA, error) {
	if len(cs) == 0 {
		return nil, ErrEmptyCharSet
	}
	for _, c := range cs {
		if !alphabet.Contains(c) {
			return nil, fmt.Errorf("nfa: character %q is not in the alphabet", c)
		}
	}
	result := SingleCharNFA(cs[0], alphabet)
	for _, c := range cs[1:] {
		result = UnionNFA(result, SingleCharNFA(c, alphabet))
	}
	return result, nil
}

// ThompsonNFA compiles a regex tree into an NFA via Thompson's
// construction, dispatching to the primitives above. alphabet should
// normally be ast.AlphabetOf(r); it is taken as a parameter so callers
// compiling a sub-expression can supply the full enclosing alphabet rather
// than the sub-expression's own (narrower) one.
func ThompsonNFA(r *ast.Regex, alphabet ast.Alphabet) (*NFA, error) {
	switch r.Kind() {
	case ast.KindVoid:
		return EmptySetNFA(alphabet), nil
	case ast.KindEmpty:
		return EmptyStringNFA(alphabet), nil
	case ast.KindChar:
		return CharClassNFA(r.Chars(), alphabet)
	case ast.KindAlt:
		left, err := ThompsonNFA(r.Left(), alphabet)
		if err != nil {
			return nil, err
		}
		right, err := ThompsonNFA(r.Right(), alphabet)
		if err != nil {
			return nil, err
		}
		return UnionNFA(left, right), nil
	case ast.KindSeq:
		left, err := ThompsonNFA(r.Left(), alphabet)
		if err != nil {
			return nil, err
		}
		right, err := ThompsonNFA(r.Right(), alphabet)
		if err != nil {
			return nil, err
		}
		return ConcatNFA(left, right), nil
	case ast.KindStar:
		// ast.Star already canonicalizes Star(Void) and Star(Empty) to
		// Empty, so r.Left() here is never a regex whose NFA has fewer
		// than 2 states (the KleeneNFA precondition, spec.md §9 Open
		// Question 2).
		inner, err := ThompsonNFA(r.Left(), alphabet)
		if err != nil {
			return nil, err
		}
		return KleeneNFA(inner), nil
	default:
		return nil, fmt.Errorf("nfa: unknown regex kind %v", r.Kind())
	}
}
