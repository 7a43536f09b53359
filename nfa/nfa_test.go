package nfa

import (
	"testing"

	"github.com/rburd/Regex-to-DFA-Constructor/ast"
)

// TestSingleCharNFA_S1 reproduces spec.md §8 scenario S1.
func TestSingleCharNFA_S1(t *testing.T) {
	alphabet := ast.Alphabet{'a'}
	n := SingleCharNFA('a', alphabet)

	if n.NumStates() != 2 {
		t.Fatalf("NumStates() = %d, want 2", n.NumStates())
	}
	if n.Start() != 0 {
		t.Fatalf("Start() = %d, want 0", n.Start())
	}
	if got := n.AcceptStates(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("AcceptStates() = %v, want [1]", got)
	}
	if got := n.CharTargets(0, 'a'); len(got) != 1 || got[0] != 1 {
		t.Fatalf("CharTargets(0,'a') = %v, want [1]", got)
	}
}

// TestUnionNFA_S2 reproduces spec.md §8 scenario S2.
func TestUnionNFA_S2(t *testing.T) {
	alphabet := ast.Alphabet{'a', 'b'}
	n := UnionNFA(SingleCharNFA('a', alphabet), SingleCharNFA('b', alphabet))

	if n.NumStates() != 6 {
		t.Fatalf("NumStates() = %d, want 6", n.NumStates())
	}
	if got := n.AcceptStates(); len(got) != 1 || got[0] != 5 {
		t.Fatalf("AcceptStates() = %v, want [5]", got)
	}

	wantEpsilon := map[StateID][]StateID{
		0: {1, 3},
		2: {5},
		4: {5},
	}
	for q, want := range wantEpsilon {
		if !stateSliceEqual(n.EpsilonTargets(q), want) {
			t.Errorf("EpsilonTargets(%d) = %v, want %v", q, n.EpsilonTargets(q), want)
		}
	}
	if got := n.CharTargets(1, 'a'); !stateSliceEqual(got, []StateID{2}) {
		t.Errorf("CharTargets(1,'a') = %v, want [2]", got)
	}
	if got := n.CharTargets(3, 'b'); !stateSliceEqual(got, []StateID{4}) {
		t.Errorf("CharTargets(3,'b') = %v, want [4]", got)
	}
}

func TestEmptyStringAndEmptySetNFA(t *testing.T) {
	alphabet := ast.Alphabet{'a'}

	es := EmptyStringNFA(alphabet)
	if es.NumStates() != 1 || es.Start() != 0 || !es.IsAccept(0) {
		t.Errorf("EmptyStringNFA malformed: %v", es)
	}
	if ok, decidable := DecideString(es, nil); !ok || !decidable {
		t.Errorf("EmptyStringNFA should accept empty string")
	}

	void := EmptySetNFA(alphabet)
	if void.NumStates() != 1 || len(void.AcceptStates()) != 0 {
		t.Errorf("EmptySetNFA malformed: %v", void)
	}
	if ok, decidable := DecideString(void, nil); ok || !decidable {
		t.Errorf("EmptySetNFA should reject the empty string")
	}
}

// TestDecideString_UnclosedInitialState checks the deliberate edge case of
// spec.md §4.C: a union NFA's start reaches its accept states only via
// epsilon, so it rejects the empty string even though each branch can match
// a string that the regex ought to accept once the string is nonempty.
func TestDecideString_UnclosedInitialState(t *testing.T) {
	alphabet := ast.Alphabet{'a', 'b'}
	n := UnionNFA(SingleCharNFA('a', alphabet), SingleCharNFA('b', alphabet))

	accepted, ok := DecideString(n, nil)
	if !ok {
		t.Fatal("empty string should be decidable")
	}
	if accepted {
		t.Fatal("union NFA start set is not epsilon-closed; empty string must be rejected")
	}

	fixed := AcceptsEmptyNFA(n)
	accepted, ok = DecideString(fixed, nil)
	if !ok || !accepted {
		t.Fatal("AcceptsEmptyNFA should make the empty string accepted")
	}
}

func TestDecideString_Undecidable(t *testing.T) {
	alphabet := ast.Alphabet{'a'}
	n := SingleCharNFA('a', alphabet)
	if _, ok := DecideString(n, []rune{'z'}); ok {
		t.Fatal("character outside alphabet must be undecidable")
	}
}

func TestConcatAndKleeneNFA_DecideString(t *testing.T) {
	alphabet := ast.Alphabet{'a', 'b'}
	ab := ConcatNFA(SingleCharNFA('a', alphabet), SingleCharNFA('b', alphabet))
	star := KleeneNFA(ab)

	tests := []struct {
		w    string
		want bool
	}{
		{"abab", true},
		{"aba", false},
		{"", true},
	}
	for _, tt := range tests {
		got, ok := DecideString(star, []rune(tt.w))
		if !ok {
			t.Fatalf("DecideString(%q) undecidable", tt.w)
		}
		if got != tt.want {
			t.Errorf("DecideString(%q) = %v, want %v", tt.w, got, tt.want)
		}
	}
}

func TestBuilderValidate_RejectsOutOfAlphabetChar(t *testing.T) {
	b := NewBuilder(ast.Alphabet{'a'})
	q0 := b.AddState()
	q1 := b.AddState()
	b.AddCharTransition(q0, 'z', q1)
	b.SetStart(q0)
	b.SetAccept(q1)

	if _, err := b.Build(); err == nil {
		t.Fatal("expected Build to reject a transition outside the alphabet")
	}
}

// TestEpsilonClosure_FollowsChainAndDedups builds a diamond of epsilon
// transitions (0->1, 1->2, 1->3, 2->3) so state 3 is reachable via two
// distinct paths, and checks the closure of {0} visits every state exactly
// once despite that overlap.
func TestEpsilonClosure_FollowsChainAndDedups(t *testing.T) {
	alphabet := ast.Alphabet{'a'}
	b := NewBuilder(alphabet)
	q0, q1, q2, q3 := b.AddState(), b.AddState(), b.AddState(), b.AddState()
	b.AddEpsilon(q0, q1)
	b.AddEpsilon(q1, q2)
	b.AddEpsilon(q1, q3)
	b.AddEpsilon(q2, q3)
	b.SetStart(q0)
	b.SetAccept(q3)
	n, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	closure := EpsilonClosure(n, NewStateSet(q0))
	if closure.Len() != 4 {
		t.Fatalf("EpsilonClosure(%v) has %d states, want 4", q0, closure.Len())
	}
	for _, q := range []StateID{q0, q1, q2, q3} {
		if !closure.Contains(q) {
			t.Errorf("EpsilonClosure(%v) missing state %d", q0, q)
		}
	}

	if !closure.IntersectsAccept(n) {
		t.Error("closure of start should intersect the accept set via the epsilon chain")
	}
}

func TestNFAEqual(t *testing.T) {
	alphabet := ast.Alphabet{'a'}
	a := SingleCharNFA('a', alphabet)
	b := SingleCharNFA('a', alphabet)
	if !Equal(a, b) {
		t.Error("two independently built identical NFAs should be Equal")
	}
	c := SingleCharNFA('a', ast.Alphabet{'a', 'b'})
	if Equal(a, c) {
		t.Error("NFAs with different alphabets should not be Equal")
	}
}
