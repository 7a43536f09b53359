// Package redfa implements compilation of regular expressions into
// minimal deterministic finite automata: a canonical regex AST, Thompson
// construction to an NFA, the subset construction from NFA to DFA,
// Brzozowski's derivative construction straight from a regex to a DFA, and
// Moore partition-refinement minimization. This file is the package's
// public facade; the algorithms themselves live in ast, nfa and dfa.
package redfa

import (
	"fmt"

	"github.com/rburd/Regex-to-DFA-Constructor/ast"
	"github.com/rburd/Regex-to-DFA-Constructor/dfa"
	"github.com/rburd/Regex-to-DFA-Constructor/nfa"
)

// Regex, Alphabet, NFA and DFA re-export the core types so callers of this
// package don't need to import ast/nfa/dfa directly for ordinary use.
type (
	Regex    = ast.Regex
	Alphabet = ast.Alphabet
	NFA      = nfa.NFA
	DFA      = dfa.DFA
)

// BuildOption configures state-count limits shared by every DFA-producing
// construction; see dfa.WithStateLimit.
type BuildOption = dfa.BuildOption

// WithStateLimit caps the number of DFA states a construction may allocate.
func WithStateLimit(n int) BuildOption { return dfa.WithStateLimit(n) }

// ThompsonNfaConstruction compiles r into an NFA over alphabet via Thompson
// construction (ast.Kind-directed recursion into the nfa primitives).
func ThompsonNfaConstruction(r *Regex, alphabet Alphabet) (*NFA, error) {
	return nfa.ThompsonNFA(r, alphabet)
}

// ThompsonConstruction compiles r all the way to a minimal DFA: Thompson
// construction to an NFA, the subset construction, then minimization.
// Use ThompsonNfaConstruction plus DFAConstruction directly to stop short
// of minimization.
func ThompsonConstruction(r *Regex, alphabet Alphabet, opts ...BuildOption) (*DFA, error) {
	n, err := nfa.ThompsonNFA(r, alphabet)
	if err != nil {
		return nil, err
	}
	d, err := dfa.DFAConstruction(n, opts...)
	if err != nil {
		return nil, err
	}
	return dfa.DFAMinimization(d, opts...)
}

// BrzozowskiConstruction compiles r directly to a minimal DFA via iterated
// derivatives followed by minimization, without ever building an NFA. Use
// dfa.BrzozowskiConstruction directly to stop short of minimization.
func BrzozowskiConstruction(r *Regex, alphabet Alphabet, opts ...BuildOption) (*DFA, error) {
	d, err := dfa.BrzozowskiConstruction(r, alphabet, opts...)
	if err != nil {
		return nil, err
	}
	return dfa.DFAMinimization(d, opts...)
}

// DFAConstruction runs the subset construction over an already-built NFA.
func DFAConstruction(n *NFA, opts ...BuildOption) (*DFA, error) {
	return dfa.DFAConstruction(n, opts...)
}

// DFAMinimization prunes unreachable states and collapses Myhill-Nerode
// equivalent states of d.
func DFAMinimization(d *DFA, opts ...BuildOption) (*DFA, error) {
	return dfa.DFAMinimization(d, opts...)
}

// DecideString runs the appropriate engine's decideString against w.
// automaton must be either *NFA or *DFA. Returns (accepted, true) when w
// could be decided, or (false, false) if w contains a character outside
// the automaton's alphabet.
func DecideString(automaton interface{}, w []rune) (accepted bool, ok bool) {
	switch a := automaton.(type) {
	case *NFA:
		return nfa.DecideString(a, w)
	case *DFA:
		return dfa.DecideString(a, w)
	default:
		panic(fmt.Sprintf("redfa: DecideString: unsupported automaton type %T", automaton))
	}
}
