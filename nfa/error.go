// Package nfa implements Thompson-construction NFA primitives, the
// epsilon-closure/symbol-step engine, and string recognition over NFAs.
//
// An NFA here is the tuple (Q, Sigma, delta, q0, F) of a textbook automaton:
// states are dense integers, delta is a sparse partial mapping keyed by
// (state, optional character) where the absent key means the empty set, and
// F is the accept set. Builder is the only supported way to assemble one.
package nfa

import (
	"errors"
	"fmt"
)

// ErrEmptyCharSet indicates CharClassNFA was asked to build a transition
// over zero characters; callers should use EmptySetNFA instead.
var ErrEmptyCharSet = errors.New("nfa: empty character set")

// BuildError represents a malformed-NFA condition detected by
// Builder.Validate: a dangling reference, an out-of-alphabet transition
// character, or a missing start state. These indicate a bug in the code
// assembling the NFA, not a property of the input regex.
type BuildError struct {
	Message string
	State   StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.State != InvalidState {
		return fmt.Sprintf("nfa: build error at state %d: %s", e.State, e.Message)
	}
	return fmt.Sprintf("nfa: build error: %s", e.Message)
}
