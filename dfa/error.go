package dfa

import (
	"errors"
	"fmt"
)

// ErrStateLimitExceeded is returned by DFAConstruction/BrzozowskiConstruction
// when a WithStateLimit ceiling (spec.md §5: "implementations may reject
// extreme inputs via an optional state-count ceiling") is exceeded during
// exploration. Named and shaped after the teacher's dfa/lazy.ErrStateLimitExceeded.
var ErrStateLimitExceeded = errors.New("dfa: state limit exceeded")

// InvariantError reports the assertion-style internal failures spec.md §7
// calls out by name: a mapping lookup during minimization or renumbering
// that comes back empty for a state the algorithm guarantees exists. This
// indicates a bug in this package, not in caller input, and is never
// expected to occur for a DFA actually produced by DFAConstruction or
// BrzozowskiConstruction.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("dfa: internal invariant violated: %s", e.Message)
}

// errDstartUnmapped, errAcceptUnmapped and errTransitionUnmapped are the
// three named failures from spec.md §7: "Dstart unmapped", "Accept state
// unmapped", "Transition unmapped".
func errDstartUnmapped() error     { return &InvariantError{Message: "Dstart unmapped"} }
func errAcceptUnmapped() error     { return &InvariantError{Message: "Accept state unmapped"} }
func errTransitionUnmapped() error { return &InvariantError{Message: "Transition unmapped"} }
