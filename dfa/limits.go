package dfa

// Limits configures optional ceilings on construction (spec.md §5: "implementations
// may reject extreme inputs via an optional state-count ceiling"). The zero
// value imposes no limit, matching the teacher's BuildOption defaults.
type Limits struct {
	MaxStates int
}

// BuildOption configures DFAConstruction and BrzozowskiConstruction, mirroring
// the teacher's functional-option pattern (nfa.BuildOption).
type BuildOption func(*Limits)

// WithStateLimit caps the number of DFA states a construction may allocate
// before it gives up and reports ErrStateLimitExceeded. A non-positive n
// disables the limit.
func WithStateLimit(n int) BuildOption {
	return func(l *Limits) { l.MaxStates = n }
}

func applyOptions(opts []BuildOption) Limits {
	var l Limits
	for _, opt := range opts {
		opt(&l)
	}
	return l
}
