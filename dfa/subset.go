package dfa

import "github.com/rburd/Regex-to-DFA-Constructor/nfa"

// DFAConstruction is the subset (powerset) construction of spec.md §4.D: it
// explores the epsilon-closed NFA state sets reachable from the closure of
// the NFA's start state, assigning each distinct set a DFA state number the
// first time it's seen (buildState.lookupUpdate) and recording a transition
// for every alphabet symbol from every explored set — including symbols
// whose target set is empty, which lead to an explicit, non-accepting DFA
// state for the empty set (spec.md §4.D: "always add a transition, even to
// the empty/dead-sink state"). That sink state is kept, not dropped, so the
// resulting transition table is complete.
func DFAConstruction(n *nfa.NFA, opts ...BuildOption) (*DFA, error) {
	limits := applyOptions(opts)
	bs := newBuildState(n.Alphabet(), limits.MaxStates)

	startSet := nfa.EpsilonClosure(n, nfa.NewStateSet(n.Start()))
	startKey := startSet.Key()
	startID, _, err := bs.lookupUpdate(startKey)
	if err != nil {
		return nil, err
	}
	bs.setAccept(startID, startSet.IntersectsAccept(n))

	sets := map[string]*nfa.StateSet{startKey: startSet}
	worklist := []string{startKey}

	for len(worklist) > 0 {
		key := worklist[0]
		worklist = worklist[1:]
		fromSet := sets[key]
		fromID := bs.corr[key]

		for _, c := range n.Alphabet() {
			targetSet := nfa.EpsilonClosure(n, nfa.SymbolReachable(n, fromSet, c))
			targetKey := targetSet.Key()
			toID, isNew, err := bs.addTransition(fromID, c, targetKey)
			if err != nil {
				return nil, err
			}
			if isNew {
				sets[targetKey] = targetSet
				bs.setAccept(toID, targetSet.IntersectsAccept(n))
				worklist = append(worklist, targetKey)
			}
		}
	}

	return bs.finalize(startID), nil
}
