package dfa

import "github.com/rburd/Regex-to-DFA-Constructor/ast"

// BrzozowskiConstruction is the derivative construction of spec.md §4.E: it
// explores the distinct regexes reachable from r by repeated derivative,
// keyed by their canonical Key() so that derivative-equal regexes collapse
// onto the same DFA state, with acceptance decided by Nullable rather than
// by any NFA state set.
func BrzozowskiConstruction(r *ast.Regex, alphabet ast.Alphabet, opts ...BuildOption) (*DFA, error) {
	limits := applyOptions(opts)
	bs := newBuildState(alphabet, limits.MaxStates)

	startKey := r.Key()
	startID, _, err := bs.lookupUpdate(startKey)
	if err != nil {
		return nil, err
	}
	bs.setAccept(startID, ast.Nullable(r))

	regexes := map[string]*ast.Regex{startKey: r}
	worklist := []string{startKey}

	for len(worklist) > 0 {
		key := worklist[0]
		worklist = worklist[1:]
		cur := regexes[key]
		fromID := bs.corr[key]

		for _, c := range alphabet {
			d := ast.Derivative(cur, c)
			dKey := d.Key()
			toID, isNew, err := bs.addTransition(fromID, c, dKey)
			if err != nil {
				return nil, err
			}
			if isNew {
				regexes[dKey] = d
				bs.setAccept(toID, ast.Nullable(d))
				worklist = append(worklist, dKey)
			}
		}
	}

	return bs.finalize(startID), nil
}
