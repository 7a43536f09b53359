package nfa

// visitedStates is a sparse/dense index pair over StateID, giving O(1)
// insert and membership testing during epsilon-closure exploration without
// the hashing overhead of a map[StateID]bool. sparse[q] is only meaningful
// once q has been inserted AND the entry in dense it points at still equals
// q; capacity is fixed to the owning NFA's state count at construction.
type visitedStates struct {
	sparse []int
	dense  []StateID
	size   int
}

func newVisitedStates(capacity int) *visitedStates {
	return &visitedStates{sparse: make([]int, capacity), dense: make([]StateID, 0, capacity)}
}

func (v *visitedStates) contains(q StateID) bool {
	idx := v.sparse[q]
	return idx < v.size && v.dense[idx] == q
}

func (v *visitedStates) insert(q StateID) {
	if v.contains(q) {
		return
	}
	v.sparse[q] = v.size
	v.dense = append(v.dense, q)
	v.size++
}

// EpsilonClosure computes the least fixed point of Q union the epsilon
// targets of every state in Q (spec.md §4.C). It terminates because the
// visited set is bounded by n.NumStates().
func EpsilonClosure(n *NFA, q *StateSet) *StateSet {
	visited := newVisitedStates(n.NumStates())
	worklist := make([]StateID, 0, q.Len())
	for _, s := range q.ToSlice() {
		visited.insert(s)
		worklist = append(worklist, s)
	}

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, next := range n.EpsilonTargets(cur) {
			if !visited.contains(next) {
				visited.insert(next)
				worklist = append(worklist, next)
			}
		}
	}

	out := NewStateSet()
	for _, s := range visited.dense {
		out.Add(s)
	}
	return out
}

// SymbolReachable computes the union of delta(q, Some(c)) for every q in Q
// (spec.md §4.C).
func SymbolReachable(n *NFA, q *StateSet, c rune) *StateSet {
	out := NewStateSet()
	for _, s := range q.ToSlice() {
		for _, t := range n.CharTargets(s, c) {
			out.Add(t)
		}
	}
	return out
}

// DecideString implements spec.md §4.C decideString. It starts from
// {q0} WITHOUT an initial epsilon-closure — a deliberate edge case
// preserved from the source design (spec.md §4.C, §9): an NFA whose start
// reaches an accept state only via epsilon transitions can reject the
// empty string. AcceptsEmptyNFA is the designated fix for NFAs that need to
// accept empty input despite this.
//
// Returns (accepted, true) when w could be decided, or (false, false) if w
// contains a character outside n.Alphabet() (undecidable).
func DecideString(n *NFA, w []rune) (accepted bool, ok bool) {
	current := NewStateSet(n.Start())
	for _, c := range w {
		if !n.Alphabet().Contains(c) {
			return false, false
		}
		stepped := SymbolReachable(n, current, c)
		current = EpsilonClosure(n, stepped)
	}
	return current.IntersectsAccept(n), true
}
