package dfa

import (
	"strconv"
	"strings"
)

// reachableStates is a sparse/dense index pair over StateID, giving O(1)
// insert and membership testing during the reachability walk below without
// the hashing overhead of a map[StateID]bool. Capacity is fixed to d's
// state count, so a discovered target is always a valid index.
type reachableStates struct {
	sparse []int
	dense  []StateID
	size   int
}

func newReachableStates(capacity int) *reachableStates {
	return &reachableStates{sparse: make([]int, capacity), dense: make([]StateID, 0, capacity)}
}

func (r *reachableStates) contains(q StateID) bool {
	idx := r.sparse[q]
	return idx < r.size && r.dense[idx] == q
}

func (r *reachableStates) insert(q StateID) {
	if r.contains(q) {
		return
	}
	r.sparse[q] = r.size
	r.dense = append(r.dense, q)
	r.size++
}

// pruneUnreachable discards every state not reachable from d.Start() by
// following delta (spec.md §4.F1). A state that only has a self-loop and no
// incoming transition from elsewhere is unreachable under this definition
// unless it IS the start state (spec.md §9 Open Question 3): the traversal
// below only ever visits a state by following an edge FROM an already
// reachable state, so a self-loop alone can never make an otherwise
// unvisited state reachable.
func pruneUnreachable(d *DFA) *DFA {
	reachable := newReachableStates(d.numStates)
	reachable.insert(d.start)
	queue := []StateID{d.start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range d.alphabet {
			next, ok := d.Transition(cur, c)
			if ok && !reachable.contains(next) {
				reachable.insert(next)
				queue = append(queue, next)
			}
		}
	}

	oldToNew := make(map[StateID]StateID, reachable.size)
	var nextID StateID
	for q := StateID(0); int(q) < d.numStates; q++ {
		if reachable.contains(q) {
			oldToNew[q] = nextID
			nextID++
		}
	}

	trans := make(map[StateID]map[rune]StateID)
	accept := make(map[StateID]bool)
	for oldID, newID := range oldToNew {
		if d.IsAccept(oldID) {
			accept[newID] = true
		}
		for c, target := range d.trans[oldID] {
			if newTarget, ok := oldToNew[target]; ok {
				if trans[newID] == nil {
					trans[newID] = make(map[rune]StateID)
				}
				trans[newID][c] = newTarget
			}
		}
	}

	return &DFA{
		numStates: int(nextID),
		alphabet:  d.alphabet,
		trans:     trans,
		start:     oldToNew[d.start],
		accept:    accept,
	}
}

// signature builds a state's refinement fingerprint for one round of Moore
// partitioning: its own class tag, followed by the class of its target
// under each alphabet symbol in order (or a sentinel for the dead
// transition). Two states get the same signature in a round exactly when
// they are (so far) indistinguishable.
func signature(d *DFA, class []int, q StateID) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(class[q]))
	for _, c := range d.alphabet {
		b.WriteByte('|')
		if next, ok := d.Transition(q, c); ok {
			b.WriteString(strconv.Itoa(class[next]))
		} else {
			b.WriteByte('X')
		}
	}
	return b.String()
}

// refine computes the coarsest partition refining the initial
// accept/non-accept split into Myhill-Nerode equivalence classes, by
// repeatedly splitting classes whose members disagree on a signature until
// the partition stops changing (spec.md §4.F2). The returned slice maps
// each state to its final class number; class numbers are assigned by the
// order classes are first seen when scanning states 0..N-1, so the
// numbering is deterministic given d's own state numbering.
func refine(d *DFA) []int {
	n := d.numStates
	class := make([]int, n)
	for q := 0; q < n; q++ {
		if d.IsAccept(StateID(q)) {
			class[q] = 1
		}
	}

	for {
		sigToClass := make(map[string]int)
		next := make([]int, n)
		for q := 0; q < n; q++ {
			sig := signature(d, class, StateID(q))
			id, ok := sigToClass[sig]
			if !ok {
				id = len(sigToClass)
				sigToClass[sig] = id
			}
			next[q] = id
		}
		if sameClassing(class, next) {
			return next
		}
		class = next
	}
}

func sameClassing(a, b []int) bool {
	seen := make(map[int]int)
	for i := range a {
		if want, ok := seen[a[i]]; ok {
			if want != b[i] {
				return false
			}
		} else {
			seen[a[i]] = b[i]
		}
	}
	return true
}

func classKey(class int) string { return strconv.Itoa(class) }

// Signatures exposes refine's fixed point: the final stable per-state
// signature string for every state of d, keyed by state ID. It exists for testability (spec.md's minimality property: a minimized
// DFA must have no two states with the same signature).
func Signatures(d *DFA) map[StateID]string {
	class := refine(d)
	out := make(map[StateID]string, d.numStates)
	for q := 0; q < d.numStates; q++ {
		out[StateID(q)] = signature(d, class, StateID(q))
	}
	return out
}

// DFAMinimization implements spec.md §4.F: prune unreachable states, then
// collapse Myhill-Nerode equivalent states via Moore refinement, producing a
// new DFA whose states are numbered by a breadth-first walk from the start
// class so the result is deterministic regardless of Go's map iteration
// order. The three named aborts below correspond to the internal-invariant
// failures spec.md §7 calls out — a lookup the algorithm guarantees will
// succeed coming back empty indicates a bug in this package, not bad input.
func DFAMinimization(d *DFA, opts ...BuildOption) (*DFA, error) {
	limits := applyOptions(opts)
	pruned := pruneUnreachable(d)
	class := refine(pruned)

	classAccept := make(map[int]bool)
	classTrans := make(map[int]map[rune]int)
	seen := make(map[int]bool)
	for q := 0; q < pruned.numStates; q++ {
		c := class[q]
		if seen[c] {
			continue
		}
		seen[c] = true
		classAccept[c] = pruned.IsAccept(StateID(q))
		out := make(map[rune]int)
		for _, ch := range pruned.alphabet {
			if target, ok := pruned.Transition(StateID(q), ch); ok {
				out[ch] = class[target]
			}
		}
		classTrans[c] = out
	}

	bs := newBuildState(pruned.alphabet, limits.MaxStates)
	startClass := class[int(pruned.start)]
	startID, _, err := bs.lookupUpdate(classKey(startClass))
	if err != nil {
		return nil, err
	}
	acc, ok := classAccept[startClass]
	if !ok {
		return nil, errDstartUnmapped()
	}
	bs.setAccept(startID, acc)

	worklist := []int{startClass}
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		fromID, mapped := bs.corr[classKey(cur)]
		if !mapped {
			return nil, errTransitionUnmapped()
		}
		for _, ch := range pruned.alphabet {
			targetClass, has := classTrans[cur][ch]
			if !has {
				continue
			}
			toID, isNew, err := bs.addTransition(fromID, ch, classKey(targetClass))
			if err != nil {
				return nil, err
			}
			if isNew {
				acc, ok := classAccept[targetClass]
				if !ok {
					return nil, errAcceptUnmapped()
				}
				bs.setAccept(toID, acc)
				worklist = append(worklist, targetClass)
			}
		}
	}

	return bs.finalize(startID), nil
}
