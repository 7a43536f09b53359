package dfa

import "github.com/rburd/Regex-to-DFA-Constructor/ast"

// buildState is the DFASt triple of spec.md §3: a counter of the next
// state number to allocate, a correspondence corr from an opaque key K
// (realized here as a canonical string — an NFA-state-set key for subset
// construction, a regex key for Brzozowski construction) to the DFA state
// it was assigned, and the DFA transition/accept tables under assembly.
//
// This is component H, the shared builder used by both constructions
// (spec.md §4.D, §4.E): it owns no domain knowledge about what a key
// represents, only the bookkeeping of allocating and remembering DFA state
// IDs for keys as they're first seen.
type buildState struct {
	alphabet ast.Alphabet
	limit    int // 0 means unlimited

	counter StateID
	corr    map[string]StateID
	trans   map[StateID]map[rune]StateID
	accept  map[StateID]bool
}

func newBuildState(alphabet ast.Alphabet, limit int) *buildState {
	return &buildState{
		alphabet: alphabet,
		limit:    limit,
		corr:     make(map[string]StateID),
		trans:    make(map[StateID]map[rune]StateID),
		accept:   make(map[StateID]bool),
	}
}

// lookupUpdate is spec.md §4.D's lookupUpdate(k): if k is already mapped,
// return its DFA state and false (not new); otherwise allocate the next
// counter value, map k to it, and return (id, true).
func (b *buildState) lookupUpdate(key string) (StateID, bool, error) {
	if id, ok := b.corr[key]; ok {
		return id, false, nil
	}
	if b.limit > 0 && int(b.counter) >= b.limit {
		return InvalidState, false, ErrStateLimitExceeded
	}
	id := b.counter
	b.counter++
	b.corr[key] = id
	return id, true, nil
}

// addTransition is spec.md §4.D's addTransition(next, (k,c)): given the
// already-resolved DFA id for k and the successor key k' = next(k,c), look
// up or allocate k''s DFA state, record the transition, and report whether
// k' was newly allocated (the caller should only recurse into genuinely new
// states).
func (b *buildState) addTransition(fromID StateID, c rune, toKey string) (StateID, bool, error) {
	toID, isNew, err := b.lookupUpdate(toKey)
	if err != nil {
		return InvalidState, false, err
	}
	if b.trans[fromID] == nil {
		b.trans[fromID] = make(map[rune]StateID)
	}
	b.trans[fromID][c] = toID
	return toID, isNew, nil
}

func (b *buildState) setAccept(id StateID, yes bool) {
	if yes {
		b.accept[id] = true
	}
}

// finalize extracts the immutable DFA built so far. Build state is owned
// exclusively by its construction call and discarded after this (spec.md
// §5): callers must not reuse b afterward.
func (b *buildState) finalize(start StateID) *DFA {
	return &DFA{
		numStates: int(b.counter),
		alphabet:  b.alphabet,
		trans:     b.trans,
		start:     start,
		accept:    b.accept,
	}
}
