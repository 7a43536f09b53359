package dfa

import (
	"testing"

	"github.com/rburd/Regex-to-DFA-Constructor/ast"
)

// TestDFAMinimization_S4 reproduces spec.md §8 scenario S4: a 6-state DFA
// over {'0','1'} where states {2,3,4,5} are all non-accepting dead-end
// equivalents collapses to 3 states under minimization.
func TestDFAMinimization_S4(t *testing.T) {
	alphabet := ast.Alphabet{'0', '1'}
	d := &DFA{
		numStates: 6,
		alphabet:  alphabet,
		start:     0,
		accept:    map[StateID]bool{1: true},
		trans: map[StateID]map[rune]StateID{
			0: {'0': 1, '1': 2},
			1: {'0': 3, '1': 4},
			2: {'0': 4, '1': 4},
			3: {'0': 5, '1': 5},
			4: {'0': 5, '1': 5},
			5: {'0': 5, '1': 5},
		},
	}

	min, err := DFAMinimization(d)
	if err != nil {
		t.Fatal(err)
	}
	if min.NumStates() != 3 {
		t.Fatalf("DFAMinimization(S4) produced %d states, want 3", min.NumStates())
	}
	if len(min.AcceptStates()) != 1 {
		t.Fatalf("DFAMinimization(S4) has %d accept states, want 1", len(min.AcceptStates()))
	}

	for _, w := range []string{"0", "00", "01", "10", "11", "", "000"} {
		gotOrig, _ := DecideString(d, []rune(w))
		gotMin, _ := DecideString(min, []rune(w))
		if gotOrig != gotMin {
			t.Errorf("DecideString(%q): original=%v minimized=%v", w, gotOrig, gotMin)
		}
	}
}
