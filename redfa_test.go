package redfa

import (
	"testing"

	"github.com/rburd/Regex-to-DFA-Constructor/ast"
)

// TestThompsonConstruction_S6 reproduces spec.md §8 scenario S6 against the
// full regex-to-DFA pipeline.
func TestThompsonConstruction_S6(t *testing.T) {
	alphabet := Alphabet{'a', 'b'}
	r := ast.Star(ast.Seq(ast.Char('a'), ast.Char('b')))

	d, err := ThompsonConstruction(r, alphabet)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		w    string
		want bool
	}{
		{"abab", true},
		{"aba", false},
		{"", true},
	}
	for _, tt := range tests {
		got, ok := DecideString(d, []rune(tt.w))
		if !ok {
			t.Fatalf("DecideString(%q) undecidable", tt.w)
		}
		if got != tt.want {
			t.Errorf("DecideString(%q) = %v, want %v", tt.w, got, tt.want)
		}
	}
}

// TestPipeline_ThompsonVsBrzozowskiAgree checks that both top-level
// constructions decide the same language for a representative regex.
func TestPipeline_ThompsonVsBrzozowskiAgree(t *testing.T) {
	alphabet := Alphabet{'0', '1'}
	r := ast.Seq(ast.Star(ast.Char('1')), ast.Char('0'))

	viaThompson, err := ThompsonConstruction(r, alphabet)
	if err != nil {
		t.Fatal(err)
	}
	viaBrzozowski, err := BrzozowskiConstruction(r, alphabet)
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range []string{"0", "110", "111", "", "10", "1110"} {
		a, _ := DecideString(viaThompson, []rune(w))
		b, _ := DecideString(viaBrzozowski, []rune(w))
		if a != b {
			t.Errorf("word %q: thompson=%v brzozowski=%v", w, a, b)
		}
	}
}

// TestThompsonNfaConstruction_S1 reproduces spec.md §8 scenario S1 through
// the facade.
func TestThompsonNfaConstruction_S1(t *testing.T) {
	alphabet := Alphabet{'a'}
	n, err := ThompsonNfaConstruction(ast.Char('a'), alphabet)
	if err != nil {
		t.Fatal(err)
	}
	if n.NumStates() != 2 || n.Start() != 0 {
		t.Fatalf("ThompsonNfaConstruction(Char{'a'}) = %v, want 2 states starting at 0", n)
	}
}

// TestDecideString_RejectsUnsupportedType checks the facade's dynamic
// dispatch panics on an automaton type it doesn't recognize, rather than
// silently misbehaving.
func TestDecideString_RejectsUnsupportedType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected DecideString to panic on an unsupported automaton type")
		}
	}()
	DecideString(42, nil)
}
