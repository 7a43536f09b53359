// Package ast defines the regular-expression tree consumed by the nfa and
// dfa packages: a small tagged sum type (Void, Empty, Char, Alt, Seq, Star)
// built exclusively through smart constructors that keep every tree in
// canonical form. Surface-syntax parsing into this tree is out of scope for
// this package; it only canonicalizes and analyzes whatever tree it is
// given.
package ast

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant of the regex sum type a Regex node is.
type Kind uint8

const (
	// KindVoid matches no string.
	KindVoid Kind = iota
	// KindEmpty matches exactly the empty string.
	KindEmpty
	// KindChar matches any single character from a non-empty character set.
	KindChar
	// KindAlt is the union of two regexes.
	KindAlt
	// KindSeq is the concatenation of two regexes.
	KindSeq
	// KindStar is the Kleene closure of a regex.
	KindStar
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "Void"
	case KindEmpty:
		return "Empty"
	case KindChar:
		return "Char"
	case KindAlt:
		return "Alt"
	case KindSeq:
		return "Seq"
	case KindStar:
		return "Star"
	default:
		return "Unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Regex is an immutable node in a regular-expression tree. Values are only
// ever produced by the smart constructors below, which is what guarantees
// the canonical-form invariants the derivative function relies on to
// terminate.
type Regex struct {
	kind  Kind
	chars []rune // sorted, distinct; valid only for KindChar
	left  *Regex // Alt/Seq left operand, Star operand
	right *Regex // Alt/Seq right operand

	key string // memoized canonical key, computed lazily
}

// Precomputed singletons for the two nullary variants.
var (
	voidRegex  = &Regex{kind: KindVoid}
	emptyRegex = &Regex{kind: KindEmpty}
)

// Void returns the regex matching no string.
func Void() *Regex { return voidRegex }

// EmptyStr returns the regex matching exactly the empty string.
func EmptyStr() *Regex { return emptyRegex }

// CharSet applies the rChar smart constructor: a non-empty set of
// characters matches any single one of them; an empty set degenerates to
// Void.
func CharSet(cs []rune) *Regex {
	if len(cs) == 0 {
		return voidRegex
	}
	uniq := sortUniqueRunes(cs)
	return &Regex{kind: KindChar, chars: uniq}
}

// Char is a convenience constructor for a single-character set.
func Char(c rune) *Regex {
	return CharSet([]rune{c})
}

// Alt applies the rAlt smart constructor: Alt(Void, r) = r and
// Alt(r, Void) = r. Associativity and idempotence are deliberately not
// enforced — duplicate or unmerged branches are allowed.
func Alt(a, b *Regex) *Regex {
	if a.kind == KindVoid {
		return b
	}
	if b.kind == KindVoid {
		return a
	}
	return &Regex{kind: KindAlt, left: a, right: b}
}

// Seq applies the rSeq smart constructor: Seq(Void, _) = Void,
// Seq(_, Void) = Void, Seq(Empty, r) = r, Seq(r, Empty) = r.
func Seq(a, b *Regex) *Regex {
	if a.kind == KindVoid || b.kind == KindVoid {
		return voidRegex
	}
	if a.kind == KindEmpty {
		return b
	}
	if b.kind == KindEmpty {
		return a
	}
	return &Regex{kind: KindSeq, left: a, right: b}
}

// Star applies the rStar smart constructor: Star(Void) = Empty,
// Star(Empty) = Empty, Star(Star(r)) = Star(r).
func Star(a *Regex) *Regex {
	switch a.kind {
	case KindVoid, KindEmpty:
		return emptyRegex
	case KindStar:
		return a
	default:
		return &Regex{kind: KindStar, left: a}
	}
}

// Kind returns the node's variant.
func (r *Regex) Kind() Kind { return r.kind }

// Chars returns the character set for a KindChar node. It returns nil for
// every other kind.
func (r *Regex) Chars() []rune {
	if r.kind != KindChar {
		return nil
	}
	out := make([]rune, len(r.chars))
	copy(out, r.chars)
	return out
}

// Left returns the left/only operand for Alt, Seq and Star nodes, and nil
// otherwise.
func (r *Regex) Left() *Regex { return r.left }

// Right returns the right operand for Alt and Seq nodes, and nil otherwise.
func (r *Regex) Right() *Regex { return r.right }

// ErrNoAlphabet is returned by AlphabetOf when the regex contains no Char
// node, so no alphabet can be derived from it. Construction functions that
// require an alphabet must not be invoked on such a regex; this is a
// documented precondition violation, not an internal invariant failure.
var ErrNoAlphabet = errors.New("ast: regex contains no Char node, alphabet is undefined")

// Alphabet is a non-empty ordered sequence of distinct characters. Iteration
// order is deterministic but arbitrary; every algorithm operating over an
// Alphabet must be order-independent in its observable output (state
// numbering is the sole implementation-defined exception).
type Alphabet []rune

// Contains reports whether c is a member of the alphabet.
func (a Alphabet) Contains(c rune) bool {
	for _, x := range a {
		if x == c {
			return true
		}
	}
	return false
}

// Equal reports whether a and b contain the same characters, ignoring
// order.
func (a Alphabet) Equal(b Alphabet) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := sortUniqueRunes(a), sortUniqueRunes(b)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// AlphabetOf computes alpha(r): the union of every character set appearing
// in a Char node of r, in sorted order. Returns ErrNoAlphabet if r has no
// Char node anywhere in it.
func AlphabetOf(r *Regex) (Alphabet, error) {
	seen := make(map[rune]struct{})
	collectChars(r, seen)
	if len(seen) == 0 {
		return nil, ErrNoAlphabet
	}
	out := make([]rune, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return Alphabet(out), nil
}

func collectChars(r *Regex, seen map[rune]struct{}) {
	switch r.kind {
	case KindChar:
		for _, c := range r.chars {
			seen[c] = struct{}{}
		}
	case KindAlt, KindSeq:
		collectChars(r.left, seen)
		collectChars(r.right, seen)
	case KindStar:
		collectChars(r.left, seen)
	}
}

// Nullable reports whether r matches the empty string.
func Nullable(r *Regex) bool {
	switch r.kind {
	case KindEmpty, KindStar:
		return true
	case KindAlt:
		return Nullable(r.left) || Nullable(r.right)
	case KindSeq:
		return Nullable(r.left) && Nullable(r.right)
	default: // KindVoid, KindChar
		return false
	}
}

// Derivative computes deriv(r, c), the Brzozowski derivative of r with
// respect to c: the regex matching exactly those w such that cw is matched
// by r. The result is built exclusively through the smart constructors
// above, which is what keeps the set of syntactically distinct derivatives
// of a fixed r finite.
func Derivative(r *Regex, c rune) *Regex {
	switch r.kind {
	case KindVoid, KindEmpty:
		return voidRegex
	case KindChar:
		for _, x := range r.chars {
			if x == c {
				return emptyRegex
			}
		}
		return voidRegex
	case KindAlt:
		return Alt(Derivative(r.left, c), Derivative(r.right, c))
	case KindSeq:
		if !Nullable(r.left) {
			return Seq(Derivative(r.left, c), r.right)
		}
		return Alt(Seq(Derivative(r.left, c), r.right), Derivative(r.right, c))
	case KindStar:
		return Seq(Derivative(r.left, c), Star(r.left))
	default:
		return voidRegex
	}
}

// Key returns a canonical string identifying r's structure, memoized on
// first use. Two regexes produced by the smart constructors are
// structurally equal if and only if their keys are equal; this is what lets
// a *Regex act as a map key for the Brzozowski builder despite regex trees
// not being directly comparable (they contain slices).
func (r *Regex) Key() string {
	if r.key != "" {
		return r.key
	}
	var b strings.Builder
	writeKey(&b, r)
	r.key = b.String()
	return r.key
}

func writeKey(b *strings.Builder, r *Regex) {
	switch r.kind {
	case KindVoid:
		b.WriteString("0")
	case KindEmpty:
		b.WriteString("1")
	case KindChar:
		b.WriteString("C[")
		for i, c := range r.chars {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.QuoteRune(c))
		}
		b.WriteByte(']')
	case KindAlt:
		b.WriteString("A(")
		writeKey(b, r.left)
		b.WriteByte(',')
		writeKey(b, r.right)
		b.WriteByte(')')
	case KindSeq:
		b.WriteString("S(")
		writeKey(b, r.left)
		b.WriteByte(',')
		writeKey(b, r.right)
		b.WriteByte(')')
	case KindStar:
		b.WriteString("*(")
		writeKey(b, r.left)
		b.WriteByte(')')
	}
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b *Regex) bool {
	return a.Key() == b.Key()
}

// String returns a debug representation of r.
func (r *Regex) String() string {
	switch r.kind {
	case KindVoid:
		return "Void"
	case KindEmpty:
		return "Empty"
	case KindChar:
		var b strings.Builder
		b.WriteString("Char{")
		for i, c := range r.chars {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteRune(c)
		}
		b.WriteByte('}')
		return b.String()
	case KindAlt:
		return "Alt(" + r.left.String() + "," + r.right.String() + ")"
	case KindSeq:
		return "Seq(" + r.left.String() + "," + r.right.String() + ")"
	case KindStar:
		return "Star(" + r.left.String() + ")"
	default:
		return "?"
	}
}

func sortUniqueRunes(cs []rune) []rune {
	seen := make(map[rune]struct{}, len(cs))
	out := make([]rune, 0, len(cs))
	for _, c := range cs {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
