// Package literalset builds regexes over sets of literal words: the exact
// union of a finite word list, and the "contains any of these words as a
// substring" regex built from it. Both shapes mirror the literal
// alternation the teacher's meta package recognizes and reroutes to
// Aho-Corasick once the pattern carries more literals than its Teddy
// searchers can hold (meta/compile.go's buildStrategyEngines, triggered by
// UseAhoCorasick strategy selection).
package literalset

import (
	"sort"

	"github.com/rburd/Regex-to-DFA-Constructor/ast"
)

// Alphabet returns the sorted, deduplicated set of runes appearing in words.
func Alphabet(words []string) ast.Alphabet {
	seen := make(map[rune]bool)
	var out []rune
	for _, w := range words {
		for _, r := range w {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return ast.Alphabet(out)
}

// UnionRegex builds the regex denoting exactly the language {w1, w2, ...,
// wn}: each word as a Seq chain of Char nodes, joined by Alt. An empty word
// list denotes the empty language.
func UnionRegex(words []string) *ast.Regex {
	if len(words) == 0 {
		return ast.Void()
	}
	result := wordRegex(words[0])
	for _, w := range words[1:] {
		result = ast.Alt(result, wordRegex(w))
	}
	return result
}

func wordRegex(w string) *ast.Regex {
	runes := []rune(w)
	if len(runes) == 0 {
		return ast.EmptyStr()
	}
	result := ast.Char(runes[0])
	for _, r := range runes[1:] {
		result = ast.Seq(result, ast.Char(r))
	}
	return result
}

// ContainsAnyRegex builds the regex denoting every string that contains at
// least one of words as a substring: any prefix, one of the words, any
// suffix. alphabet should cover every character that may legally appear in
// a haystack, not just the characters inside words, or a haystack
// containing an out-of-alphabet character will be undecidable rather than
// simply non-matching.
func ContainsAnyRegex(words []string, alphabet ast.Alphabet) *ast.Regex {
	anyChar := ast.CharSet(alphabet)
	anyPrefix := ast.Star(anyChar)
	anySuffix := ast.Star(anyChar)
	return ast.Seq(anyPrefix, ast.Seq(UnionRegex(words), anySuffix))
}
