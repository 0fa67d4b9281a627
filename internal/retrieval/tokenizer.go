// Package retrieval holds the pure pieces of the lookup pipeline:
// tokenization, intent routing and predicate construction. Nothing in this
// package touches the database or keeps state.
package retrieval

import "strings"

// minTokenLen drops stop-word sized fragments ("a", "an", "is", ...).
const minTokenLen = 3

// Normalize lowercases s and replaces every rune outside [a-z0-9 ] with a
// space. Consecutive spaces are left as-is; Tokenize splits on any run of
// whitespace anyway.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Tokenize normalizes s and returns the whitespace-separated fragments of
// length >= 3. Empty or all-noise input yields nil.
func Tokenize(s string) []string {
	var tokens []string
	for _, f := range strings.Fields(Normalize(s)) {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
