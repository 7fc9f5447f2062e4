package ingest

import (
	"strings"
	"unicode"
)

// SplitWords splits a sentence on single spaces, trims surrounding
// whitespace from each token and drops empty tokens.
func SplitWords(sentence string) []string {
	var tokens []string
	for _, raw := range strings.Split(sentence, " ") {
		tok := strings.TrimSpace(raw)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// NormalizeAtom turns a raw token into a storable atom: case-folded, with
// trailing punctuation stripped repeatedly from the end.
func NormalizeAtom(token string) string {
	atom := strings.ToLower(token)
	for atom != "" {
		runes := []rune(atom)
		last := runes[len(runes)-1]
		if !unicode.IsPunct(last) {
			break
		}
		atom = string(runes[:len(runes)-1])
	}
	return atom
}
