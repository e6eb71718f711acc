// Package textnorm holds the name normalization shared by the predicate
// builder, the ranker and the SQL backends, so every layer folds names the
// same way.
package textnorm

import (
	"strings"
	"unicode"
)

// StripSpace removes every whitespace rune from s.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// FoldName is the form names are compared in: whitespace removed and
// lower-cased with Unicode rules.
func FoldName(s string) string {
	return strings.ToLower(StripSpace(s))
}
