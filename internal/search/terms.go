package search

import (
	"iter"
	"slices"
	"unicode/utf8"
)

// minTermLength is the length a synonym must exceed to be searched for.
// Shorter terms are mostly element symbols ("Fe", "H") that match far too much.
const minTermLength = 3

// FilterTerms merges the query with its synonyms, drops duplicates and drops
// short terms other than the literal query. The result is sorted.
func FilterTerms(query string, synonyms iter.Seq[string]) []string {
	seen := map[string]struct{}{}
	if query != "" {
		seen[query] = struct{}{}
	}
	if synonyms != nil {
		for s := range synonyms {
			if s == "" {
				continue
			}
			seen[s] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for t := range seen {
		if KeepTerm(query, t) {
			terms = append(terms, t)
		}
	}
	slices.Sort(terms)
	return terms
}

func KeepTerm(query, term string) bool {
	return utf8.RuneCountInString(term) > minTermLength || term == query
}
