package usecase

import (
	"strings"

	"github.com/jackaholy/Cheminv2.0/internal/textnorm"
	"github.com/pmezard/go-difflib/difflib"
)

// similarity orders candidate names against a query. Fields compare in order.
type similarity struct {
	// matchLen is the longest common substring of query and name: names
	// containing the whole query come first.
	matchLen int
	// startScore is matchLen minus the match offset in the name. Unrelated
	// compounds are usually "prefix + query", so early matches win.
	startScore int
	// ratio separates "query" from "query plus more text".
	ratio float64
}

func computeSimilarity(query, name string) similarity {
	q := splitRunes(textnorm.FoldName(query))
	n := splitRunes(strings.ToLower(name))

	var best difflib.Match
	for _, m := range difflib.NewMatcher(q, n).GetMatchingBlocks() {
		if m.Size > best.Size {
			best = m
		}
	}
	start := 0
	if best.Size > 0 {
		start = best.B
	}

	return similarity{
		matchLen:   best.Size,
		startScore: best.Size - start,
		ratio:      difflib.NewMatcher(splitRunes(query), splitRunes(name)).Ratio(),
	}
}

// compare returns -1, 0 or 1 as s ranks below, level with or above o.
func (s similarity) compare(o similarity) int {
	switch {
	case s.matchLen != o.matchLen:
		return cmpInt(s.matchLen, o.matchLen)
	case s.startScore != o.startScore:
		return cmpInt(s.startScore, o.startScore)
	case s.ratio < o.ratio:
		return -1
	case s.ratio > o.ratio:
		return 1
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
