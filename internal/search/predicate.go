package search

import (
	"strconv"

	"github.com/jackaholy/Cheminv2.0/internal/search/dto"
	"github.com/jackaholy/Cheminv2.0/internal/textnorm"
)

// Term is one search term prepared for matching.
type Term struct {
	// Raw is the term as produced by the term filter; compared exactly with formulas.
	Raw string
	// Pattern is Raw with whitespace removed and lower-cased; matched as a
	// substring of names.
	Pattern string
	// Sticker is set when Raw parses as a sticker number.
	Sticker *int64
}

// Predicate selects chemical graphs. A chemical matches when any term matches
// its name, alphabetical name, formula or one of its sticker numbers, and at
// least one of its bottles satisfies Filter.
type Predicate struct {
	// Empty short-circuits the search: nothing is fetched and nothing returned.
	Empty  bool
	Terms  []Term
	Filter dto.Filter
}

// HasText reports whether the text part of the predicate constrains anything.
// Without terms only the structural filter applies.
func (p Predicate) HasText() bool {
	return len(p.Terms) > 0
}

func BuildPredicate(query string, terms []string, f dto.Filter) Predicate {
	if query == "" && f.IsEmpty() {
		return Predicate{Empty: true}
	}

	p := Predicate{Filter: f}
	if query == "" {
		return p
	}
	for _, raw := range terms {
		pattern := textnorm.FoldName(raw)
		if pattern == "" {
			continue
		}
		t := Term{Raw: raw, Pattern: pattern}
		t.Sticker = stickerNumber(raw)
		p.Terms = append(p.Terms, t)
	}
	return p
}

// stickerNumber returns the sticker a term names. The term must be the
// canonical decimal form: "012345" and "+12345" are not sticker 12345.
func stickerNumber(raw string) *int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != raw {
		return nil
	}
	return &n
}
