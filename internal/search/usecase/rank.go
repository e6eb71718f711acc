package usecase

import (
	"slices"
	"strings"
	"unicode"

	"github.com/jackaholy/Cheminv2.0/internal/search/dto"
	"golang.org/x/text/cases"
)

type rankedView struct {
	view    dto.ChemicalView
	inStock bool
	sim     similarity
	alpha   string
}

// Rank sorts views in place. With a query, in-stock chemicals come first and
// then the closest names. Without one, in-stock chemicals come first and then
// alphabetical order. Ties keep their incoming order.
func Rank(query string, views []dto.ChemicalView) {
	ranked := make([]rankedView, len(views))
	fold := cases.Fold()
	for i, v := range views {
		ranked[i] = rankedView{view: v, inStock: v.Quantity > 0}
		if query != "" {
			ranked[i].sim = computeSimilarity(query, v.ChemicalName)
		} else {
			ranked[i].alpha = alphabeticalKey(fold, v)
		}
	}

	if query != "" {
		slices.SortStableFunc(ranked, func(a, b rankedView) int {
			if a.inStock != b.inStock {
				if a.inStock {
					return -1
				}
				return 1
			}
			return b.sim.compare(a.sim)
		})
	} else {
		slices.SortStableFunc(ranked, func(a, b rankedView) int {
			if a.inStock != b.inStock {
				if a.inStock {
					return -1
				}
				return 1
			}
			return strings.Compare(a.alpha, b.alpha)
		})
	}

	for i := range ranked {
		views[i] = ranked[i].view
	}
}

// alphabeticalKey keeps only letters and case-folds them, so "2-Propanol"
// sorts as "propanol".
func alphabeticalKey(fold cases.Caser, v dto.ChemicalView) string {
	name := v.AlphabeticalName
	if name == "" {
		name = v.ChemicalName
	}
	letters := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, name)
	return fold.String(letters)
}
