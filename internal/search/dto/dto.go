package dto

import "slices"

// Filter is the structural filter of a search. The predicate builder and the
// aggregator both consume it so the chemical-level and bottle-level passes
// cannot disagree.
type Filter struct {
	RoomID          *int64  `validate:"omitempty,gt=0"`
	ShelfID         *int64  `validate:"omitempty,gt=0"`
	ManufacturerIDs []int64 `validate:"omitempty,dive,gt=0"`
}

func (f Filter) IsEmpty() bool {
	return f.RoomID == nil && f.ShelfID == nil && len(f.ManufacturerIDs) == 0
}

// MatchBottle reports whether one bottle satisfies every active filter.
func (f Filter) MatchBottle(b BottleView) bool {
	if f.RoomID != nil && b.LocationID != *f.RoomID {
		return false
	}
	if f.ShelfID != nil && b.SubLocationID != *f.ShelfID {
		return false
	}
	if len(f.ManufacturerIDs) > 0 && !slices.Contains(f.ManufacturerIDs, b.ManufacturerID) {
		return false
	}
	return true
}

type SearchInput struct {
	Query    string
	Filter   Filter
	Synonyms bool
}
