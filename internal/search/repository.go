package search

import (
	"context"

	"github.com/jackaholy/Cheminv2.0/internal/model"
)

// EntityKind names a table whose ids can be checked for existence.
type EntityKind string

const (
	KindLocation     EntityKind = "location"
	KindShelf        EntityKind = "sub_location"
	KindManufacturer EntityKind = "manufacturer"
)

type Repository interface {
	// FetchChemicals returns every chemical matching p with its whole graph
	// (links, manufacturers, bottles, shelves, locations) attached, ordered by id.
	FetchChemicals(ctx context.Context, p Predicate) ([]model.Chemical, error)

	// MissingIDs returns the subset of ids with no row of the given kind.
	MissingIDs(ctx context.Context, kind EntityKind, ids []int64) ([]int64, error)
}
