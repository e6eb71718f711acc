package search

import (
	"context"

	"github.com/jackaholy/Cheminv2.0/internal/search/dto"
)

type UseCase interface {
	Search(ctx context.Context, input *dto.SearchInput) ([]dto.ChemicalView, error)
}
