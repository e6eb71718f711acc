package inventory

import (
	"context"

	"github.com/jackaholy/Cheminv2.0/internal/inventory/dto"
	"github.com/jackaholy/Cheminv2.0/internal/model"
)

type Repository interface {
	GetByID(ctx context.Context, bottleID int64) (*model.Bottle, error)

	// SetStatus writes the live/dead flag of one bottle with its audit fields.
	SetStatus(ctx context.Context, bottleID int64, change *dto.StatusChange) error

	// SetStatusOnShelf writes the flag for every listed sticker in one
	// transaction. It fails with ErrNotOnShelf, changing nothing, when any
	// sticker is not on the shelf.
	SetStatusOnShelf(ctx context.Context, shelfID int64, stickers []int64, change *dto.StatusChange) (int, error)
}
