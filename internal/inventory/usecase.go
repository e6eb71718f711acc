package inventory

import (
	"context"

	"github.com/jackaholy/Cheminv2.0/internal/model"
)

type UseCase interface {
	MarkDead(ctx context.Context, bottleID int64) (*model.Bottle, error)
	MarkAlive(ctx context.Context, bottleID int64) (*model.Bottle, error)
	MarkManyDead(ctx context.Context, shelfID int64, stickers []int64) (int, error)
}
