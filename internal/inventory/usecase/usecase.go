package usecase

import (
	"context"
	"time"

	"github.com/jackaholy/Cheminv2.0/internal/auth"
	"github.com/jackaholy/Cheminv2.0/internal/inventory"
	"github.com/jackaholy/Cheminv2.0/internal/inventory/dto"
	"github.com/jackaholy/Cheminv2.0/internal/logger"
	"github.com/jackaholy/Cheminv2.0/internal/model"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

func (uc *inventoryUseCase) MarkDead(ctx context.Context, bottleID int64) (*model.Bottle, error) {
	return uc.setStatus(ctx, bottleID, true)
}

func (uc *inventoryUseCase) MarkAlive(ctx context.Context, bottleID int64) (*model.Bottle, error) {
	return uc.setStatus(ctx, bottleID, false)
}

func (uc *inventoryUseCase) MarkManyDead(ctx context.Context, shelfID int64, stickers []int64) (int, error) {
	if len(stickers) == 0 {
		return 0, inventory.ErrNoStickers
	}
	n, err := uc.repo.SetStatusOnShelf(ctx, shelfID, stickers, uc.change(ctx, true))
	if err != nil {
		return 0, err
	}
	uc.logger.Info("Marked bottles dead",
		zap.Int64("sub_location_id", shelfID),
		zap.Int("count", n),
		zap.String("user", auth.GetUserID(ctx)),
	)
	return n, nil
}

// setStatus writes the flag even when it already has the requested value, so
// a repeated toggle still refreshes who saw the bottle last.
func (uc *inventoryUseCase) setStatus(ctx context.Context, bottleID int64, dead bool) (*model.Bottle, error) {
	if err := uc.repo.SetStatus(ctx, bottleID, uc.change(ctx, dead)); err != nil {
		return nil, err
	}
	uc.logger.Info("Bottle status changed",
		zap.Int64("inventory_id", bottleID),
		zap.Bool("dead", dead),
		zap.String("user", auth.GetUserID(ctx)),
	)
	return uc.repo.GetByID(ctx, bottleID)
}

func (uc *inventoryUseCase) change(ctx context.Context, dead bool) *dto.StatusChange {
	c := &dto.StatusChange{
		IsDead:      dead,
		LastUpdated: uc.now().UTC(),
	}
	if user := auth.GetUserID(ctx); user != "" {
		c.WhoUpdated = &user
	}
	return c
}
