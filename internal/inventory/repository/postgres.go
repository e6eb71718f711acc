package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackaholy/Cheminv2.0/internal/inventory"
	"github.com/jackaholy/Cheminv2.0/internal/inventory/dto"
	"github.com/jackaholy/Cheminv2.0/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) GetByID(ctx context.Context, bottleID int64) (*model.Bottle, error) {
	var b model.Bottle
	query := r.DB.Rebind(`
        SELECT id, sticker_number, chemical_manufacturer_id, sub_location_id,
               product_number, is_dead, last_updated, who_updated, msds
        FROM inventory WHERE id = ?`)

	err := r.DB.GetContext(ctx, &b, query, bottleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, inventory.ErrBottleNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGRepository) SetStatus(ctx context.Context, bottleID int64, change *dto.StatusChange) error {
	query := `
        UPDATE inventory
        SET is_dead = :is_dead, last_updated = :last_updated, who_updated = :who_updated
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, map[string]interface{}{
		"id":           bottleID,
		"is_dead":      change.IsDead,
		"last_updated": change.LastUpdated,
		"who_updated":  change.WhoUpdated,
	})
	if err != nil {
		return fmt.Errorf("update bottle status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return inventory.ErrBottleNotFound
	}
	return nil
}

func (r *PGRepository) SetStatusOnShelf(ctx context.Context, shelfID int64, stickers []int64, change *dto.StatusChange) (int, error) {
	if len(stickers) == 0 {
		return 0, inventory.ErrNoStickers
	}
	stickers = distinct(stickers)

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	countQuery, args, err := sqlx.In(`
        SELECT COUNT(*) FROM inventory
        WHERE sub_location_id = ? AND sticker_number IN (?)`, shelfID, stickers)
	if err != nil {
		return 0, err
	}
	var onShelf int
	if err := tx.GetContext(ctx, &onShelf, tx.Rebind(countQuery), args...); err != nil {
		return 0, fmt.Errorf("count bottles on shelf: %w", err)
	}
	if onShelf != len(stickers) {
		return 0, inventory.ErrNotOnShelf
	}

	updateQuery, args, err := sqlx.In(`
        UPDATE inventory
        SET is_dead = ?, last_updated = ?, who_updated = ?
        WHERE sub_location_id = ? AND sticker_number IN (?)`,
		change.IsDead, change.LastUpdated, change.WhoUpdated, shelfID, stickers)
	if err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx, tx.Rebind(updateQuery), args...)
	if err != nil {
		return 0, fmt.Errorf("update bottles on shelf: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(n), nil
}

func distinct(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
