package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackaholy/Cheminv2.0/internal/inventory"
	"github.com/jackaholy/Cheminv2.0/internal/inventory/dto"
	"github.com/jackaholy/Cheminv2.0/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededRepo(t *testing.T) *PGRepository {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	testutil.SeedLab(t, db)
	return NewPGRepository(db)
}

var changedAt = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func change(dead bool, who string) *dto.StatusChange {
	return &dto.StatusChange{IsDead: dead, LastUpdated: changedAt, WhoUpdated: &who}
}

func TestGetByID(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	b, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), b.StickerNumber)
	assert.Equal(t, testutil.ShelfA, b.ShelfID)
	assert.False(t, b.IsDead)
	require.NotNil(t, b.WhoUpdated)
	assert.Equal(t, "anne", *b.WhoUpdated)
	assert.True(t, b.HasMSDS())
	assert.Nil(t, b.LastUpdated)

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, inventory.ErrBottleNotFound)
}

func TestSetStatus(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetStatus(ctx, 4, change(true, "bob")))

	b, err := repo.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.True(t, b.IsDead)
	require.NotNil(t, b.WhoUpdated)
	assert.Equal(t, "bob", *b.WhoUpdated)
	require.NotNil(t, b.LastUpdated)
	assert.True(t, changedAt.Equal(*b.LastUpdated))

	// Writing the same value again still succeeds.
	require.NoError(t, repo.SetStatus(ctx, 4, change(true, "carol")))
	b, err = repo.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "carol", *b.WhoUpdated)

	err = repo.SetStatus(ctx, 404, change(true, "bob"))
	assert.ErrorIs(t, err, inventory.ErrBottleNotFound)
}

func TestSetStatusOnShelf(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	n, err := repo.SetStatusOnShelf(ctx, testutil.CabinetC, []int64{1003, 1006, 1003}, change(true, "dave"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []int64{3, 6} {
		b, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, b.IsDead)
		assert.Equal(t, "dave", *b.WhoUpdated)
	}
}

func TestSetStatusOnShelf_StickerElsewhereChangesNothing(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	// 1001 sits on Shelf A, not Cabinet C.
	_, err := repo.SetStatusOnShelf(ctx, testutil.CabinetC, []int64{1006, 1001}, change(true, "dave"))
	assert.ErrorIs(t, err, inventory.ErrNotOnShelf)

	b, err := repo.GetByID(ctx, 6)
	require.NoError(t, err)
	assert.False(t, b.IsDead)

	_, err = repo.SetStatusOnShelf(ctx, testutil.CabinetC, []int64{424242}, change(true, "dave"))
	assert.ErrorIs(t, err, inventory.ErrNotOnShelf)
}

func TestSetStatusOnShelf_NoStickers(t *testing.T) {
	repo := newSeededRepo(t)

	_, err := repo.SetStatusOnShelf(context.Background(), testutil.CabinetC, nil, change(true, "dave"))
	assert.ErrorIs(t, err, inventory.ErrNoStickers)
}
