package usecase

import (
	"testing"

	"github.com/jackaholy/Cheminv2.0/internal/model"
	"github.com/jackaholy/Cheminv2.0/internal/search/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

var (
	room101 = &model.Location{ID: 1, Building: "Science", Room: "101"}
	room202 = &model.Location{ID: 2, Building: "Science", Room: "202"}
	shelfA  = &model.Shelf{ID: 1, Name: "Shelf A", LocationID: 1, Location: room101}
	cabinet = &model.Shelf{ID: 3, Name: "Cabinet C", LocationID: 2, Location: room202}
)

func bottle(id, sticker int64, shelf *model.Shelf, dead bool) model.Bottle {
	return model.Bottle{ID: id, StickerNumber: sticker, ShelfID: shelf.ID, Shelf: shelf, IsDead: dead}
}

func ethanolGraph() model.Chemical {
	return model.Chemical{
		ID:           3,
		Name:         "Ethanol",
		Formula:      strPtr("C2H5OH"),
		StorageClass: &model.StorageClass{ID: 1, Name: "Flammable"},
		Links: []model.ManufacturerLink{
			{
				ID: 2, ChemicalID: 3, ManufacturerID: 1,
				Manufacturer:  &model.Manufacturer{ID: 1, Name: "Sigma"},
				ProductNumber: strPtr("E-200"),
				Bottles:       []model.Bottle{bottle(2, 12345, shelfA, false)},
			},
			{
				ID: 3, ChemicalID: 3, ManufacturerID: 2,
				Manufacturer:  &model.Manufacturer{ID: 2, Name: "Fisher"},
				ProductNumber: strPtr("E-201"),
				Bottles: []model.Bottle{
					bottle(3, 1003, cabinet, false),
					bottle(7, 1007, shelfA, true),
				},
			},
		},
	}
}

func TestAggregate_NoFilter(t *testing.T) {
	views := Aggregate([]model.Chemical{ethanolGraph()}, dto.Filter{})
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, int64(3), v.ID)
	assert.Equal(t, "Ethanol", v.ChemicalName)
	assert.Equal(t, "Ethanol", v.AlphabeticalName)
	assert.Equal(t, "Flammable", v.StorageClass)
	assert.Equal(t, 2, v.Quantity)
	require.Len(t, v.Inventory, 3)

	first := v.Inventory[0]
	assert.Equal(t, int64(12345), first.Sticker)
	assert.Equal(t, "Sigma", first.Manufacturer)
	assert.Equal(t, "Shelf A", first.SubLocation)
	assert.Equal(t, "Science 101", first.Location)
	assert.Equal(t, int64(1), first.LocationID)
	require.NotNil(t, first.ProductNumber)
	assert.Equal(t, "E-200", *first.ProductNumber)
}

func TestAggregate_FilterNarrowsBottles(t *testing.T) {
	views := Aggregate([]model.Chemical{ethanolGraph()}, dto.Filter{RoomID: int64Ptr(1)})
	require.Len(t, views, 1)

	v := views[0]
	require.Len(t, v.Inventory, 2)
	assert.Equal(t, int64(12345), v.Inventory[0].Sticker)
	assert.Equal(t, int64(1007), v.Inventory[1].Sticker)
	// One of the two bottles left is dead.
	assert.Equal(t, 1, v.Quantity)
}

func TestAggregate_QuantityCountsLiveFilteredBottles(t *testing.T) {
	filters := []dto.Filter{
		{},
		{RoomID: int64Ptr(1)},
		{RoomID: int64Ptr(2)},
		{ShelfID: int64Ptr(3)},
		{ManufacturerIDs: []int64{2}},
		{RoomID: int64Ptr(1), ManufacturerIDs: []int64{2}},
	}
	for _, f := range filters {
		for _, v := range Aggregate([]model.Chemical{ethanolGraph()}, f) {
			live := 0
			for _, b := range v.Inventory {
				assert.True(t, f.MatchBottle(b))
				if !b.Dead {
					live++
				}
			}
			assert.Equal(t, live, v.Quantity)
		}
	}
}

func TestAggregate_FilterDropsChemicalsWithoutBottles(t *testing.T) {
	views := Aggregate([]model.Chemical{ethanolGraph()}, dto.Filter{ManufacturerIDs: []int64{99}})
	assert.Empty(t, views)
	assert.NotNil(t, views)
}

func TestAggregate_KeepsBottlelessChemicalsWithoutFilter(t *testing.T) {
	heavy := model.Chemical{ID: 2, Name: "Heavy Water", AlphabeticalName: "Water, Heavy"}
	views := Aggregate([]model.Chemical{heavy}, dto.Filter{})
	require.Len(t, views, 1)
	assert.Equal(t, 0, views[0].Quantity)
	assert.Equal(t, "Water, Heavy", views[0].AlphabeticalName)
	assert.NotNil(t, views[0].Inventory)
	assert.Empty(t, views[0].Inventory)
}

func TestAggregate_DeduplicatesChemicalsAndBottles(t *testing.T) {
	views := Aggregate([]model.Chemical{ethanolGraph(), ethanolGraph()}, dto.Filter{})
	require.Len(t, views, 1)
	assert.Len(t, views[0].Inventory, 3)
	assert.Equal(t, 2, views[0].Quantity)
}

func TestAggregate_BottleFields(t *testing.T) {
	link := model.ManufacturerLink{
		ID: 1, ManufacturerID: 1,
		ProductNumber: strPtr("W-100"),
		Bottles: []model.Bottle{
			{ID: 1, StickerNumber: 1001, ShelfID: 1, Shelf: shelfA, MSDS: strPtr("https://example.com/msds"), ProductNumber: strPtr("W-100-5L")},
			{ID: 2, StickerNumber: 1002, ShelfID: 1, Shelf: shelfA, MSDS: strPtr("  ")},
		},
	}
	chem := model.Chemical{ID: 1, Name: "Water", Links: []model.ManufacturerLink{link}}

	views := Aggregate([]model.Chemical{chem}, dto.Filter{})
	require.Len(t, views, 1)
	inv := views[0].Inventory
	require.Len(t, inv, 2)

	assert.True(t, inv[0].MSDS)
	assert.Equal(t, "W-100-5L", *inv[0].ProductNumber)
	assert.False(t, inv[1].MSDS)
	// Falls back to the manufacturer link's product number.
	assert.Equal(t, "W-100", *inv[1].ProductNumber)
	assert.Empty(t, inv[1].Manufacturer)
}

func TestAggregate_PreservesOrder(t *testing.T) {
	chems := []model.Chemical{
		{ID: 5, Name: "Acetic Acid"},
		{ID: 1, Name: "Water"},
		{ID: 3, Name: "Ethanol"},
	}
	views := Aggregate(chems, dto.Filter{})
	require.Len(t, views, 3)
	assert.Equal(t, int64(5), views[0].ID)
	assert.Equal(t, int64(1), views[1].ID)
	assert.Equal(t, int64(3), views[2].ID)
}
