package usecase

import (
	"github.com/jackaholy/Cheminv2.0/internal/model"
	"github.com/jackaholy/Cheminv2.0/internal/search/dto"
)

// Aggregate flattens chemical graphs into per-chemical views in one pass.
// Bottles are re-checked against f one by one because a chemical that passed
// the chemical-level filter may still hold bottles elsewhere. Quantity is the
// number of live bottles left after that check and nothing else.
//
// With an active filter, chemicals left without bottles are dropped. Without
// one, bottle-less chemicals stay in the list with quantity 0.
func Aggregate(chemicals []model.Chemical, f dto.Filter) []dto.ChemicalView {
	order := make([]int64, 0, len(chemicals))
	views := make(map[int64]*dto.ChemicalView, len(chemicals))
	seenBottles := map[int64]struct{}{}

	for i := range chemicals {
		chem := &chemicals[i]
		view, ok := views[chem.ID]
		if !ok {
			view = newChemicalView(chem)
			views[chem.ID] = view
			order = append(order, chem.ID)
		}

		for j := range chem.Links {
			link := &chem.Links[j]
			for k := range link.Bottles {
				bottle := &link.Bottles[k]
				if _, dup := seenBottles[bottle.ID]; dup {
					continue
				}
				seenBottles[bottle.ID] = struct{}{}

				bv := newBottleView(link, bottle)
				if !f.MatchBottle(bv) {
					continue
				}
				view.Inventory = append(view.Inventory, bv)
			}
		}
	}

	filtered := !f.IsEmpty()
	result := make([]dto.ChemicalView, 0, len(order))
	for _, id := range order {
		view := views[id]
		if filtered && len(view.Inventory) == 0 {
			continue
		}
		view.Quantity = liveCount(view.Inventory)
		result = append(result, *view)
	}
	return result
}

func liveCount(bottles []dto.BottleView) int {
	n := 0
	for _, b := range bottles {
		if !b.Dead {
			n++
		}
	}
	return n
}

func newChemicalView(chem *model.Chemical) *dto.ChemicalView {
	view := &dto.ChemicalView{
		ID:               chem.ID,
		ChemicalName:     chem.Name,
		AlphabeticalName: chem.SortName(),
		Formula:          chem.Formula,
		Inventory:        []dto.BottleView{},
	}
	if chem.StorageClass != nil {
		view.StorageClass = chem.StorageClass.Name
	}
	return view
}

func newBottleView(link *model.ManufacturerLink, b *model.Bottle) dto.BottleView {
	bv := dto.BottleView{
		ID:             b.ID,
		Sticker:        b.StickerNumber,
		ProductNumber:  b.ProductNumber,
		SubLocationID:  b.ShelfID,
		ManufacturerID: link.ManufacturerID,
		Dead:           b.IsDead,
		MSDS:           b.HasMSDS(),
		LastUpdated:    b.LastUpdated,
		WhoUpdated:     b.WhoUpdated,
	}
	if bv.ProductNumber == nil {
		bv.ProductNumber = link.ProductNumber
	}
	if link.Manufacturer != nil {
		bv.Manufacturer = link.Manufacturer.Name
	}
	if b.Shelf != nil {
		bv.SubLocation = b.Shelf.Name
		bv.LocationID = b.Shelf.LocationID
		if b.Shelf.Location != nil {
			bv.Location = b.Shelf.Location.Label()
		}
	}
	return bv
}
