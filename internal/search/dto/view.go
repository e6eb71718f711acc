package dto

import "time"

// ChemicalView is one aggregated search result.
type ChemicalView struct {
	ID               int64        `json:"id"`
	ChemicalName     string       `json:"chemical_name"`
	AlphabeticalName string       `json:"-"`
	Formula          *string      `json:"formula"`
	StorageClass     string       `json:"storage_class"`
	Quantity         int          `json:"quantity"`
	Inventory        []BottleView `json:"inventory"`
}

// BottleView is one bottle of a ChemicalView, flattened with its shelf,
// location and manufacturer.
type BottleView struct {
	ID             int64      `json:"id"`
	Sticker        int64      `json:"sticker"`
	ProductNumber  *string    `json:"product_number"`
	SubLocation    string     `json:"sub_location"`
	SubLocationID  int64      `json:"sub_location_id"`
	Location       string     `json:"location"`
	LocationID     int64      `json:"location_id"`
	Manufacturer   string     `json:"manufacturer"`
	ManufacturerID int64      `json:"manufacturer_id"`
	Dead           bool       `json:"dead"`
	MSDS           bool       `json:"msds"`
	LastUpdated    *time.Time `json:"last_updated"`
	WhoUpdated     *string    `json:"who_updated"`
}
