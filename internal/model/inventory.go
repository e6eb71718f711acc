package model

import (
	"strings"
	"time"
)

// Bottle is one physical container, identified by its sticker number.
type Bottle struct {
	ID                 int64      `db:"id" json:"id"`
	StickerNumber      int64      `db:"sticker_number" json:"sticker_number"`
	ManufacturerLinkID int64      `db:"chemical_manufacturer_id" json:"manufacturer_link_id"`
	ShelfID            int64      `db:"sub_location_id" json:"sub_location_id"`
	Shelf              *Shelf     `db:"-" json:"sub_location"`
	ProductNumber      *string    `db:"product_number" json:"product_number"`
	IsDead             bool       `db:"is_dead" json:"dead"`
	LastUpdated        *time.Time `db:"last_updated" json:"last_updated"`
	WhoUpdated         *string    `db:"who_updated" json:"who_updated"`
	MSDS               *string    `db:"msds" json:"msds"`
}

func (b *Bottle) HasMSDS() bool {
	return b.MSDS != nil && strings.TrimSpace(*b.MSDS) != ""
}

// Shelf is a sub-location (shelf, cabinet) inside a Location.
type Shelf struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	LocationID int64     `db:"location_id" json:"location_id"`
	Location   *Location `db:"-" json:"location"`
}

type Location struct {
	ID       int64  `db:"id" json:"id"`
	Building string `db:"building" json:"building"`
	Room     string `db:"room" json:"room"`
}

func (l *Location) Label() string {
	return strings.TrimSpace(l.Building + " " + l.Room)
}
