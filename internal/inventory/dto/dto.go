package dto

import "time"

// StatusChange is one write of the live/dead flag.
type StatusChange struct {
	IsDead      bool
	LastUpdated time.Time
	WhoUpdated  *string
}

type MarkInput struct {
	InventoryID int64 `json:"inventory_id"`
}

type MarkManyDeadInput struct {
	SubLocationID  int64   `json:"sub_location_id"`
	StickerNumbers []int64 `json:"sticker_numbers"`
}
