package inventory

import "errors"

var (
	ErrBottleNotFound = errors.New("bottle not found")
	ErrNotOnShelf     = errors.New("some sticker numbers are not in the specified sub-location")
	ErrNoStickers     = errors.New("no sticker numbers given")
)
