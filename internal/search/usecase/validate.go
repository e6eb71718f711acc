package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackaholy/Cheminv2.0/internal/search"
	"github.com/jackaholy/Cheminv2.0/internal/search/dto"
)

// Field names reported in validation errors, matching the request parameters.
const (
	fieldRoom          = "room"
	fieldSubLocation   = "sub_location"
	fieldManufacturers = "manufacturers"
)

// FilterValidator rejects malformed or unknown filter ids before a search runs.
type FilterValidator struct {
	repo     search.Repository
	validate *validator.Validate
}

func NewFilterValidator(repo search.Repository) *FilterValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		switch f.Name {
		case "RoomID":
			return fieldRoom
		case "ShelfID":
			return fieldSubLocation
		case "ManufacturerIDs":
			return fieldManufacturers
		}
		return f.Name
	})
	return &FilterValidator{repo: repo, validate: v}
}

// Validate returns a *search.ValidationError listing every bad id, or an
// error wrapping search.ErrStoreQuery when existence cannot be checked.
func (v *FilterValidator) Validate(ctx context.Context, f dto.Filter) error {
	verr := &search.ValidationError{}

	if err := v.validate.StructCtx(ctx, f); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			verr.Add(fieldKey(fe.Field()), fmt.Sprintf("%v is not a valid ID.", fe.Value()))
		}
		return verr
	}

	checks := []struct {
		kind  search.EntityKind
		field string
		ids   []int64
		each  bool
	}{
		{search.KindLocation, fieldRoom, optional(f.RoomID), false},
		{search.KindShelf, fieldSubLocation, optional(f.ShelfID), false},
		{search.KindManufacturer, fieldManufacturers, f.ManufacturerIDs, true},
	}
	for _, c := range checks {
		if len(c.ids) == 0 {
			continue
		}
		missing, err := v.repo.MissingIDs(ctx, c.kind, c.ids)
		if err != nil {
			return fmt.Errorf("%w: check %s ids: %w", search.ErrStoreQuery, c.kind, err)
		}
		for _, id := range missing {
			field := c.field
			if c.each {
				for i, candidate := range c.ids {
					if candidate == id {
						field = fmt.Sprintf("%s.%d", c.field, i)
						break
					}
				}
			}
			verr.Add(field, fmt.Sprintf("%s with ID %d does not exist.", c.kind, id))
		}
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

// fieldKey turns "manufacturers[1]" into "manufacturers.1".
func fieldKey(field string) string {
	field = strings.ReplaceAll(field, "[", ".")
	return strings.ReplaceAll(field, "]", "")
}

func optional(id *int64) []int64 {
	if id == nil {
		return nil
	}
	return []int64{*id}
}
