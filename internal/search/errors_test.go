package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	verr := &ValidationError{}
	assert.True(t, verr.Empty())

	verr.Add("sub_location", "sub_location with ID 9 does not exist.")
	verr.Add("room", "location with ID 999 does not exist.")
	verr.Add("room", "second")

	assert.False(t, verr.Empty())
	assert.Equal(t, []string{"location with ID 999 does not exist.", "second"}, verr.Fields["room"])
	assert.Equal(t,
		"invalid request parameters: room: location with ID 999 does not exist.; second, sub_location: sub_location with ID 9 does not exist.",
		verr.Error(),
	)

	wrapped := fmt.Errorf("search: %w", verr)
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(ErrStoreQuery))
}
