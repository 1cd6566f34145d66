package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrSameStation)

	appErr, ok := As(wrapped)

	assert.True(t, ok)
	assert.Equal(t, "SAME_STATION", appErr.Code)
	assert.Equal(t, 400, appErr.StatusCode)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestWithDetails_DoesNotMutateSentinel(t *testing.T) {
	detailed := ErrStationNotFound.WithDetails(map[string]interface{}{"station_id": 42})

	assert.Equal(t, 42, detailed.Details["station_id"])
	assert.Nil(t, ErrStationNotFound.Details)
	assert.Equal(t, "STATION_NOT_FOUND: Station not found", ErrStationNotFound.Error())
}
