package kernel_test

import (
	"testing"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		c, err := kernel.NewCoordinates(3.211, 123.1213, "10 Long Lama")

		require.NoError(t, err)
		assert.InDelta(t, 3.211, c.Latitude(), 1e-9)
		assert.InDelta(t, 123.1213, c.Longitude(), 1e-9)
		assert.Equal(t, "10 Long Lama", c.Address())
		require.NoError(t, c.Validate())
	})

	t.Run("boundary values accepted", func(t *testing.T) {
		_, err := kernel.NewCoordinates(kernel.LatitudeMin, kernel.LongitudeMax, "")
		require.NoError(t, err)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(90.5, 0, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(0, -180.1, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty address allowed", func(t *testing.T) {
		_, err := kernel.NewCoordinates(1, 1, "")
		require.NoError(t, err)
	})
}

func TestCoordinates_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var c kernel.Coordinates

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrCoordinatesAreNotConstructed, err)
	})
}

func TestCoordinates_String(t *testing.T) {
	c, err := kernel.NewCoordinates(3.12, 173.1233, "112 Long Lama")
	require.NoError(t, err)

	assert.Equal(t, "Coordinates(3.12,173.1233)", c.String())
}
