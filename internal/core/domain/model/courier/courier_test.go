package courier_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	t.Run("starts_offline_without_position", func(t *testing.T) {
		c, err := courier.NewCourier(7, "motorcycle")
		require.NoError(t, err)

		assert.Equal(t, int64(7), c.UserID())
		assert.Equal(t, "motorcycle", c.VehicleType())
		assert.False(t, c.IsOnline())
		assert.Nil(t, c.Location())
		assert.Nil(t, c.LastSeenAt())
		require.NoError(t, c.Validate())
	})

	t.Run("rejects_non_positive_user_id", func(t *testing.T) {
		_, err := courier.NewCourier(0, "car")
		require.ErrorIs(t, err, courier.ErrUserIDIsRequired)
	})
}

func TestCourier_ReportLocation(t *testing.T) {
	c, err := courier.NewCourier(7, "bicycle")
	require.NoError(t, err)

	first, err := kernel.NewLocation(-23.5505, -46.6333)
	require.NoError(t, err)
	firstAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, c.ReportLocation(first, firstAt))

	require.NotNil(t, c.Location())
	assert.True(t, c.Location().IsEqual(first))
	assert.Equal(t, firstAt, *c.LastSeenAt())

	// A later report fully overwrites the previous one.
	second, err := kernel.NewLocation(-23.5613, -46.6565)
	require.NoError(t, err)
	secondAt := firstAt.Add(time.Minute)
	require.NoError(t, c.ReportLocation(second, secondAt))

	assert.True(t, c.Location().IsEqual(second))
	assert.Equal(t, secondAt, *c.LastSeenAt())
}

func TestCourier_ReportLocation_RejectsUnconstructedLocation(t *testing.T) {
	c, err := courier.NewCourier(7, "bicycle")
	require.NoError(t, err)

	var zero kernel.Location
	require.Error(t, c.ReportLocation(zero, time.Now()))
	assert.Nil(t, c.Location())
}

func TestCourier_ToggleOnline(t *testing.T) {
	c, err := courier.NewCourier(7, "car")
	require.NoError(t, err)

	assert.True(t, c.ToggleOnline())
	assert.True(t, c.IsOnline())
	assert.False(t, c.ToggleOnline())
	assert.False(t, c.IsOnline())
}

func TestRestoreCourier(t *testing.T) {
	t.Run("restores_full_state", func(t *testing.T) {
		loc, err := kernel.NewLocation(-23.5505, -46.6333)
		require.NoError(t, err)
		seen := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

		c, err := courier.RestoreCourier(7, "van", true, &loc, &seen)
		require.NoError(t, err)

		assert.True(t, c.IsOnline())
		assert.True(t, c.Location().IsEqual(loc))
		assert.Equal(t, seen, *c.LastSeenAt())
	})

	t.Run("restores_courier_without_position", func(t *testing.T) {
		c, err := courier.RestoreCourier(7, "van", false, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, c.Location())
	})

	t.Run("rejects_unconstructed_location", func(t *testing.T) {
		var zero kernel.Location
		_, err := courier.RestoreCourier(7, "van", false, &zero, nil)
		require.Error(t, err)
	})
}

func TestCourier_Validate(t *testing.T) {
	var c *courier.Courier
	require.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	require.ErrorIs(t, (&courier.Courier{}).Validate(), courier.ErrCourierIsNotConstructed)
}
