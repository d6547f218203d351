package courier_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	t.Run("should create available courier", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := courier.NewCourier(id, "Alex Kim", "+15550101", "motorcycle", "AB-123")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Alex Kim", c.Name())
		assert.Equal(t, courier.StatusAvailable, c.Status())
		assert.True(t, c.IsAvailable())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "", "", "bicycle", "")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Equal(t, courier.ErrNameIsRequired, err)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.UUID{}, "Alex Kim", "", "bicycle", "")

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should allow empty vehicle metadata", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "Alex Kim", "", "", "")

		require.NoError(t, err)
		assert.Empty(t, c.VehicleType())
		assert.Empty(t, c.VehiclePlate())
	})
}

func TestCourier_Reserve(t *testing.T) {
	t.Run("should flip available courier to busy", func(t *testing.T) {
		c, _ := courier.NewCourier(kernel.NewUUID(), "Alex Kim", "", "bicycle", "")

		require.NoError(t, c.Reserve())

		assert.Equal(t, courier.StatusBusy, c.Status())
		assert.False(t, c.IsAvailable())
	})

	t.Run("should fail when courier is already busy", func(t *testing.T) {
		c, _ := courier.NewCourier(kernel.NewUUID(), "Alex Kim", "", "bicycle", "")
		require.NoError(t, c.Reserve())

		err := c.Reserve()

		require.Error(t, err)
		var unavailableErr *errs.CourierUnavailableError
		require.ErrorAs(t, err, &unavailableErr)
		assert.Equal(t, courier.StatusBusy, c.Status())
	})
}

func TestCourier_Release(t *testing.T) {
	t.Run("should return busy courier to available", func(t *testing.T) {
		c, _ := courier.NewCourier(kernel.NewUUID(), "Alex Kim", "", "bicycle", "")
		require.NoError(t, c.Reserve())

		c.Release()

		assert.True(t, c.IsAvailable())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		c, _ := courier.NewCourier(kernel.NewUUID(), "Alex Kim", "", "bicycle", "")

		c.Release()
		c.Release()

		assert.True(t, c.IsAvailable())
	})
}

func TestRestoreCourier(t *testing.T) {
	t.Run("should restore courier with persisted status", func(t *testing.T) {
		c, err := courier.RestoreCourier(kernel.NewUUID(), "Alex Kim", "+15550101", "car", "CD-456", courier.StatusBusy)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, courier.StatusBusy, c.Status())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		c, err := courier.RestoreCourier(kernel.NewUUID(), "Alex Kim", "", "car", "", courier.StatusUnknown)

		require.Error(t, err)
		assert.Nil(t, c)
	})
}
