package delivery_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "12 Main St", 500, time.Now().UTC())
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should create pending delivery", func(t *testing.T) {
		orderID := kernel.NewUUID()

		d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, "12 Main St", 500, now)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.StatusPending, d.Status())
		assert.True(t, d.OrderID().IsEqual(orderID))
		assert.Equal(t, int64(500), d.Fee())
		assert.Nil(t, d.Courier())
		assert.Nil(t, d.AssignedAt())
	})

	t.Run("should fail without address", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "", 500, now)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "delivery address")
	})

	t.Run("should fail with negative fee", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "12 Main St", -1, now)

		require.Error(t, err)
		assert.Nil(t, d)
	})

	t.Run("should accept zero fee", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "12 Main St", 0, now)

		require.NoError(t, err)
		assert.Equal(t, int64(0), d.Fee())
	})
}

func TestDelivery_Assign(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should assign courier to pending delivery", func(t *testing.T) {
		d := newTestDelivery(t)
		courierID := kernel.NewUUID()

		require.NoError(t, d.Assign(courierID, now))

		assert.Equal(t, delivery.StatusAssigned, d.Status())
		require.NotNil(t, d.Courier())
		assert.True(t, d.Courier().IsEqual(courierID))
		require.NotNil(t, d.AssignedAt())
	})

	t.Run("should allow re-assignment before pickup", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), now))

		replacement := kernel.NewUUID()
		require.NoError(t, d.Assign(replacement, now))

		assert.Equal(t, delivery.StatusAssigned, d.Status())
		assert.True(t, d.Courier().IsEqual(replacement))
	})

	t.Run("should reject assignment after pickup", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), now))
		require.NoError(t, d.AdvanceTo(delivery.StatusPickedUp, now))

		err := d.Assign(kernel.NewUUID(), now)

		require.Error(t, err)
		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
	})

	t.Run("should reject invalid courier id", func(t *testing.T) {
		d := newTestDelivery(t)

		require.Error(t, d.Assign(kernel.UUID{}, now))
		assert.Equal(t, delivery.StatusPending, d.Status())
	})
}

func TestDelivery_AdvanceTo(t *testing.T) {
	now := time.Now().UTC()

	assigned := func(t *testing.T) *delivery.Delivery {
		t.Helper()
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), now))
		return d
	}

	t.Run("should walk the happy path and stamp timestamps", func(t *testing.T) {
		d := assigned(t)

		require.NoError(t, d.AdvanceTo(delivery.StatusPickedUp, now))
		require.NotNil(t, d.PickedUpAt())

		require.NoError(t, d.AdvanceTo(delivery.StatusInTransit, now))
		require.NoError(t, d.AdvanceTo(delivery.StatusDelivered, now))

		assert.Equal(t, delivery.StatusDelivered, d.Status())
		require.NotNil(t, d.DeliveredAt())
		assert.True(t, d.IsTerminal())
	})

	t.Run("should allow delivering straight from picked up", func(t *testing.T) {
		d := assigned(t)
		require.NoError(t, d.AdvanceTo(delivery.StatusPickedUp, now))

		require.NoError(t, d.AdvanceTo(delivery.StatusDelivered, now))
		assert.Equal(t, delivery.StatusDelivered, d.Status())
	})

	t.Run("should allow dispatched as an intermediate hop", func(t *testing.T) {
		d := assigned(t)
		require.NoError(t, d.AdvanceTo(delivery.StatusPickedUp, now))
		require.NoError(t, d.AdvanceTo(delivery.StatusDispatched, now))
		require.NoError(t, d.AdvanceTo(delivery.StatusInTransit, now))

		assert.Equal(t, delivery.StatusInTransit, d.Status())
	})

	t.Run("should allow failed and returned outcomes in transit", func(t *testing.T) {
		for _, target := range []delivery.Status{delivery.StatusFailed, delivery.StatusReturned} {
			d := assigned(t)
			require.NoError(t, d.AdvanceTo(delivery.StatusPickedUp, now))
			require.NoError(t, d.AdvanceTo(delivery.StatusInTransit, now))

			require.NoError(t, d.AdvanceTo(target, now))
			assert.Equal(t, target, d.Status())
			assert.True(t, d.IsTerminal())
		}
	})

	t.Run("should reject pickup before assignment", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.AdvanceTo(delivery.StatusPickedUp, now)

		require.Error(t, err)
		assert.Equal(t, delivery.StatusPending, d.Status())
	})

	t.Run("should reject moves out of a terminal status", func(t *testing.T) {
		d := assigned(t)
		require.NoError(t, d.AdvanceTo(delivery.StatusPickedUp, now))
		require.NoError(t, d.AdvanceTo(delivery.StatusDelivered, now))

		err := d.AdvanceTo(delivery.StatusInTransit, now)

		require.Error(t, err)
	})

	t.Run("should treat re-applying the current status as a no-op", func(t *testing.T) {
		d := assigned(t)

		require.NoError(t, d.AdvanceTo(delivery.StatusAssigned, now))
		assert.Equal(t, delivery.StatusAssigned, d.Status())
	})
}

func TestDelivery_Cancel(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should cancel pending delivery", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Cancel(now))

		assert.Equal(t, delivery.StatusCancelled, d.Status())
		require.NotNil(t, d.CancelledAt())
	})

	t.Run("should cancel in-transit delivery", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), now))
		require.NoError(t, d.AdvanceTo(delivery.StatusPickedUp, now))
		require.NoError(t, d.AdvanceTo(delivery.StatusInTransit, now))

		require.NoError(t, d.Cancel(now))
		assert.Equal(t, delivery.StatusCancelled, d.Status())
	})

	t.Run("should treat repeated cancel as a no-op", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Cancel(now))

		require.NoError(t, d.Cancel(now))
		assert.Equal(t, delivery.StatusCancelled, d.Status())
	})

	t.Run("should reject cancelling a delivered delivery", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), now))
		require.NoError(t, d.AdvanceTo(delivery.StatusPickedUp, now))
		require.NoError(t, d.AdvanceTo(delivery.StatusDelivered, now))

		err := d.Cancel(now)

		require.Error(t, err)
		var stateErr *errs.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
	})
}
