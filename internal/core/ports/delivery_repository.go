package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates. There is at most one delivery per order, enforced by a
// unique index on order_id.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrder retrieves the delivery created for the given order.
	// Returns errs.ObjectNotFoundError when the order has no delivery.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate retrieves a delivery while holding a row lock for the
	// remainder of the surrounding transaction, so concurrent status
	// transitions and courier assignments serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetFirstPending retrieves the oldest delivery still waiting for a
	// courier. Returns errs.ObjectNotFoundError when none is pending.
	GetFirstPending(ctx context.Context) (*delivery.Delivery, error)
}
