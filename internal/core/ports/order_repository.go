// Package ports defines the contracts between the application core and
// infrastructure: per-aggregate repositories, the unit of work, and the
// external collaborators the engine consumes (menu catalog, notifier).
// These interfaces establish dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order while holding a row lock for the
	// remainder of the surrounding transaction. Every read-check-write on
	// order status goes through this method so concurrent transitions
	// serialize instead of racing.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders not yet in a terminal status.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetActiveOlderThan retrieves non-terminal orders created before the
	// cutoff, used by the stale-order escalation job.
	GetActiveOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
