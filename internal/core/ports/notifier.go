package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderNotifier announces order lifecycle milestones to interested
// parties. Implementations must not fail the calling command: delivery
// of a notification is best effort and errors are logged, not returned.
type OrderNotifier interface {
	// OrderCompleted fires when an order reaches COMPLETED or DELIVERED.
	OrderCompleted(ctx context.Context, aggregate *order.Order)

	// OrderCancelled fires when an order reaches CANCELLED.
	OrderCancelled(ctx context.Context, aggregate *order.Order)
}
