package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
)

// KitchenTicketRepository defines the persistence contract for kitchen
// ticket aggregates. Tickets are always created in batches per order, so
// Add accepts a slice and writes it atomically within the active
// transaction.
type KitchenTicketRepository interface {
	// Add persists a batch of new ticket aggregates to storage.
	Add(ctx context.Context, tickets []*kitchen.Ticket) error

	// Update persists changes to an existing ticket aggregate.
	Update(ctx context.Context, ticket *kitchen.Ticket) error

	// Get retrieves a ticket aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*kitchen.Ticket, error)

	// GetByOrder retrieves all tickets created for the given order.
	// Returns an empty slice when the order has no tickets yet.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*kitchen.Ticket, error)

	// GetAllActive retrieves all tickets not yet in a terminal status,
	// with their items. Feeds the kitchen queue projection.
	GetAllActive(ctx context.Context) ([]*kitchen.Ticket, error)
}
