package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier
// aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every courier regardless of status.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAllAvailable retrieves all couriers currently free to take a
	// delivery.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)

	// Reserve atomically flips the courier from AVAILABLE to BUSY. The
	// adapter implements it as a conditional update on the current
	// status, so two concurrent reservations of the same courier cannot
	// both succeed. Returns errs.CourierUnavailableError when the
	// courier is already busy.
	Reserve(ctx context.Context, id kernel.UUID) error

	// Release marks the courier AVAILABLE again. Releasing an already
	// available courier is a no-op.
	Release(ctx context.Context, id kernel.UUID) error
}
