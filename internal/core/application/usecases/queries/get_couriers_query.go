package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCouriersQueryIsNotConstructed = errors.New(
	"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
)

// GetCouriersQuery retrieves the courier roster for the dispatch surface,
// optionally narrowed to couriers free to take a delivery.
type GetCouriersQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewGetCouriersQuery creates a query to retrieve couriers.
func NewGetCouriersQuery(onlyAvailable bool) GetCouriersQuery {
	return GetCouriersQuery{
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCouriersQueryIsNotConstructed if validation fails.
func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

// OnlyAvailable reports whether busy couriers are filtered out.
func (q GetCouriersQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

// GetCouriersQueryResponse represents one courier on the roster.
type GetCouriersQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Phone        string
	VehicleType  string
	VehiclePlate string
	Status       string
}
