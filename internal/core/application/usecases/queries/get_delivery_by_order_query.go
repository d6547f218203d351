package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDeliveryByOrderQueryIsNotConstructed = errors.New(
	"GetDeliveryByOrderQuery must be created via NewGetDeliveryByOrderQuery constructor",
)

// GetDeliveryByOrderQuery retrieves the delivery view of one order,
// including the assigned courier when present.
type GetDeliveryByOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryByOrderQuery creates a query for an order's delivery view.
// Validates the order ID.
func NewGetDeliveryByOrderQuery(orderID kernel.UUID) (GetDeliveryByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryByOrderQuery{}, err
	}

	return GetDeliveryByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryByOrderQueryIsNotConstructed if validation fails.
func (q GetDeliveryByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose delivery is requested.
func (q GetDeliveryByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// DeliveryCourierResponse is the courier slice of the delivery view.
type DeliveryCourierResponse struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// GetDeliveryByOrderQueryResponse represents one order's delivery with the
// assigned courier, nil while the delivery is unassigned.
type GetDeliveryByOrderQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Status      string
	Address     string
	Fee         int64
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	CreatedAt   time.Time
	Courier     *DeliveryCourierResponse
}
