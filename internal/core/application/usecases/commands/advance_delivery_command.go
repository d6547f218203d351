package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand represents a courier or dispatcher moving an
// order's delivery through its lifecycle. Terminal statuses release the
// courier and synchronize the owning order.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  delivery.Status

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates a command to advance an order's
// delivery. Validates the order ID and that the target is a known status.
func NewAdvanceDeliveryCommand(orderID kernel.UUID, target delivery.Status) (AdvanceDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), target.Validate()); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return AdvanceDeliveryCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceDeliveryCommandIsNotConstructed if validation fails.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose delivery advances.
func (c AdvanceDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status for the delivery.
func (c AdvanceDeliveryCommand) Target() delivery.Status {
	return c.target
}
