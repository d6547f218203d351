package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrEnsureDeliveryCommandIsNotConstructed = errors.New(
	"EnsureDeliveryCommand must be created via NewEnsureDeliveryCommand constructor",
)

// EnsureDeliveryCommand represents a request to make sure a delivery order
// has its delivery record. Idempotent: at most one delivery exists per
// order, re-invocation leaves the existing one untouched.
type EnsureDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	fee     int64

	guard guard.ConstructorGuard
}

// NewEnsureDeliveryCommand creates a command to ensure an order's delivery.
// The fee is in minor currency units and applies only when a new delivery
// is created. Validates the order ID and that the fee is non-negative.
func NewEnsureDeliveryCommand(orderID kernel.UUID, fee int64) (EnsureDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return EnsureDeliveryCommand{}, err
	}
	if fee < 0 {
		return EnsureDeliveryCommand{}, errs.NewValueIsInvalidError("delivery fee")
	}

	return EnsureDeliveryCommand{
		orderID: orderID,
		fee:     fee,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEnsureDeliveryCommandIsNotConstructed if validation fails.
func (c EnsureDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrEnsureDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to ensure a delivery for.
func (c EnsureDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Fee returns the delivery fee in minor currency units.
func (c EnsureDeliveryCommand) Fee() int64 {
	return c.fee
}
