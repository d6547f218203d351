package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateKitchenTicketsCommandIsNotConstructed = errors.New(
	"CreateKitchenTicketsCommand must be created via NewCreateKitchenTicketsCommand constructor",
)

// CreateKitchenTicketsCommand represents a request to fan an order out to
// the kitchen. One ticket is created per department the order's items
// route to. Re-sending an order that already has tickets is a no-op.
type CreateKitchenTicketsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateKitchenTicketsCommand creates a command to fan an order out to
// kitchen tickets. Validates the order ID.
func NewCreateKitchenTicketsCommand(orderID kernel.UUID) (CreateKitchenTicketsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateKitchenTicketsCommand{}, err
	}

	return CreateKitchenTicketsCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateKitchenTicketsCommandIsNotConstructed if validation fails.
func (c CreateKitchenTicketsCommand) Validate() error {
	return c.guard.Validate(ErrCreateKitchenTicketsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to ticket.
func (c CreateKitchenTicketsCommand) OrderID() kernel.UUID {
	return c.orderID
}
