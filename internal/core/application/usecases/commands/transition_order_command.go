package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move an order to a new
// lifecycle status. Every status change in the system, whether user driven
// or cascade driven, funnels through this command's handler so the
// transition table is enforced in exactly one place.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.StatusConfirmed)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var transitionErr *errs.InvalidTransitionError
//	    if errors.As(err, &transitionErr) {
//	        // surface as a conflict to the caller
//	    }
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// Validates the order ID and that the target is a known status.
func NewTransitionOrderCommand(orderID kernel.UUID, target order.Status) (TransitionOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), target.Validate()); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}
