package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a request to put a specific courier on an
// order's delivery. Re-assignment is allowed while the delivery has not
// been picked up; the previously assigned courier is released.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(orderID, courierID)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var unavailableErr *errs.CourierUnavailableError
//	    if errors.As(err, &unavailableErr) {
//	        // the courier lost the race, pick another
//	    }
//	}
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier to an
// order's delivery. Validates both identifiers.
func NewAssignCourierCommand(orderID kernel.UUID, courierID kernel.UUID) (AssignCourierCommand, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose delivery is assigned.
func (c AssignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the courier to reserve.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}
