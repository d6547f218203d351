package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrAutoAssignCouriersCommandIsNotConstructed = errors.New(
	"AutoAssignCouriersCommand must be created via NewAutoAssignCouriersCommand constructor",
)

// AutoAssignCouriersCommand triggers one round of automatic dispatch: the
// oldest delivery still waiting for a courier is matched with an available
// one. Issued periodically by the background job.
//
// Example:
//
//	cmd := NewAutoAssignCouriersCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingDeliveries):
//	    log.Println("Nothing to dispatch")
//	case errors.Is(err, ErrNoFreeCouriersFound):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type AutoAssignCouriersCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoAssignCouriersCommand creates a command to trigger one dispatch
// round. This is a parameterless command.
func NewAutoAssignCouriersCommand() AutoAssignCouriersCommand {
	return AutoAssignCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAutoAssignCouriersCommandIsNotConstructed if validation fails.
func (c *AutoAssignCouriersCommand) Validate() error {
	return c.guard.Validate(
		ErrAutoAssignCouriersCommandIsNotConstructed,
	)
}
