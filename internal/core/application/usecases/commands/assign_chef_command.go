package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignChefCommandIsNotConstructed = errors.New(
	"AssignChefCommand must be created via NewAssignChefCommand constructor",
)

// AssignChefCommand represents a request to put a chef's name on a kitchen
// ticket so the pass knows who is working it.
type AssignChefCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID
	chefName string

	guard guard.ConstructorGuard
}

// NewAssignChefCommand creates a command to assign a chef to a ticket.
// Validates the ticket ID and requires a non-empty chef name.
func NewAssignChefCommand(ticketID kernel.UUID, chefName string) (AssignChefCommand, error) {
	if err := ticketID.Validate(); err != nil {
		return AssignChefCommand{}, err
	}
	if chefName == "" {
		return AssignChefCommand{}, errs.NewValueIsRequiredError("chef name")
	}

	return AssignChefCommand{
		ticketID: ticketID,
		chefName: chefName,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignChefCommandIsNotConstructed if validation fails.
func (c AssignChefCommand) Validate() error {
	return c.guard.Validate(ErrAssignChefCommandIsNotConstructed)
}

// TicketID returns the identifier of the ticket being worked.
func (c AssignChefCommand) TicketID() kernel.UUID {
	return c.ticketID
}

// ChefName returns the name to record on the ticket.
func (c AssignChefCommand) ChefName() string {
	return c.chefName
}
