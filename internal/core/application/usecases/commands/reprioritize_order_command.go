package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrReprioritizeOrderCommandIsNotConstructed = errors.New(
		"ReprioritizeOrderCommand must be created via NewReprioritizeOrderCommand constructor",
	)
	ErrUnknownPriorityAction = errors.New("priority action must be bump or defer")
)

// PriorityAction names the two reprioritization moves a kitchen operator
// can make from the queue.
type PriorityAction string

const (
	// ActionBump raises the owning order's priority to URGENT.
	ActionBump PriorityAction = "bump"
	// ActionDefer lowers the owning order's priority to LOW.
	ActionDefer PriorityAction = "defer"
)

// ReprioritizeOrderCommand represents a request to reprioritize from the
// kitchen queue. The ticket only identifies the order: priority lives on
// the order, so bumping one ticket reorders every ticket of that order in
// every department. That global effect is deliberate and part of the
// contract.
type ReprioritizeOrderCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID
	action   PriorityAction

	guard guard.ConstructorGuard
}

// NewReprioritizeOrderCommand creates a command to reprioritize an order
// through one of its tickets. Validates the ticket ID and the action.
func NewReprioritizeOrderCommand(ticketID kernel.UUID, action PriorityAction) (ReprioritizeOrderCommand, error) {
	if err := ticketID.Validate(); err != nil {
		return ReprioritizeOrderCommand{}, err
	}
	if action != ActionBump && action != ActionDefer {
		return ReprioritizeOrderCommand{}, ErrUnknownPriorityAction
	}

	return ReprioritizeOrderCommand{
		ticketID: ticketID,
		action:   action,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReprioritizeOrderCommandIsNotConstructed if validation fails.
func (c ReprioritizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrReprioritizeOrderCommandIsNotConstructed)
}

// TicketID returns the identifier of the ticket whose order is affected.
func (c ReprioritizeOrderCommand) TicketID() kernel.UUID {
	return c.ticketID
}

// Action returns the requested priority move.
func (c ReprioritizeOrderCommand) Action() PriorityAction {
	return c.action
}
