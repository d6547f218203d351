package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceTicketItemCommandIsNotConstructed = errors.New(
	"AdvanceTicketItemCommand must be created via NewAdvanceTicketItemCommand constructor",
)

// AdvanceTicketItemCommand represents a chef moving one ticket item through
// its preparation stages. The parent ticket's status is derived from its
// items, and order progress is propagated from the kitchen floor: the first
// item that starts cooking moves the order to PREPARING, the last ticket to
// finish moves the order to READY.
type AdvanceTicketItemCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID
	itemID   kernel.UUID
	target   kitchen.Status

	guard guard.ConstructorGuard
}

// NewAdvanceTicketItemCommand creates a command to advance a ticket item.
// Validates both identifiers and that the target is a known kitchen status.
func NewAdvanceTicketItemCommand(
	ticketID kernel.UUID,
	itemID kernel.UUID,
	target kitchen.Status,
) (AdvanceTicketItemCommand, error) {
	if err := errors.Join(ticketID.Validate(), itemID.Validate(), target.Validate()); err != nil {
		return AdvanceTicketItemCommand{}, err
	}

	return AdvanceTicketItemCommand{
		ticketID: ticketID,
		itemID:   itemID,
		target:   target,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceTicketItemCommandIsNotConstructed if validation fails.
func (c AdvanceTicketItemCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceTicketItemCommandIsNotConstructed)
}

// TicketID returns the identifier of the ticket owning the item.
func (c AdvanceTicketItemCommand) TicketID() kernel.UUID {
	return c.ticketID
}

// ItemID returns the identifier of the item to advance.
func (c AdvanceTicketItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Target returns the requested destination status for the item.
func (c AdvanceTicketItemCommand) Target() kitchen.Status {
	return c.target
}
