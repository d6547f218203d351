package commands

import (
	"context"
	"time"
)

// AssignChefCommandHandler records the chef working a kitchen ticket.
// Re-assigning replaces the previous name; terminal tickets reject the
// assignment in the domain.
type AssignChefCommandHandler struct {
	uowFactory TicketingUoWFactory
}

// NewAssignChefCommandHandler creates a handler for chef assignment.
// Requires a TicketingUoWFactory.
func NewAssignChefCommandHandler(uowFactory TicketingUoWFactory) AssignChefCommandHandler {
	return AssignChefCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the chef assignment command.
// Fails with errs.InvalidStateError when the ticket is already terminal.
func (h *AssignChefCommandHandler) Handle(ctx context.Context, cmd AssignChefCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ticketRepo := uow.KitchenTicketRepository()
	ticket, err := ticketRepo.Get(ctx, cmd.TicketID())
	if err != nil {
		return err
	}

	if err = ticket.AssignChef(cmd.ChefName(), now); err != nil {
		return err
	}

	if err = ticketRepo.Update(ctx, ticket); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
