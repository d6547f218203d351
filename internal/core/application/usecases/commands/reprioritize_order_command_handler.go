package commands

import (
	"context"
	"time"
)

// ReprioritizeOrderCommandHandler resolves a ticket to its owning order
// and moves the order's priority. The order row is locked so a concurrent
// bump and defer cannot interleave.
type ReprioritizeOrderCommandHandler struct {
	uowFactory TicketingUoWFactory
}

// NewReprioritizeOrderCommandHandler creates a handler for queue
// reprioritization. Requires a TicketingUoWFactory.
func NewReprioritizeOrderCommandHandler(uowFactory TicketingUoWFactory) ReprioritizeOrderCommandHandler {
	return ReprioritizeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reprioritization command.
// Fails with errs.InvalidStateError when the order is already terminal.
func (h *ReprioritizeOrderCommandHandler) Handle(ctx context.Context, cmd ReprioritizeOrderCommand) error {
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

	ticket, err := uow.KitchenTicketRepository().Get(ctx, cmd.TicketID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, ticket.OrderID())
	if err != nil {
		return err
	}

	if cmd.Action() == ActionBump {
		err = aggregate.Bump(now)
	} else {
		err = aggregate.Defer(now)
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
