package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// AdvanceTicketItemCommandHandler applies a preparation stage change to one
// ticket item and propagates the effect upwards. The owning order row is
// locked first so kitchen-driven order transitions serialize with manual
// ones.
type AdvanceTicketItemCommandHandler struct {
	uowFactory TicketingUoWFactory
}

// NewAdvanceTicketItemCommandHandler creates a handler for ticket item
// advancement. Requires a TicketingUoWFactory spanning orders and tickets.
func NewAdvanceTicketItemCommandHandler(uowFactory TicketingUoWFactory) AdvanceTicketItemCommandHandler {
	return AdvanceTicketItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ticket item advancement command.
// Fails with errs.InvalidStateError when the owning order is already
// cancelled. Order propagation: the first item to start cooking moves a
// CONFIRMED order to PREPARING; once every non-cancelled ticket of the
// order is READY or beyond, a PREPARING order moves to READY.
func (h *AdvanceTicketItemCommandHandler) Handle(ctx context.Context, cmd AdvanceTicketItemCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, ticket.OrderID())
	if err != nil {
		return err
	}
	if aggregate.Status() == order.StatusCancelled {
		return errs.NewInvalidStateError("order", aggregate.Status().String())
	}

	if err = ticket.AdvanceItem(cmd.ItemID(), cmd.Target(), now); err != nil {
		return err
	}

	if err = ticketRepo.Update(ctx, ticket); err != nil {
		return err
	}

	if err = h.propagateToOrder(ctx, uow, aggregate, ticket, cmd.Target(), now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *AdvanceTicketItemCommandHandler) propagateToOrder(
	ctx context.Context,
	uow TicketingUoW,
	aggregate *order.Order,
	ticket *kitchen.Ticket,
	target kitchen.Status,
	now time.Time,
) error {
	switch {
	case target == kitchen.StatusPreparing && aggregate.Status() == order.StatusConfirmed:
		if err := aggregate.TransitionTo(order.StatusPreparing, now); err != nil {
			return err
		}

	case ticket.IsReady() && aggregate.Status() == order.StatusPreparing:
		allReady, err := h.allTicketsReady(ctx, uow, ticket)
		if err != nil || !allReady {
			return err
		}
		if err = aggregate.TransitionTo(order.StatusReady, now); err != nil {
			return err
		}

	default:
		return nil
	}

	return uow.OrderRepository().Update(ctx, aggregate)
}

// allTicketsReady reports whether every non-cancelled ticket of the order,
// the just-updated one included, has reached READY or beyond.
func (h *AdvanceTicketItemCommandHandler) allTicketsReady(
	ctx context.Context,
	uow TicketingUoW,
	updated *kitchen.Ticket,
) (bool, error) {
	tickets, err := uow.KitchenTicketRepository().GetByOrder(ctx, updated.OrderID())
	if err != nil {
		return false, err
	}

	for _, ticket := range tickets {
		status := ticket.Status()
		if ticket.ID().IsEqual(updated.ID()) {
			status = updated.Status()
		}
		if status == kitchen.StatusCancelled {
			continue
		}
		if !status.AtLeast(kitchen.StatusReady) {
			return false, nil
		}
	}

	return true, nil
}
