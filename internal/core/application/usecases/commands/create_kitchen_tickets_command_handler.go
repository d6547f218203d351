package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// CreateKitchenTicketsCommandHandler fans an order out to kitchen tickets.
// Idempotent by order: the uniqueness is enforced by lookup-before-create
// inside the transaction, backed by the (order_id, department) unique index.
type CreateKitchenTicketsCommandHandler struct {
	uowFactory TicketingUoWFactory
	factory    services.TicketFactory
}

// NewCreateKitchenTicketsCommandHandler creates a handler for ticket fan-out.
// Requires a TicketingUoWFactory and the TicketFactory domain service.
func NewCreateKitchenTicketsCommandHandler(
	uowFactory TicketingUoWFactory,
	factory services.TicketFactory,
) CreateKitchenTicketsCommandHandler {
	return CreateKitchenTicketsCommandHandler{
		uowFactory: uowFactory,
		factory:    factory,
	}
}

// Handle processes the ticket fan-out command.
// Fails with errs.InvalidStateError when the order is cancelled or otherwise
// terminal. When tickets already exist the call is a no-op; ticket creation
// never mutates the order's status.
func (h *CreateKitchenTicketsCommandHandler) Handle(ctx context.Context, cmd CreateKitchenTicketsCommand) error {
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

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if aggregate.IsTerminal() {
		return errs.NewInvalidStateError("order", aggregate.Status().String())
	}

	ticketRepo := uow.KitchenTicketRepository()
	existing, err := ticketRepo.GetByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return uow.Commit(ctx)
	}

	tickets, err := h.factory.BuildTickets(aggregate, now)
	if err != nil {
		return err
	}

	if err = ticketRepo.Add(ctx, tickets); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
