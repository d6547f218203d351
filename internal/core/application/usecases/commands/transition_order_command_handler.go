package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// TransitionOrderCommandHandler enforces the order lifecycle at a single
// chokepoint. The order row is locked for the duration of the transaction
// so concurrent transitions serialize instead of racing.
//
// Cancellation cascades: cancellable kitchen tickets are cancelled, a
// non-terminal delivery is cancelled and its courier released, all in the
// same transaction. Completion and cancellation are announced through the
// notifier after a successful commit.
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.OrderNotifier
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
// Requires a UoWFactory spanning all aggregates for cascade support and an
// OrderNotifier for lifecycle announcements.
func NewTransitionOrderCommandHandler(uowFactory UoWFactory, notifier ports.OrderNotifier) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order transition command.
// Requesting the status the order already has is a no-op. Transitions not
// on the table fail with errs.InvalidTransitionError and leave everything
// untouched.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() == cmd.Target() {
		return nil
	}

	if err = aggregate.TransitionTo(cmd.Target(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Target() == order.StatusCancelled {
		if err = h.cascadeCancellation(ctx, uow, aggregate, now); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	switch cmd.Target() {
	case order.StatusCompleted, order.StatusDelivered:
		h.notifier.OrderCompleted(ctx, aggregate)
	case order.StatusCancelled:
		h.notifier.OrderCancelled(ctx, aggregate)
	}

	return nil
}

// cascadeCancellation propagates an order cancellation to the kitchen and
// the delivery within the already open transaction.
func (h *TransitionOrderCommandHandler) cascadeCancellation(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	now time.Time,
) error {
	ticketRepo := uow.KitchenTicketRepository()
	tickets, err := ticketRepo.GetByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	for _, ticket := range tickets {
		if !ticket.CanCancel() {
			continue
		}
		if err = ticket.Cancel(now); err != nil {
			return err
		}
		if err = ticketRepo.Update(ctx, ticket); err != nil {
			return err
		}
	}

	deliveryRepo := uow.DeliveryRepository()
	shipment, err := deliveryRepo.GetByOrder(ctx, aggregate.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if shipment.IsTerminal() {
		return nil
	}

	courierID := shipment.Courier()
	if err = shipment.Cancel(now); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, shipment); err != nil {
		return err
	}

	if courierID != nil {
		if err = uow.CourierRepository().Release(ctx, *courierID); err != nil {
			return err
		}
	}

	return nil
}
