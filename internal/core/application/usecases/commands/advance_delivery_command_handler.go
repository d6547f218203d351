package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AdvanceDeliveryCommandHandler moves a delivery through its lifecycle and
// keeps the rest of the system consistent when it terminates. A terminal
// delivery releases its courier; DELIVERED closes the order as DELIVERED,
// while FAILED, RETURNED and CANCELLED cancel the order, which in turn
// cancels any kitchen tickets still cancellable. There is no automatic
// retry or re-dispatch on FAILED or RETURNED.
type AdvanceDeliveryCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.OrderNotifier
}

// NewAdvanceDeliveryCommandHandler creates a handler for delivery
// advancement. Requires a UoWFactory spanning all aggregates and an
// OrderNotifier.
func NewAdvanceDeliveryCommandHandler(uowFactory UoWFactory, notifier ports.OrderNotifier) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery advancement command.
// Fails with errs.InvalidStateError when the order is already cancelled and
// with errs.InvalidTransitionError when the move is not on the delivery
// transition table. All effects commit atomically or not at all.
func (h *AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) error {
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
	if aggregate.Status() == order.StatusCancelled {
		return errs.NewInvalidStateError("order", aggregate.Status().String())
	}

	deliveryRepo := uow.DeliveryRepository()
	shipment, err := deliveryRepo.GetByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if shipment.IsTerminal() {
		// A terminal delivery already had its courier released and its
		// order synced. Re-applying the same status must not repeat that.
		if cmd.Target() == shipment.Status() {
			return nil
		}
		return errs.NewInvalidStateError("delivery", shipment.Status().String())
	}

	courierID := shipment.Courier()

	if err = shipment.AdvanceTo(cmd.Target(), now); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, shipment); err != nil {
		return err
	}

	if !cmd.Target().IsTerminal() {
		return uow.Commit(ctx)
	}

	if courierID != nil {
		if err = uow.CourierRepository().Release(ctx, *courierID); err != nil {
			return err
		}
	}

	orderTarget := order.StatusCancelled
	if cmd.Target() == delivery.StatusDelivered {
		orderTarget = order.StatusDelivered
	}

	if err = aggregate.TransitionTo(orderTarget, now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if orderTarget == order.StatusCancelled {
		if err = h.cancelTickets(ctx, uow, aggregate, now); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if orderTarget == order.StatusDelivered {
		h.notifier.OrderCompleted(ctx, aggregate)
	} else {
		h.notifier.OrderCancelled(ctx, aggregate)
	}

	return nil
}

func (h *AdvanceDeliveryCommandHandler) cancelTickets(
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

	return nil
}
