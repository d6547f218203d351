package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// EnsureDeliveryCommandHandler creates the delivery record for a delivery
// order if it does not exist yet. Uniqueness is lookup-before-create inside
// the transaction, backed by the unique index on order_id.
type EnsureDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewEnsureDeliveryCommandHandler creates a handler for delivery creation.
// Requires a DeliveryUoWFactory.
func NewEnsureDeliveryCommandHandler(uowFactory DeliveryUoWFactory) EnsureDeliveryCommandHandler {
	return EnsureDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ensure-delivery command.
// Fails with errs.OrderNotDeliverableError when the order is not of the
// DELIVERY type and with errs.InvalidStateError when the order is already
// terminal. Re-invocation on an order that already has a delivery is a
// no-op.
func (h *EnsureDeliveryCommandHandler) Handle(ctx context.Context, cmd EnsureDeliveryCommand) error {
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
	if aggregate.Type() != order.TypeDelivery {
		return errs.NewOrderNotDeliverableError(aggregate.ID().String(), aggregate.Type().String())
	}
	if aggregate.IsTerminal() {
		return errs.NewInvalidStateError("order", aggregate.Status().String())
	}

	deliveryRepo := uow.DeliveryRepository()
	_, err = deliveryRepo.GetByOrder(ctx, aggregate.ID())
	if err == nil {
		return uow.Commit(ctx)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	shipment, err := delivery.NewDelivery(
		kernel.NewUUID(),
		aggregate.ID(),
		aggregate.Customer().Address,
		cmd.Fee(),
		now,
	)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, shipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
