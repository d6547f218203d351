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

// AssignCourierCommandHandler puts a courier on an order's delivery.
// The courier reservation is a compare-and-set on the courier row, so two
// concurrent assignments of the same courier cannot both succeed: exactly
// one commits, the other fails with errs.CourierUnavailableError and leaves
// both the delivery and the courier untouched.
type AssignCourierCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
// Requires a DeliveryUoWFactory spanning orders, deliveries and couriers.
func NewAssignCourierCommandHandler(uowFactory DeliveryUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier assignment command.
// Creates the delivery first if the order does not have one yet. The
// delivery must still be PENDING or ASSIGNED; re-assignment releases the
// previously reserved courier.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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
	shipment, err := deliveryRepo.GetByOrder(ctx, aggregate.ID())
	created := false
	if errors.Is(err, errs.ErrObjectNotFound) {
		shipment, err = delivery.NewDelivery(kernel.NewUUID(), aggregate.ID(), aggregate.Customer().Address, 0, now)
		created = true
	}
	if err != nil {
		return err
	}

	previous := shipment.Courier()
	if previous != nil && previous.IsEqual(cmd.CourierID()) {
		return uow.Commit(ctx)
	}

	courierRepo := uow.CourierRepository()
	if err = courierRepo.Reserve(ctx, cmd.CourierID()); err != nil {
		return err
	}

	if err = shipment.Assign(cmd.CourierID(), now); err != nil {
		return err
	}

	if previous != nil && !previous.IsEqual(cmd.CourierID()) {
		if err = courierRepo.Release(ctx, *previous); err != nil {
			return err
		}
	}

	if created {
		err = deliveryRepo.Add(ctx, shipment)
	} else {
		err = deliveryRepo.Update(ctx, shipment)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
