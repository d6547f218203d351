package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

var (
	ErrNoPendingDeliveries = errors.New("no pending deliveries found")
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
)

// AutoAssignCouriersCommandHandler performs one round of automatic courier
// dispatch. Finds the oldest pending delivery, asks the CourierDispatcher
// for a candidate and reserves it with the same compare-and-set used by
// manual assignment. A candidate that got reserved concurrently simply
// fails the round; the next job tick retries.
type AutoAssignCouriersCommandHandler struct {
	uowFactory DeliveryUoWFactory
	dispatcher services.CourierDispatcher
}

// NewAutoAssignCouriersCommandHandler creates a handler for automatic
// dispatch rounds. Requires a DeliveryUoWFactory and the CourierDispatcher
// domain service.
func NewAutoAssignCouriersCommandHandler(
	uowFactory DeliveryUoWFactory,
	dispatcher services.CourierDispatcher,
) AutoAssignCouriersCommandHandler {
	return AutoAssignCouriersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes one automatic dispatch round.
// Returns ErrNoPendingDeliveries when every delivery has a courier and
// ErrNoFreeCouriersFound when no courier is available; callers treat both
// as an idle round, not a failure.
func (h *AutoAssignCouriersCommandHandler) Handle(ctx context.Context, cmd AutoAssignCouriersCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	shipment, err := deliveryRepo.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingDeliveries
	}
	if err != nil {
		return err
	}

	courierRepo := uow.CourierRepository()
	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return ErrNoFreeCouriersFound
	}

	candidate, err := h.dispatcher.Dispatch(shipment, couriers)
	if err != nil {
		if errors.Is(err, services.ErrNoCourierAvailable) {
			return ErrNoFreeCouriersFound
		}
		return err
	}

	if err = courierRepo.Reserve(ctx, candidate.ID()); err != nil {
		return err
	}

	if err = shipment.Assign(candidate.ID(), now); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, shipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
