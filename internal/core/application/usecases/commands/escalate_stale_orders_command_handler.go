package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// EscalateStaleOrdersCommandHandler bumps long-waiting active orders to
// URGENT in one transaction per sweep.
type EscalateStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEscalateStaleOrdersCommandHandler creates a handler for escalation
// sweeps. Requires an OrderUoWFactory.
func NewEscalateStaleOrdersCommandHandler(uowFactory OrderUoWFactory) EscalateStaleOrdersCommandHandler {
	return EscalateStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one escalation sweep.
// Orders already URGENT are skipped so repeated sweeps stay cheap.
func (h *EscalateStaleOrdersCommandHandler) Handle(ctx context.Context, cmd EscalateStaleOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	cutoff := now.Add(-cmd.OlderThan())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetActiveOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range stale {
		if aggregate.Priority() == order.PriorityUrgent {
			continue
		}
		if err = aggregate.Bump(now); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
