package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves each requested line against the menu catalog, snapshots name,
// category, price and preparation time onto the order, and persists it in
// PENDING status. Later menu edits never affect orders already placed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, menuCatalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	menu       ports.MenuCatalog
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a MenuCatalog
// for resolving line snapshots.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, menu ports.MenuCatalog) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		menu:       menu,
	}
}

// Handle processes the order creation command.
// Generates the human-readable order number, snapshots menu data onto every
// line and creates the order in PENDING status within a transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		info, err := h.menu.Lookup(ctx, line.MenuItemID)
		if err != nil {
			return err
		}

		item, err := order.NewItem(
			line.MenuItemID,
			info.Name,
			info.Category,
			line.Quantity,
			info.UnitPrice,
			info.PreparationMinutes,
			line.Notes,
		)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		fmt.Sprintf("ORD-%d", now.UnixMilli()),
		cmd.OrderType(),
		cmd.Priority(),
		order.Customer{
			Name:    cmd.CustomerName(),
			Phone:   cmd.CustomerPhone(),
			Address: cmd.CustomerAddress(),
		},
		cmd.TableNumber(),
		items,
		now,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
