package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKitchenQueueQueryHandler loads the kitchen queue read model from the
// database and lets the QueuePlanner order it and stamp timing estimates.
type GetKitchenQueueQueryHandler struct {
	db      *gorm.DB
	planner services.QueuePlanner
}

// NewGetKitchenQueueQueryHandler creates a handler for kitchen queue queries.
// Requires a GORM database connection and the QueuePlanner domain service.
func NewGetKitchenQueueQueryHandler(db *gorm.DB, planner services.QueuePlanner) GetKitchenQueueQueryHandler {
	return GetKitchenQueueQueryHandler{db: db, planner: planner}
}

// Handle executes the kitchen queue query.
// Returns PENDING and PREPARING ticket items of non-terminal orders sorted
// by priority descending then order age ascending, truncated to the limit.
func (h GetKitchenQueueQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenQueueQuery,
) ([]services.QueueEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := loadQueueEntries(ctx, h.db, h.planner, query.Department())
	if err != nil {
		return nil, err
	}

	h.planner.Sort(entries)

	if limit := query.Limit(); limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}

// loadQueueEntries reads the raw queue rows shared by the queue and stats
// queries. Estimated start and end times are stamped here so every consumer
// sees the same window.
func loadQueueEntries(
	ctx context.Context,
	db *gorm.DB,
	planner services.QueuePlanner,
	department *kitchen.Department,
) ([]services.QueueEntry, error) {
	sql := `
		SELECT
			ti.id,
			ti.ticket_id,
			t.order_id,
			o.number,
			o.table_number,
			ti.name,
			ti.quantity,
			ti.notes,
			t.department,
			o.priority,
			ti.status,
			ti.preparation_minutes,
			o.created_at
		FROM kitchen_ticket_items ti
		JOIN kitchen_tickets t ON t.id = ti.ticket_id
		JOIN orders o ON o.id = t.order_id
		WHERE ti.status IN (?, ?)
		  AND o.status NOT IN (?, ?, ?)
	`
	args := []any{
		kitchen.StatusPending, kitchen.StatusPreparing,
		order.StatusCompleted, order.StatusDelivered, order.StatusCancelled,
	}
	if department != nil {
		sql += " AND t.department = ?"
		args = append(args, *department)
	}

	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]services.QueueEntry, 0)

	for rows.Next() {
		var entry services.QueueEntry
		var itemID, ticketID, orderID uuid.UUID
		var dept, priority, status int16

		err = rows.Scan(
			&itemID,
			&ticketID,
			&orderID,
			&entry.OrderNumber,
			&entry.TableNumber,
			&entry.ItemName,
			&entry.Quantity,
			&entry.Notes,
			&dept,
			&priority,
			&status,
			&entry.PreparationMinutes,
			&entry.OrderCreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if entry.TicketItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if entry.TicketID, err = kernel.UUIDFromBytes(ticketID[:]); err != nil {
			return nil, err
		}
		if entry.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		entry.Department = kitchen.Department(dept)
		entry.Priority = order.Priority(priority)
		entry.Status = kitchen.Status(status)
		entry.EstimatedStart, entry.EstimatedEnd = planner.EstimateWindow(
			entry.OrderCreatedAt, entry.PreparationMinutes)

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
