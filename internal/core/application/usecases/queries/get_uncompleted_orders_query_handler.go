package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves in-flight orders from the
// database. Two queries, orders first and lines second, stitched in memory
// to avoid per-order round trips.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for in-flight order queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all in-flight orders.
// Returns non-terminal orders oldest first, each with its lines.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			order_type,
			status,
			priority,
			customer_name,
			table_number,
			total,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?, ?)
		ORDER BY created_at
	`, order.StatusCompleted, order.StatusDelivered, order.StatusCancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUncompletedOrdersQueryResponse
		var id uuid.UUID
		var orderType, status, priority int16

		err = rows.Scan(
			&id,
			&resp.Number,
			&orderType,
			&status,
			&priority,
			&resp.CustomerName,
			&resp.TableNumber,
			&resp.Total,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.OrderType = order.Type(orderType).String()
		resp.Status = order.Status(status).String()
		resp.Priority = order.Priority(priority).String()
		resp.Lines = make([]OrderLineResponse, 0)

		index[id] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	lineRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.menu_item_id,
			i.name,
			i.category,
			i.quantity,
			i.unit_price,
			i.notes
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.status NOT IN (?, ?, ?)
	`, order.StatusCompleted, order.StatusDelivered, order.StatusCancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var line OrderLineResponse
		var orderID, menuItemID uuid.UUID

		err = lineRows.Scan(
			&orderID,
			&menuItemID,
			&line.Name,
			&line.Category,
			&line.Quantity,
			&line.UnitPrice,
			&line.Notes,
		)
		if err != nil {
			return nil, err
		}

		if line.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}

		if pos, ok := index[orderID]; ok {
			orders[pos].Lines = append(orders[pos].Lines, line)
		}
	}

	if err = lineRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
