package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery retrieves all orders still in flight.
// Returns orders in any non-terminal status with their lines for the
// fulfillment board.
//
// Example:
//
//	query := NewGetUncompletedOrdersQuery()
//	handler := NewGetUncompletedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//	fmt.Printf("%d orders in flight\n", len(orders))
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query to retrieve in-flight orders.
// This is a parameterless query that fetches all non-terminal orders.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUncompletedOrdersQueryIsNotConstructed if validation fails.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// OrderLineResponse represents one line of an in-flight order.
type OrderLineResponse struct {
	MenuItemID kernel.UUID
	Name       string
	Category   string
	Quantity   int
	UnitPrice  int64
	Notes      string
}

// GetUncompletedOrdersQueryResponse represents one in-flight order with
// its lines, statuses rendered as canonical wire strings.
type GetUncompletedOrdersQueryResponse struct {
	ID           kernel.UUID
	Number       string
	OrderType    string
	Status       string
	Priority     string
	CustomerName string
	TableNumber  int
	Total        int64
	CreatedAt    time.Time
	Lines        []OrderLineResponse
}
