package services

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
)

// TicketFactory builds the per-department kitchen tickets for an order.
//
// The factory partitions the order's items by routed department and creates
// one PENDING ticket per non-empty partition, so the union of all tickets'
// items always equals the order's items with no overlap and no omission.
// It is pure apart from id generation; the idempotency guard (never two
// ticket sets for one order) belongs to the command handler that persists
// the result.
type TicketFactory struct {
	router DepartmentRouter
}

// NewTicketFactory creates a factory routing categories with the given
// router.
func NewTicketFactory(router DepartmentRouter) TicketFactory {
	return TicketFactory{router: router}
}

// BuildTickets partitions the order's items by department and returns one
// ticket per non-empty department, in first-seen item order. Each ticket's
// estimated time is the summed preparation work of its items.
func (f TicketFactory) BuildTickets(o *order.Order, now time.Time) ([]*kitchen.Ticket, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	partitions := make(map[kitchen.Department][]*kitchen.TicketItem)
	departments := make([]kitchen.Department, 0)

	for _, item := range o.Items() {
		department := f.router.Route(item.Category())

		ticketItem, err := kitchen.NewTicketItem(
			kernel.NewUUID(),
			item.MenuItemID(),
			item.Name(),
			item.Quantity(),
			item.PreparationMinutes(),
			item.Notes(),
		)
		if err != nil {
			return nil, err
		}

		if _, seen := partitions[department]; !seen {
			departments = append(departments, department)
		}
		partitions[department] = append(partitions[department], ticketItem)
	}

	tickets := make([]*kitchen.Ticket, 0, len(departments))
	for _, department := range departments {
		ticket, err := kitchen.NewTicket(kernel.NewUUID(), o.ID(), department, partitions[department], now)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}
