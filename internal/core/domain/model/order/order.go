// Package order contains the Order aggregate and its closed status, type and
// priority enums. The Order is the root of the fulfillment aggregate: kitchen
// tickets and deliveries reference it by id and every status write funnels
// through its single transition chokepoint.
package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Customer is the customer snapshot carried on an order. The engine never
// mutates customer records; it only keeps what fulfillment needs.
type Customer struct {
	Name    string
	Phone   string
	Address string
}

// Order represents a customer order moving through fulfillment.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a human-readable number
//   - Must have at least one item
//   - Delivery orders must carry a customer address
//   - Status moves only along the transition table, except that re-applying
//     the current status is a no-op
//   - Totals are computed at construction and never change afterwards
//
// The struct uses private fields so invariants can only be touched through
// validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-readable order number, e.g. "ORD-1001"
	number string

	// orderType classifies fulfillment: dine-in, takeaway or delivery
	orderType Type

	// status is the current lifecycle state
	status Status

	// priority controls the kitchen queue position of every ticket
	priority Priority

	// customer is the snapshot taken at ordering time
	customer Customer

	// tableNumber is the dine-in table, 0 when not applicable
	tableNumber int

	// items are the ordered lines (never empty)
	items []Item

	// total is the sum of item subtotals in minor currency units
	total int64

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in StatusPending with validated invariants.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - number: human-readable order number (must be non-empty)
//   - orderType: DINE_IN, TAKEAWAY or DELIVERY
//   - priority: initial queue priority (PriorityNormal for most orders)
//   - customer: customer snapshot; Address is required for delivery orders
//   - tableNumber: dine-in table, 0 when not applicable
//   - items: ordered lines, at least one, each built via NewItem
//   - now: creation timestamp
//
// The total is computed here and is immutable afterwards.
func NewOrder(
	id kernel.UUID,
	number string,
	orderType Type,
	priority Priority,
	customer Customer,
	tableNumber int,
	items []Item,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		orderType.Validate(),
		priority.Validate(),
	); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if orderType == TypeDelivery && customer.Address == "" {
		return nil, errs.NewValueIsRequiredError("customer address")
	}

	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}

	return &Order{
		id:          id,
		number:      number,
		orderType:   orderType,
		status:      StatusPending,
		priority:    priority,
		customer:    customer,
		tableNumber: tableNumber,
		items:       items,
		total:       total,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the persisted status, priority and timestamps
// verbatim; the restored order behaves identically to one built through
// normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	number string,
	orderType Type,
	status Status,
	priority Priority,
	customer Customer,
	tableNumber int,
	items []Item,
	total int64,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		orderType.Validate(),
		status.Validate(),
		priority.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}

	return &Order{
		id:          id,
		number:      number,
		orderType:   orderType,
		status:      status,
		priority:    priority,
		customer:    customer,
		tableNumber: tableNumber,
		items:       items,
		total:       total,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// Type returns the fulfillment type of the order.
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the current queue priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Customer returns the customer snapshot.
func (o *Order) Customer() Customer {
	return o.customer
}

// TableNumber returns the dine-in table, 0 when not applicable.
func (o *Order) TableNumber() int {
	return o.tableNumber
}

// Items returns the ordered lines.
func (o *Order) Items() []Item {
	return o.items
}

// Total returns the order total in minor currency units.
func (o *Order) Total() int64 {
	return o.total
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsTerminal reports whether the order reached a state with no outgoing
// transitions.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// TransitionTo is the single chokepoint for order status changes.
//
// Rules enforced here on top of the status table:
//   - StatusDelivered is reachable only for delivery orders; everything else
//     completes via StatusCompleted
//   - re-applying the current status is a no-op, not an error
//
// Returns *errs.InvalidTransitionError for any pair outside the table.
func (o *Order) TransitionTo(target Status, now time.Time) error {
	if target == StatusDelivered && o.orderType != TypeDelivery {
		return errs.NewInvalidTransitionErrorWithCause("order", o.status.String(), target.String(),
			errors.New("only delivery orders can be delivered"))
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	if newStatus == o.status {
		return nil
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Bump raises the order priority to URGENT. Fails with
// *errs.InvalidStateError once the order is terminal.
func (o *Order) Bump(now time.Time) error {
	return o.setPriority(PriorityUrgent, now)
}

// Defer lowers the order priority to LOW, moving every ticket of the order to
// the back of its department queue. Fails once the order is terminal.
func (o *Order) Defer(now time.Time) error {
	return o.setPriority(PriorityLow, now)
}

func (o *Order) setPriority(p Priority, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("order", o.status.String())
	}
	if o.priority == p {
		return nil
	}
	o.priority = p
	o.updatedAt = now
	return nil
}
