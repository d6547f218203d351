// Package kitchen contains the KitchenTicket aggregate: the per-department
// work order derived from a customer order. A ticket owns the subset of the
// order's items routed to its department; the union of all tickets for an
// order partitions the order's items with no overlap and no omission.
package kitchen

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrTicketIsNotConstructed is returned when a Ticket was not created
	// through NewTicket or RestoreTicket.
	ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket constructor")

	// ErrTicketItemIsNotConstructed is returned when a TicketItem was not
	// created through NewTicketItem.
	ErrTicketItemIsNotConstructed = errors.New("TicketItem must be created via NewTicketItem constructor")
)

// TicketItem is one line of kitchen work: a menu item, its quantity and its
// own sub-status walking the same linear machine as the ticket.
type TicketItem struct {
	// id is the unique identifier of the ticket line
	id kernel.UUID
	// menuItemID references the order line's menu catalog entry
	menuItemID kernel.UUID
	// name is the menu item name snapshot
	name string
	// quantity is the count to prepare
	quantity int
	// preparationMinutes is the per-unit preparation time snapshot
	preparationMinutes int
	// notes carries the order line's kitchen instructions
	notes string
	// status is the line's own sub-status
	status Status

	guard guard.ConstructorGuard
}

// NewTicketItem creates a PENDING ticket line.
func NewTicketItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	name string,
	quantity int,
	preparationMinutes int,
	notes string,
) (*TicketItem, error) {
	return restoreTicketItem(id, menuItemID, name, quantity, preparationMinutes, notes, StatusPending)
}

// RestoreTicketItem reconstructs a ticket line from persistent storage.
func RestoreTicketItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	name string,
	quantity int,
	preparationMinutes int,
	notes string,
	status Status,
) (*TicketItem, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return restoreTicketItem(id, menuItemID, name, quantity, preparationMinutes, notes, status)
}

func restoreTicketItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	name string,
	quantity int,
	preparationMinutes int,
	notes string,
	status Status,
) (*TicketItem, error) {
	if err := errors.Join(id.Validate(), menuItemID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("ticket item name")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if preparationMinutes < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("preparation minutes",
			fmt.Errorf("%d is negative", preparationMinutes))
	}

	return &TicketItem{
		id:                 id,
		menuItemID:         menuItemID,
		name:               name,
		quantity:           quantity,
		preparationMinutes: preparationMinutes,
		notes:              notes,
		status:             status,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the TicketItem was created via its constructor.
func (ti *TicketItem) Validate() error {
	if ti == nil {
		return ErrTicketItemIsNotConstructed
	}
	return ti.guard.Validate(ErrTicketItemIsNotConstructed)
}

// ID returns the ticket line identifier.
func (ti *TicketItem) ID() kernel.UUID {
	return ti.id
}

// MenuItemID returns the referenced menu catalog entry id.
func (ti *TicketItem) MenuItemID() kernel.UUID {
	return ti.menuItemID
}

// Name returns the menu item name snapshot.
func (ti *TicketItem) Name() string {
	return ti.name
}

// Quantity returns the count to prepare.
func (ti *TicketItem) Quantity() int {
	return ti.quantity
}

// PreparationMinutes returns the per-unit preparation time snapshot.
func (ti *TicketItem) PreparationMinutes() int {
	return ti.preparationMinutes
}

// Notes returns the kitchen instructions for the line.
func (ti *TicketItem) Notes() string {
	return ti.notes
}

// Status returns the line's sub-status.
func (ti *TicketItem) Status() Status {
	return ti.status
}

// WorkMinutes returns quantity times preparation minutes.
func (ti *TicketItem) WorkMinutes() int {
	return ti.quantity * ti.preparationMinutes
}

// Ticket is the per-department work order. Its status is derived from its
// items: the first item to start preparing moves the ticket to PREPARING,
// and the ticket becomes READY only when every non-cancelled item is ready.
type Ticket struct {
	// id is the unique identifier of the ticket
	id kernel.UUID
	// orderID references the owning order
	orderID kernel.UUID
	// department is the station the ticket belongs to
	department Department
	// status is the derived ticket status
	status Status
	// chef is the optional assigned chef name
	chef string
	// estimatedMinutes is the summed work of all items at creation time
	estimatedMinutes int
	// items are the ticket lines (never empty)
	items []*TicketItem

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewTicket creates a PENDING ticket owning the given items.
// The estimated time figure is the sum of quantity times preparation minutes
// over the items and is fixed at creation.
func NewTicket(
	id kernel.UUID,
	orderID kernel.UUID,
	department Department,
	items []*TicketItem,
	now time.Time,
) (*Ticket, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), department.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("ticket items")
	}

	estimated := 0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		estimated += item.WorkMinutes()
	}

	return &Ticket{
		id:               id,
		orderID:          orderID,
		department:       department,
		status:           StatusPending,
		estimatedMinutes: estimated,
		items:            items,
		createdAt:        now,
		updatedAt:        now,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestoreTicket reconstructs a Ticket aggregate from persistent storage.
func RestoreTicket(
	id kernel.UUID,
	orderID kernel.UUID,
	department Department,
	status Status,
	chef string,
	estimatedMinutes int,
	items []*TicketItem,
	createdAt time.Time,
	updatedAt time.Time,
) (*Ticket, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		department.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("ticket items")
	}

	return &Ticket{
		id:               id,
		orderID:          orderID,
		department:       department,
		status:           status,
		chef:             chef,
		estimatedMinutes: estimatedMinutes,
		items:            items,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Ticket was created via its constructor.
func (t *Ticket) Validate() error {
	if t == nil {
		return ErrTicketIsNotConstructed
	}
	return t.guard.Validate(ErrTicketIsNotConstructed)
}

// ID returns the ticket identifier.
func (t *Ticket) ID() kernel.UUID {
	return t.id
}

// OrderID returns the owning order's identifier.
func (t *Ticket) OrderID() kernel.UUID {
	return t.orderID
}

// Department returns the station the ticket belongs to.
func (t *Ticket) Department() Department {
	return t.department
}

// Status returns the derived ticket status.
func (t *Ticket) Status() Status {
	return t.status
}

// Chef returns the assigned chef name, empty when unassigned.
func (t *Ticket) Chef() string {
	return t.chef
}

// EstimatedMinutes returns the fixed estimated preparation time.
func (t *Ticket) EstimatedMinutes() int {
	return t.estimatedMinutes
}

// Items returns the ticket lines.
func (t *Ticket) Items() []*TicketItem {
	return t.items
}

// CreatedAt returns the creation timestamp.
func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// Item finds a ticket line by id.
// Returns *errs.ObjectNotFoundError when the line does not belong to the ticket.
func (t *Ticket) Item(itemID kernel.UUID) (*TicketItem, error) {
	for _, item := range t.items {
		if item.id.IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("ticketItemId", itemID.String())
}

// AssignChef records the chef working the ticket.
func (t *Ticket) AssignChef(name string, now time.Time) error {
	if name == "" {
		return errs.NewValueIsRequiredError("chef name")
	}
	if t.status.IsTerminal() {
		return errs.NewInvalidStateError("ticket", t.status.String())
	}
	t.chef = name
	t.updatedAt = now
	return nil
}

// AdvanceItem moves a single ticket line along the linear machine and
// re-derives the ticket status from its items.
//
// Returns:
//   - *errs.InvalidStateError when the ticket is already terminal
//   - *errs.ObjectNotFoundError when the line is not part of the ticket
//   - *errs.InvalidTransitionError when the line's machine rejects the move
func (t *Ticket) AdvanceItem(itemID kernel.UUID, target Status, now time.Time) error {
	if t.status.IsTerminal() {
		return errs.NewInvalidStateError("ticket", t.status.String())
	}

	item, err := t.Item(itemID)
	if err != nil {
		return err
	}

	newStatus, err := item.status.TransitionTo(target)
	if err != nil {
		return err
	}
	if newStatus == item.status {
		return nil
	}

	item.status = newStatus
	t.refreshStatus(now)
	return nil
}

// IsReady reports whether every non-cancelled item reached READY or beyond.
func (t *Ticket) IsReady() bool {
	return t.status == StatusReady || t.status == StatusServed
}

// IsTerminal reports whether the ticket reached SERVED or CANCELLED.
func (t *Ticket) IsTerminal() bool {
	return t.status.IsTerminal()
}

// CanCancel reports whether the ticket may still be cancelled.
// Cancellation is only reachable from PENDING and PREPARING.
func (t *Ticket) CanCancel() bool {
	return t.status == StatusPending || t.status == StatusPreparing
}

// Cancel cancels the ticket and every item still PENDING or PREPARING.
// Only valid while the ticket itself is PENDING or PREPARING; the caller is
// expected to invoke it as part of the parent order's cancellation cascade.
func (t *Ticket) Cancel(now time.Time) error {
	if !t.CanCancel() {
		return errs.NewInvalidStateError("ticket", t.status.String())
	}

	for _, item := range t.items {
		if item.status == StatusPending || item.status == StatusPreparing {
			item.status = StatusCancelled
		}
	}
	t.status = StatusCancelled
	t.updatedAt = now
	return nil
}

// refreshStatus derives the ticket status from its items. Items the parent
// order cancelled do not count toward progress, but a ticket where every item
// was cancelled collapses to CANCELLED.
func (t *Ticket) refreshStatus(now time.Time) {
	allCancelled := true
	allServed := true
	allReady := true
	anyStarted := false

	for _, item := range t.items {
		if item.status == StatusCancelled {
			continue
		}
		allCancelled = false
		if item.status != StatusServed {
			allServed = false
		}
		if !item.status.AtLeast(StatusReady) {
			allReady = false
		}
		if item.status.AtLeast(StatusPreparing) {
			anyStarted = true
		}
	}

	next := t.status
	switch {
	case allCancelled:
		next = StatusCancelled
	case allServed:
		next = StatusServed
	case allReady:
		next = StatusReady
	case anyStarted:
		if !t.status.AtLeast(StatusPreparing) {
			next = StatusPreparing
		}
	}

	if next != t.status {
		t.status = next
		t.updatedAt = now
	}
}
