// Package delivery contains the Delivery aggregate: the courier-fulfillment
// record of a DELIVERY-type order. At most one delivery exists per order; the
// aggregate references the order and the courier by id and owns neither.
package delivery

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
// through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery drives a delivery order from courier assignment to a terminal
// outcome.
//
// Invariants:
//   - belongs to exactly one order
//   - courierID is non-nil only from ASSIGNED onward, until the terminal
//     release clears the reservation on the courier side
//   - status moves only along the delivery transition table
type Delivery struct {
	// id is the unique identifier of the delivery
	id kernel.UUID

	// orderID references the owning delivery-type order
	orderID kernel.UUID

	// courierID is the reserved courier, nil while PENDING
	courierID *kernel.UUID

	// status is the current state in the delivery lifecycle
	status Status

	// address is the destination, snapshotted from the order
	address string

	// fee is the delivery fee in minor currency units
	fee int64

	// lifecycle timestamps, nil until the matching transition happens
	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a PENDING delivery for the given order.
func NewDelivery(id kernel.UUID, orderID kernel.UUID, address string, fee int64, now time.Time) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if address == "" {
		return nil, errs.NewValueIsRequiredError("delivery address")
	}
	if fee < 0 {
		return nil, errs.NewValueIsInvalidError("delivery fee")
	}

	return &Delivery{
		id:        id,
		orderID:   orderID,
		status:    StatusPending,
		address:   address,
		fee:       fee,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	address string,
	fee int64,
	assignedAt, pickedUpAt, deliveredAt, cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		id:          id,
		orderID:     orderID,
		courierID:   courierID,
		status:      status,
		address:     address,
		fee:         fee,
		assignedAt:  assignedAt,
		pickedUpAt:  pickedUpAt,
		deliveredAt: deliveredAt,
		cancelledAt: cancelledAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Delivery was created via its constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the owning order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Courier returns the reserved courier's id, nil while unassigned.
func (d *Delivery) Courier() *kernel.UUID {
	return d.courierID
}

// Status returns the current state of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// Address returns the destination address.
func (d *Delivery) Address() string {
	return d.address
}

// Fee returns the delivery fee in minor currency units.
func (d *Delivery) Fee() int64 {
	return d.fee
}

// AssignedAt returns the courier assignment timestamp, nil until assigned.
func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// PickedUpAt returns the pickup timestamp, nil until picked up.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns the delivery timestamp, nil until delivered.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// CancelledAt returns the cancellation timestamp, nil unless cancelled.
func (d *Delivery) CancelledAt() *time.Time {
	return d.cancelledAt
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// IsTerminal reports whether the delivery reached a terminal outcome.
func (d *Delivery) IsTerminal() bool {
	return d.status.IsTerminal()
}

// Assign reserves the given courier for the delivery and moves it to
// ASSIGNED. Valid from PENDING (initial assignment) and from ASSIGNED
// (re-assignment to a different courier before pickup). The caller is
// responsible for reserving the courier in the registry and for releasing a
// previously assigned one.
func (d *Delivery) Assign(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if d.status != StatusPending && d.status != StatusAssigned {
		return errs.NewInvalidTransitionError("delivery", d.status.String(), StatusAssigned.String())
	}

	d.courierID = &courierID
	d.status = StatusAssigned
	d.assignedAt = &now
	d.updatedAt = now
	return nil
}

// AdvanceTo moves the delivery along its state machine, stamping the
// timestamp that matches the reached state. Re-applying the current status is
// a no-op. Terminal side effects (releasing the courier, synchronizing the
// order) belong to the caller.
func (d *Delivery) AdvanceTo(target Status, now time.Time) error {
	newStatus, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}
	if newStatus == d.status {
		return nil
	}

	d.status = newStatus
	d.updatedAt = now

	switch newStatus {
	case StatusPickedUp:
		d.pickedUpAt = &now
	case StatusDelivered:
		d.deliveredAt = &now
	case StatusCancelled:
		d.cancelledAt = &now
	}
	return nil
}

// Cancel moves the delivery to CANCELLED from any non-terminal state.
// Cancelling an already cancelled delivery is a no-op; cancelling any other
// terminal delivery fails with *errs.InvalidStateError.
func (d *Delivery) Cancel(now time.Time) error {
	if d.status == StatusCancelled {
		return nil
	}
	if d.status.IsTerminal() {
		return errs.NewInvalidStateError("delivery", d.status.String())
	}

	d.status = StatusCancelled
	d.cancelledAt = &now
	d.updatedAt = now
	return nil
}
