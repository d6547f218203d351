// Package courier contains the Courier aggregate tracked by the courier
// registry. Couriers are independent of orders and deliveries: a delivery
// references a courier weakly by id, and the registry flips the courier
// between AVAILABLE and BUSY.
package courier

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the registry.
//
// Business rules:
//   - a courier must have a valid UUID and a non-empty name
//   - Reserve only succeeds while the courier is AVAILABLE
//   - Release is unconditional and idempotent
//   - a courier must never be the active courier of two concurrently
//     non-terminal deliveries; the registry's compare-and-set reservation
//     enforces this under concurrency
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// phone is the courier's contact number
	phone string
	// vehicleType describes the vehicle, e.g. "motorcycle"
	vehicleType string
	// vehiclePlate is the vehicle registration, optional
	vehiclePlate string
	// status is AVAILABLE or BUSY
	status Status

	guard guard.ConstructorGuard
}

// NewCourier creates an AVAILABLE courier with the given identity and
// vehicle metadata.
func NewCourier(id kernel.UUID, name, phone, vehicleType, vehiclePlate string) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Courier{
		id:           id,
		name:         name,
		phone:        phone,
		vehicleType:  vehicleType,
		vehiclePlate: vehiclePlate,
		status:       StatusAvailable,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving its availability status.
func RestoreCourier(id kernel.UUID, name, phone, vehicleType, vehiclePlate string, status Status) (*Courier, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Courier{
		id:           id,
		name:         name,
		phone:        phone,
		vehicleType:  vehicleType,
		vehiclePlate: vehiclePlate,
		status:       status,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Courier was created via its constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// VehicleType returns the vehicle description.
func (c *Courier) VehicleType() string {
	return c.vehicleType
}

// VehiclePlate returns the vehicle registration.
func (c *Courier) VehiclePlate() string {
	return c.vehiclePlate
}

// Status returns the courier's availability status.
func (c *Courier) Status() Status {
	return c.status
}

// IsAvailable reports whether the courier can be reserved.
func (c *Courier) IsAvailable() bool {
	return c.status == StatusAvailable
}

// Reserve claims the courier for a delivery, flipping AVAILABLE to BUSY.
// Fails with *errs.CourierUnavailableError when the courier is already BUSY.
// Note that the in-memory check alone is not race-safe; the repository backs
// it with a conditional update on the status column.
func (c *Courier) Reserve() error {
	if c.status != StatusAvailable {
		return errs.NewCourierUnavailableError(c.id.String())
	}
	c.status = StatusBusy
	return nil
}

// Release returns the courier to AVAILABLE. Releasing an already available
// courier is a no-op, which keeps terminal delivery cascades idempotent.
func (c *Courier) Release() {
	c.status = StatusAvailable
}
