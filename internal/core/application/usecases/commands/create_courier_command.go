package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrCourierNameIsRequired = errors.New("courier name is required")
)

// CreateCourierCommand represents a request to register a new courier.
// New couriers start AVAILABLE and become eligible for dispatch immediately.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID    kernel.UUID
	name         string
	phone        string
	vehicleType  string
	vehiclePlate string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a courier.
// Validates that the courier ID is constructed and the name is non-empty.
func NewCreateCourierCommand(
	courierID kernel.UUID,
	name string,
	phone string,
	vehicleType string,
	vehiclePlate string,
) (CreateCourierCommand, error) {
	courierCommand := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := courierID.Validate(); err != nil {
		return CreateCourierCommand{}, err
	}
	if name == "" {
		return CreateCourierCommand{}, ErrCourierNameIsRequired
	}

	courierCommand.courierID = courierID
	courierCommand.name = name
	courierCommand.phone = phone
	courierCommand.vehicleType = vehicleType
	courierCommand.vehiclePlate = vehiclePlate
	return courierCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the unique identifier for the new courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Phone returns the courier's contact phone, possibly empty.
func (c CreateCourierCommand) Phone() string {
	return c.phone
}

// VehicleType returns the courier's vehicle kind, possibly empty.
func (c CreateCourierCommand) VehicleType() string {
	return c.vehicleType
}

// VehiclePlate returns the vehicle registration plate, possibly empty.
func (c CreateCourierCommand) VehiclePlate() string {
	return c.vehiclePlate
}
