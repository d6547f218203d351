// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. Besides the usual CRUD surface it implements
// the compare-and-set courier reservation the dispatch flows rely on.
package courierrepo

import (
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier
// aggregates.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Phone        string
	VehicleType  string
	VehiclePlate string
	Status       int `gorm:"type:smallint;index"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
		VehicleType:  aggregate.VehicleType(),
		VehiclePlate: aggregate.VehiclePlate(),
		Status:       int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a courier domain aggregate using
// RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		dto.Phone,
		dto.VehicleType,
		dto.VehiclePlate,
		courier.Status(dto.Status),
	)
}
