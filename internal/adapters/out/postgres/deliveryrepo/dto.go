// Package deliveryrepo provides data transfer objects and mapping
// functions for delivery persistence.
package deliveryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The unique index on order_id enforces at most one delivery
// per order.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	CourierID   *uuid.UUID `gorm:"type:uuid;index"`
	Status      int        `gorm:"type:smallint;index"`
	Address     string
	Fee         int64
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		CourierID:   courierID,
		Status:      int(aggregate.Status()),
		Address:     aggregate.Address(),
		Fee:         aggregate.Fee(),
		AssignedAt:  aggregate.AssignedAt(),
		PickedUpAt:  aggregate.PickedUpAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		CancelledAt: aggregate.CancelledAt(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate using
// RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		courierID,
		delivery.Status(dto.Status),
		dto.Address,
		dto.Fee,
		dto.AssignedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.CancelledAt,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
