// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status and priority index the hot paths: queue reads and
// the stale-order sweep.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number          string
	OrderType       int `gorm:"type:smallint"`
	Status          int `gorm:"type:smallint;index"`
	Priority        int `gorm:"type:smallint"`
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	TableNumber     int
	Total           int64
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. Lines are immutable once the
// order is created, so they are inserted with the order and never updated.
type OrderItemDTO struct {
	OrderID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	Category           string
	Quantity           int
	UnitPrice          int64
	PreparationMinutes int
	Notes              string
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:            aggregate.ID().Bytes(),
			MenuItemID:         item.MenuItemID().Bytes(),
			Name:               item.Name(),
			Category:           item.Category(),
			Quantity:           item.Quantity(),
			UnitPrice:          item.UnitPrice(),
			PreparationMinutes: item.PreparationMinutes(),
			Notes:              item.Notes(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number(),
		OrderType:       int(aggregate.Type()),
		Status:          int(aggregate.Status()),
		Priority:        int(aggregate.Priority()),
		CustomerName:    aggregate.Customer().Name,
		CustomerPhone:   aggregate.Customer().Phone,
		CustomerAddress: aggregate.Customer().Address,
		TableNumber:     aggregate.TableNumber(),
		Total:           aggregate.Total(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(
			menuItemID,
			itemDTO.Name,
			itemDTO.Category,
			itemDTO.Quantity,
			itemDTO.UnitPrice,
			itemDTO.PreparationMinutes,
			itemDTO.Notes,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		order.Type(dto.OrderType),
		order.Status(dto.Status),
		order.Priority(dto.Priority),
		order.Customer{
			Name:    dto.CustomerName,
			Phone:   dto.CustomerPhone,
			Address: dto.CustomerAddress,
		},
		dto.TableNumber,
		items,
		dto.Total,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
