// Package ticketrepo provides data transfer objects and mapping functions
// for kitchen ticket persistence.
package ticketrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"

	"github.com/google/uuid"
)

// TicketDTO represents the database structure for persisting kitchen
// ticket aggregates. The unique index on (order_id, department) backs the
// fan-out idempotency guarantee at the storage level.
type TicketDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ticket_order_department"`
	Department       int       `gorm:"type:smallint;uniqueIndex:idx_ticket_order_department"`
	Status           int       `gorm:"type:smallint;index"`
	Chef             string
	EstimatedMinutes int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Items            []TicketItemDTO `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for ticket entities.
func (TicketDTO) TableName() string {
	return "kitchen_tickets"
}

// TicketItemDTO represents one line of a kitchen ticket. Unlike order
// lines, ticket items carry their own status and are updated as chefs
// advance them.
type TicketItemDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TicketID           uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID         uuid.UUID `gorm:"type:uuid"`
	Name               string
	Quantity           int
	PreparationMinutes int
	Notes              string
	Status             int `gorm:"type:smallint;index"`
}

// TableName specifies the database table name for ticket item entities.
func (TicketItemDTO) TableName() string {
	return "kitchen_ticket_items"
}

// fromDomain converts a ticket domain aggregate to its database representation.
func fromDomain(ticket *kitchen.Ticket) TicketDTO {
	items := make([]TicketItemDTO, 0, len(ticket.Items()))
	for _, item := range ticket.Items() {
		items = append(items, TicketItemDTO{
			ID:                 item.ID().Bytes(),
			TicketID:           ticket.ID().Bytes(),
			MenuItemID:         item.MenuItemID().Bytes(),
			Name:               item.Name(),
			Quantity:           item.Quantity(),
			PreparationMinutes: item.PreparationMinutes(),
			Notes:              item.Notes(),
			Status:             int(item.Status()),
		})
	}

	return TicketDTO{
		ID:               ticket.ID().Bytes(),
		OrderID:          ticket.OrderID().Bytes(),
		Department:       int(ticket.Department()),
		Status:           int(ticket.Status()),
		Chef:             ticket.Chef(),
		EstimatedMinutes: ticket.EstimatedMinutes(),
		CreatedAt:        ticket.CreatedAt(),
		UpdatedAt:        ticket.UpdatedAt(),
		Items:            items,
	}
}

// toDomain converts a database DTO to a ticket domain aggregate using
// RestoreTicket.
func toDomain(dto TicketDTO) (*kitchen.Ticket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*kitchen.TicketItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := kitchen.RestoreTicketItem(
			itemID,
			menuItemID,
			itemDTO.Name,
			itemDTO.Quantity,
			itemDTO.PreparationMinutes,
			itemDTO.Notes,
			kitchen.Status(itemDTO.Status),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return kitchen.RestoreTicket(
		id,
		orderID,
		kitchen.Department(dto.Department),
		kitchen.Status(dto.Status),
		dto.Chef,
		dto.EstimatedMinutes,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
