package ticketrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTicketRepository implements ports.KitchenTicketRepository using GORM.
type GormTicketRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTicketRepository creates a new GORM kitchen ticket repository.
func NewGormTicketRepository(db *gorm.DB, tracker aggregateTracker) *GormTicketRepository {
	return &GormTicketRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a batch of new tickets and their items to the database.
// The whole batch is one insert per table; a duplicate (order, department)
// pair fails the insert, backing the fan-out idempotency at storage level.
func (r *GormTicketRepository) Add(ctx context.Context, tickets []*kitchen.Ticket) error {
	dtos := make([]TicketDTO, 0, len(tickets))
	for _, ticket := range tickets {
		if err := ticket.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(ticket))
	}

	if len(dtos) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, ticket := range tickets {
		r.tracker.TrackAggregate(ticket.ID(), ticket)
	}
	return nil
}

// Update saves an existing ticket and the statuses of its items.
func (r *GormTicketRepository) Update(ctx context.Context, ticket *kitchen.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return err
	}

	dto := fromDomain(ticket)
	result := r.db.WithContext(ctx).
		Model(&TicketDTO{}).
		Omit(clause.Associations).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	// Item status is the only mutable item field.
	for _, item := range dto.Items {
		err := r.db.WithContext(ctx).
			Model(&TicketItemDTO{}).
			Where("id = ?", item.ID).
			Update("status", item.Status).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(ticket.ID(), ticket)
	return nil
}

// Get retrieves a ticket by ID with its items.
func (r *GormTicketRepository) Get(ctx context.Context, id kernel.UUID) (*kitchen.Ticket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TicketDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ticket", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves all tickets created for the given order.
func (r *GormTicketRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*kitchen.Ticket, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TicketDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("department").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllActive retrieves all tickets not yet in a terminal status.
func (r *GormTicketRepository) GetAllActive(ctx context.Context) ([]*kitchen.Ticket, error) {
	var dtos []TicketDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Find(&dtos, "status NOT IN ?", []int{
			int(kitchen.StatusServed),
			int(kitchen.StatusCancelled),
		}).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormTicketRepository) toDomainAll(dtos []TicketDTO) ([]*kitchen.Ticket, error) {
	tickets := make([]*kitchen.Ticket, 0, len(dtos))
	for _, dto := range dtos {
		ticket, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}
