package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetKitchenQueueStatsQueryHandler computes queue statistics over the same
// rows the queue query serves, so the numbers on the dashboard always match
// the list beneath them.
type GetKitchenQueueStatsQueryHandler struct {
	db      *gorm.DB
	planner services.QueuePlanner
}

// NewGetKitchenQueueStatsQueryHandler creates a handler for queue statistics.
// Requires a GORM database connection and the QueuePlanner domain service.
func NewGetKitchenQueueStatsQueryHandler(db *gorm.DB, planner services.QueuePlanner) GetKitchenQueueStatsQueryHandler {
	return GetKitchenQueueStatsQueryHandler{db: db, planner: planner}
}

// Handle executes the queue statistics query.
func (h GetKitchenQueueStatsQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenQueueStatsQuery,
) (services.QueueStats, error) {
	if err := query.Validate(); err != nil {
		return services.QueueStats{}, err
	}

	entries, err := loadQueueEntries(ctx, h.db, h.planner, query.Department())
	if err != nil {
		return services.QueueStats{}, err
	}

	return h.planner.ComputeStats(entries, time.Now().UTC()), nil
}
