package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/pkg/guard"
)

var ErrGetKitchenQueueStatsQueryIsNotConstructed = errors.New(
	"GetKitchenQueueStatsQuery must be created via NewGetKitchenQueueStatsQuery constructor",
)

// GetKitchenQueueStatsQuery summarizes the live kitchen queue: item counts,
// mean wait and per-department workload.
type GetKitchenQueueStatsQuery struct { //nolint:recvcheck //using for validation
	department *kitchen.Department

	guard guard.ConstructorGuard
}

// NewGetKitchenQueueStatsQuery creates a query for queue statistics.
// A nil department means all departments.
func NewGetKitchenQueueStatsQuery(department *kitchen.Department) (GetKitchenQueueStatsQuery, error) {
	if department != nil {
		if err := department.Validate(); err != nil {
			return GetKitchenQueueStatsQuery{}, err
		}
	}

	return GetKitchenQueueStatsQuery{
		department: department,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetKitchenQueueStatsQueryIsNotConstructed if validation fails.
func (q GetKitchenQueueStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenQueueStatsQueryIsNotConstructed)
}

// Department returns the department filter, nil for all departments.
func (q GetKitchenQueueStatsQuery) Department() *kitchen.Department {
	return q.department
}
