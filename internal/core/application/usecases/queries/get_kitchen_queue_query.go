// Package queries contains read operations against the database.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows with raw SQL instead of loading aggregates.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetKitchenQueueQueryIsNotConstructed = errors.New(
		"GetKitchenQueueQuery must be created via NewGetKitchenQueueQuery constructor",
	)
	ErrQueueLimitIsInvalid = errors.New("queue limit must not be negative")
)

// GetKitchenQueueQuery retrieves the live kitchen queue: every PENDING or
// PREPARING ticket item of a non-terminal order, enriched with order and
// timing data and sorted by priority then order age.
//
// Example:
//
//	grill := kitchen.DepartmentGrill
//	query, err := NewGetKitchenQueueQuery(&grill, 50)
//	if err != nil {
//	    return err
//	}
//	entries, err := handler.Handle(ctx, query)
type GetKitchenQueueQuery struct { //nolint:recvcheck //using for validation
	department *kitchen.Department
	limit      int

	guard guard.ConstructorGuard
}

// NewGetKitchenQueueQuery creates a query for the kitchen queue.
// A nil department means all departments; a limit of 0 means no limit.
func NewGetKitchenQueueQuery(department *kitchen.Department, limit int) (GetKitchenQueueQuery, error) {
	if department != nil {
		if err := department.Validate(); err != nil {
			return GetKitchenQueueQuery{}, err
		}
	}
	if limit < 0 {
		return GetKitchenQueueQuery{}, ErrQueueLimitIsInvalid
	}

	return GetKitchenQueueQuery{
		department: department,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetKitchenQueueQueryIsNotConstructed if validation fails.
func (q GetKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenQueueQueryIsNotConstructed)
}

// Department returns the department filter, nil for all departments.
func (q GetKitchenQueueQuery) Department() *kitchen.Department {
	return q.department
}

// Limit returns the maximum number of entries to return, 0 for no limit.
func (q GetKitchenQueueQuery) Limit() int {
	return q.limit
}
