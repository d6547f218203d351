package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/delivery"
)

// ErrNoCourierAvailable is returned when no courier in the candidate set can
// take the delivery.
var ErrNoCourierAvailable = errors.New("no courier available")

// CourierDispatcher picks a courier for a pending delivery during automatic
// assignment. The current policy takes the first available candidate; the
// dispatcher exists so a smarter policy (zones, vehicle types, load
// balancing) has one place to live.
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch selects a courier for the delivery from the candidate set.
//
// Returns ErrNoCourierAvailable when no candidate is AVAILABLE; the caller
// still has to reserve the returned courier atomically, because the pick is
// advisory until the registry's compare-and-set succeeds.
func (d CourierDispatcher) Dispatch(del *delivery.Delivery, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := del.Validate(); err != nil {
		return nil, err
	}

	for _, candidate := range couriers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		if candidate.IsAvailable() {
			return candidate, nil
		}
	}

	return nil, ErrNoCourierAvailable
}
