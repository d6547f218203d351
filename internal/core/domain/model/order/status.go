package order

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single transition table so that every
// caller, whether kitchen, delivery, or a manual override, is validated
// against the same rules.
//
// State transitions:
//
//	PENDING ──> CONFIRMED ──> PREPARING ──> READY ──┬──> COMPLETED
//	   │            │             │           │     └──> DELIVERED (delivery orders)
//	   └────────────┴─────────────┴───────────┴────────> CANCELLED
//
// COMPLETED, DELIVERED and CANCELLED are terminal: no outgoing transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly placed order.
	StatusPending

	// StatusConfirmed indicates the order was accepted and kitchen tickets
	// may be created for it.
	StatusConfirmed

	// StatusPreparing indicates at least one kitchen department started
	// working on the order.
	StatusPreparing

	// StatusReady indicates every kitchen ticket of the order is ready.
	StatusReady

	// StatusCompleted is the terminal success state for non-delivery orders
	// and the folded reporting state for delivered ones.
	StatusCompleted

	// StatusDelivered is the delivery-order-specific terminal success state.
	StatusDelivered

	// StatusCancelled is the terminal state of an explicitly cancelled order.
	StatusCancelled
)

// statusStrings maps every Status to its canonical wire representation.
// The upper-case forms match the original HTTP API.
func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusConfirmed: "CONFIRMED",
		StatusPreparing: "PREPARING",
		StatusReady:     "READY",
		StatusCompleted: "COMPLETED",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// statusTransitions is the single allowed-transition table for orders.
// Any (from, target) pair absent from this table is rejected.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusPreparing, StatusCancelled},
		StatusPreparing: {StatusReady, StatusCancelled},
		StatusReady:     {StatusCompleted, StatusDelivered, StatusCancelled},
	}
}

// StatusFromString parses the canonical wire representation of a status.
// Returns an error for unknown or empty values.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status " + s)
}

// String returns the canonical upper-case name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the Status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the transition table contains the
// (s, target) pair. Re-applying the current status is always allowed and is
// treated as a no-op by TransitionTo.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the requested transition and returns the new status.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (s, nil) when target equals the current status (idempotent no-op)
//   - (StatusUnknown, *errs.InvalidTransitionError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError("order", s.String(), target.String())
	}
	return target, nil
}
