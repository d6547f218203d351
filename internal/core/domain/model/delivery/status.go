package delivery

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	PENDING ──> ASSIGNED ──> PICKED_UP ──> DISPATCHED ──> IN_TRANSIT ──> DELIVERED
//	   │        │   ↺ (reassign)   │            │              │      └─> FAILED | RETURNED
//	   │        │                  └────────────┴──────────────┘
//	   └────────┴──────────────────────> CANCELLED (from any non-terminal state)
//
// PICKED_UP may advance to DISPATCHED or directly to IN_TRANSIT; both may
// terminate in DELIVERED, FAILED or RETURNED. DELIVERED, FAILED, RETURNED and
// CANCELLED are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a delivery awaiting a courier.
	StatusPending

	// StatusAssigned indicates a courier was reserved for the delivery.
	// Re-assignment to a different courier is allowed until pickup.
	StatusAssigned

	// StatusPickedUp indicates the courier collected the order.
	StatusPickedUp

	// StatusDispatched indicates the courier left the restaurant.
	StatusDispatched

	// StatusInTransit indicates the courier is en route to the customer.
	StatusInTransit

	// StatusDelivered is the terminal success state.
	StatusDelivered

	// StatusFailed is the terminal state of a delivery that could not be
	// completed.
	StatusFailed

	// StatusReturned is the terminal state of a delivery brought back to the
	// restaurant.
	StatusReturned

	// StatusCancelled is the terminal state of an explicitly cancelled
	// delivery.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusPending:    "PENDING",
		StatusAssigned:   "ASSIGNED",
		StatusPickedUp:   "PICKED_UP",
		StatusDispatched: "DISPATCHED",
		StatusInTransit:  "IN_TRANSIT",
		StatusDelivered:  "DELIVERED",
		StatusFailed:     "FAILED",
		StatusReturned:   "RETURNED",
		StatusCancelled:  "CANCELLED",
	}
}

func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:  {StatusAssigned, StatusCancelled},
		StatusAssigned: {StatusAssigned, StatusPickedUp, StatusCancelled},
		StatusPickedUp: {
			StatusDispatched, StatusInTransit,
			StatusDelivered, StatusFailed, StatusReturned, StatusCancelled,
		},
		StatusDispatched: {StatusInTransit, StatusDelivered, StatusFailed, StatusReturned, StatusCancelled},
		StatusInTransit:  {StatusDelivered, StatusFailed, StatusReturned, StatusCancelled},
	}
}

// StatusFromString parses the canonical wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("delivery status " + s)
}

// String returns the canonical upper-case name of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the Status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidError("delivery status")
	}
	return nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusFailed, StatusReturned, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the transition table contains the
// (s, target) pair. Re-applying the current status is allowed as a no-op.
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
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError("delivery", s.String(), target.String())
	}
	return target, nil
}
