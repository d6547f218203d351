package kitchen

import (
	"fulfillment/internal/pkg/errs"
)

// Status is the shared lifecycle state of kitchen tickets and ticket items.
// The machine is strictly linear with no skipping and no backward moves:
//
//	PENDING ──> PREPARING ──> READY ──> SERVED
//	   │            │
//	   └────────────┴──> CANCELLED (only while the parent order cancels)
//
// SERVED and CANCELLED are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means work has not started.
	StatusPending

	// StatusPreparing means the station is actively working the item.
	StatusPreparing

	// StatusReady means preparation finished and the item awaits serving.
	StatusReady

	// StatusServed is the terminal success state.
	StatusServed

	// StatusCancelled is the terminal state reached when the parent order
	// cancels while the item is still PENDING or PREPARING.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusPreparing: "PREPARING",
		StatusReady:     "READY",
		StatusServed:    "SERVED",
		StatusCancelled: "CANCELLED",
	}
}

// statusTransitions is the linear transition table shared by tickets and
// their items.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusPreparing, StatusCancelled},
		StatusPreparing: {StatusReady, StatusCancelled},
		StatusReady:     {StatusServed},
	}
}

// StatusFromString parses the canonical wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("ticket status " + s)
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
		return errs.NewValueIsInvalidError("ticket status")
	}
	return nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusServed || s == StatusCancelled
}

// AtLeast reports whether the status already reached the given stage of the
// linear machine. Cancelled items never count toward progress.
func (s Status) AtLeast(stage Status) bool {
	if s == StatusCancelled {
		return false
	}
	return s >= stage
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
// Skipping a stage or moving backward yields *errs.InvalidTransitionError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError("ticket", s.String(), target.String())
	}
	return target, nil
}
