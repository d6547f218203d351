package order

import (
	"fulfillment/internal/pkg/errs"
)

// Priority controls an order's position in the kitchen queue.
// It lives on the Order, not on individual tickets: bumping a single ticket
// reorders the whole order across every department. That is a deliberate,
// documented property of the engine, not an accident.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow queues after everything else, used to defer an order.
	PriorityLow

	// PriorityNormal is the default priority of new orders.
	PriorityNormal

	// PriorityUrgent jumps to the front of every department queue.
	PriorityUrgent
)

func priorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "UNKNOWN",
		PriorityLow:     "LOW",
		PriorityNormal:  "NORMAL",
		PriorityUrgent:  "URGENT",
	}
}

// PriorityFromString parses the canonical wire representation of a priority.
func PriorityFromString(s string) (Priority, error) {
	for p, str := range priorityStrings() {
		if p != PriorityUnknown && str == s {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidError("priority " + s)
}

// String returns the canonical upper-case name of the priority.
func (p Priority) String() string {
	if str, ok := priorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the Priority is one of the defined levels.
func (p Priority) Validate() error {
	if _, ok := priorityStrings()[p]; !ok || p == PriorityUnknown {
		return errs.NewValueIsInvalidError("priority")
	}
	return nil
}

// Before reports whether p queues ahead of other.
// Higher priority values queue first.
func (p Priority) Before(other Priority) bool {
	return p > other
}
