package courier

import (
	"fulfillment/internal/pkg/errs"
)

// Status is the availability state of a courier.
// A courier is BUSY exactly while it is the active courier of a non-terminal
// delivery; the registry's reserve operation is the only way to claim one.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the courier can be reserved for a delivery.
	StatusAvailable

	// StatusBusy means the courier is reserved by a non-terminal delivery.
	StatusBusy
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusAvailable: "AVAILABLE",
		StatusBusy:      "BUSY",
	}
}

// StatusFromString parses the canonical wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("courier status " + s)
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
		return errs.NewValueIsInvalidError("courier status")
	}
	return nil
}
