package order

import (
	"fulfillment/internal/pkg/errs"
)

// Type classifies how an order is fulfilled.
// Delivery-specific operations (delivery records, courier assignment) are only
// valid for TypeDelivery orders.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeDineIn is an order served at a table.
	TypeDineIn

	// TypeTakeaway is an order picked up by the customer.
	TypeTakeaway

	// TypeDelivery is an order fulfilled by a courier.
	TypeDelivery
)

func typeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "UNKNOWN",
		TypeDineIn:   "DINE_IN",
		TypeTakeaway: "TAKEAWAY",
		TypeDelivery: "DELIVERY",
	}
}

// TypeFromString parses the canonical wire representation of an order type.
func TypeFromString(s string) (Type, error) {
	for t, str := range typeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidError("order type " + s)
}

// String returns the canonical upper-case name of the type.
func (t Type) String() string {
	if str, ok := typeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the Type is one of the defined order types.
func (t Type) Validate() error {
	if _, ok := typeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidError("order type")
	}
	return nil
}
