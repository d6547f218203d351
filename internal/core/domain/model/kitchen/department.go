package kitchen

import (
	"fulfillment/internal/pkg/errs"
)

// Department identifies a physical preparation station in the kitchen.
// Menu categories are routed to departments by the department router; items
// that match no routing rule land in DepartmentGeneral.
type Department int

const (
	// DepartmentUnknown represents an invalid or undefined department.
	DepartmentUnknown Department = iota

	// DepartmentGeneral is the fallback station for unrouted categories.
	DepartmentGeneral

	// DepartmentGrill prepares grilled dishes.
	DepartmentGrill

	// DepartmentOven prepares oven-baked dishes.
	DepartmentOven

	// DepartmentCold prepares salads, cold plates and drinks.
	DepartmentCold

	// DepartmentHot prepares soups, stews and pasta.
	DepartmentHot

	// DepartmentDessert prepares desserts.
	DepartmentDessert
)

// departmentStrings maps departments to their wire names. The lower-case
// forms match the station names of the original kitchen API.
func departmentStrings() map[Department]string {
	return map[Department]string{
		DepartmentUnknown: "unknown",
		DepartmentGeneral: "general",
		DepartmentGrill:   "grill",
		DepartmentOven:    "oven",
		DepartmentCold:    "cold",
		DepartmentHot:     "hot",
		DepartmentDessert: "dessert",
	}
}

// DepartmentFromString parses the wire name of a department.
func DepartmentFromString(s string) (Department, error) {
	for d, str := range departmentStrings() {
		if d != DepartmentUnknown && str == s {
			return d, nil
		}
	}
	return DepartmentUnknown, errs.NewValueIsInvalidError("department " + s)
}

// String returns the wire name of the department.
func (d Department) String() string {
	if str, ok := departmentStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Department is one of the defined stations.
func (d Department) Validate() error {
	if _, ok := departmentStrings()[d]; !ok || d == DepartmentUnknown {
		return errs.NewValueIsInvalidError("department")
	}
	return nil
}
