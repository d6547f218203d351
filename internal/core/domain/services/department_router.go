package services

import (
	"strings"

	"fulfillment/internal/core/domain/model/kitchen"
)

// routingRule maps a category-name fragment to a department. Rules are
// evaluated in order; the first fragment contained in the category wins.
type routingRule struct {
	fragment   string
	department kitchen.Department
}

// DepartmentRouter maps a menu item's category to the kitchen department that
// prepares it. It is a pure lookup with no side effects: categories matching
// no rule fall back to the general department, which is also why routing has
// no failure mode.
type DepartmentRouter struct {
	rules []routingRule
}

// NewDepartmentRouter creates a router with an explicit mapping of category
// fragments to departments. Matching is case-insensitive substring matching
// in rule order.
func NewDepartmentRouter(mapping map[string]kitchen.Department) DepartmentRouter {
	rules := make([]routingRule, 0, len(mapping))
	for fragment, department := range mapping {
		rules = append(rules, routingRule{
			fragment:   strings.ToLower(fragment),
			department: department,
		})
	}
	return DepartmentRouter{rules: rules}
}

// NewDefaultDepartmentRouter creates a router with the station mapping the
// kitchen has always used.
func NewDefaultDepartmentRouter() DepartmentRouter {
	return DepartmentRouter{rules: []routingRule{
		{"kebab", kitchen.DepartmentGrill},
		{"bbq", kitchen.DepartmentGrill},
		{"burger", kitchen.DepartmentGrill},
		{"steak", kitchen.DepartmentGrill},
		{"pizza", kitchen.DepartmentOven},
		{"bread", kitchen.DepartmentOven},
		{"salad", kitchen.DepartmentCold},
		{"drink", kitchen.DepartmentCold},
		{"beverage", kitchen.DepartmentCold},
		{"soup", kitchen.DepartmentHot},
		{"stew", kitchen.DepartmentHot},
		{"pasta", kitchen.DepartmentHot},
		{"dessert", kitchen.DepartmentDessert},
		{"ice cream", kitchen.DepartmentDessert},
		{"cake", kitchen.DepartmentDessert},
	}}
}

// Route returns the department preparing the given menu category.
// Unmatched or empty categories land in kitchen.DepartmentGeneral.
func (r DepartmentRouter) Route(categoryName string) kitchen.Department {
	category := strings.ToLower(categoryName)
	for _, rule := range r.rules {
		if strings.Contains(category, rule.fragment) {
			return rule.department
		}
	}
	return kitchen.DepartmentGeneral
}
