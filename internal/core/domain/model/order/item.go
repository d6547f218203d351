package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single ordered line: a snapshot of the menu item at ordering time
// plus quantity and free-text notes. The category and preparation-time
// snapshots are what the kitchen routes and schedules on, so a later menu edit
// never reshuffles tickets already in flight.
type Item struct {
	// menuItemID references the menu catalog entry the line was built from
	menuItemID kernel.UUID
	// name is the menu item name at ordering time
	name string
	// category is the menu category name at ordering time, used for routing
	category string
	// quantity is the ordered count (must be positive)
	quantity int
	// unitPrice is the per-unit price in minor currency units
	unitPrice int64
	// preparationMinutes is the per-unit preparation time snapshot
	preparationMinutes int
	// notes carries free-text kitchen instructions
	notes string

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
//
// Validation rules:
//   - menuItemID must be a constructed UUID
//   - name must be non-empty
//   - quantity must be positive
//   - unitPrice and preparationMinutes must be non-negative
func NewItem(
	menuItemID kernel.UUID,
	name string,
	category string,
	quantity int,
	unitPrice int64,
	preparationMinutes int,
	notes string,
) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%d is negative", unitPrice))
	}
	if preparationMinutes < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("preparation minutes",
			fmt.Errorf("%d is negative", preparationMinutes))
	}

	return Item{
		menuItemID:         menuItemID,
		name:               name,
		category:           category,
		quantity:           quantity,
		unitPrice:          unitPrice,
		preparationMinutes: preparationMinutes,
		notes:              notes,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu catalog entry id.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name snapshot.
func (i Item) Name() string {
	return i.name
}

// Category returns the menu category snapshot used for department routing.
func (i Item) Category() string {
	return i.category
}

// Quantity returns the ordered count.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price in minor currency units.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// PreparationMinutes returns the per-unit preparation time snapshot.
func (i Item) PreparationMinutes() int {
	return i.preparationMinutes
}

// Notes returns the free-text kitchen instructions.
func (i Item) Notes() string {
	return i.notes
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() int64 {
	return int64(i.quantity) * i.unitPrice
}

// WorkMinutes returns quantity times preparation minutes, the item's
// contribution to a department's workload.
func (i Item) WorkMinutes() int {
	return i.quantity * i.preparationMinutes
}
