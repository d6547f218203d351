package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// MenuItemInfo is the slice of menu data the engine snapshots onto an
// order line at creation time. Later menu edits do not affect orders
// already placed.
type MenuItemInfo struct {
	Name               string
	Category           string
	UnitPrice          int64
	PreparationMinutes int
}

// MenuCatalog resolves menu item identifiers to their current name,
// category, price and preparation time. Returns
// errs.ObjectNotFoundError for unknown items.
type MenuCatalog interface {
	Lookup(ctx context.Context, menuItemID kernel.UUID) (MenuItemInfo, error)
}
