// Package menurepo implements the menu catalog port over the menu_items
// table. The engine only reads the catalog; menu management belongs to a
// different system writing the same table.
package menurepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItemDTO represents one row of the menu catalog.
type MenuItemDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	Category           string
	UnitPrice          int64
	PreparationMinutes int
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// GormMenuCatalog implements ports.MenuCatalog using GORM.
type GormMenuCatalog struct {
	db *gorm.DB
}

// NewGormMenuCatalog creates a new GORM menu catalog.
func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// Lookup resolves a menu item to the snapshot data orders carry.
// Returns errs.ObjectNotFoundError for unknown items.
func (c *GormMenuCatalog) Lookup(ctx context.Context, menuItemID kernel.UUID) (ports.MenuItemInfo, error) {
	if err := menuItemID.Validate(); err != nil {
		return ports.MenuItemInfo{}, err
	}

	var dto MenuItemDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", menuItemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MenuItemInfo{}, errs.NewObjectNotFoundError("menuItemId", menuItemID.String())
		}
		return ports.MenuItemInfo{}, err
	}

	return ports.MenuItemInfo{
		Name:               dto.Name,
		Category:           dto.Category,
		UnitPrice:          dto.UnitPrice,
		PreparationMinutes: dto.PreparationMinutes,
	}, nil
}
