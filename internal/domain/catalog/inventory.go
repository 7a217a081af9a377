package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
)

// Inventory tracks stock on hand for a warehouse product
type Inventory struct {
	shared.BaseEntity
	WarehouseProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Quantity           int       `gorm:"not null;default:0"`
	WarehouseLocation  string    `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Inventory) TableName() string {
	return "inventories"
}

// NewInventory creates an inventory record for a warehouse product
func NewInventory(warehouseProductID uuid.UUID, quantity int, location string) (*Inventory, error) {
	if warehouseProductID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Warehouse product is required")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	return &Inventory{
		BaseEntity:         shared.NewBaseEntity(),
		WarehouseProductID: warehouseProductID,
		Quantity:           quantity,
		WarehouseLocation:  location,
	}, nil
}

// Adjust replaces the quantity and optionally the location
func (i *Inventory) Adjust(quantity int, location string) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	i.Quantity = quantity
	if location != "" {
		i.WarehouseLocation = location
	}
	i.UpdatedAt = time.Now()
	return nil
}
