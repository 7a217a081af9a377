package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shopops/backend/internal/domain/shared"
)

// WarehouseProduct is the master record of a stocked product, identified by SKU
type WarehouseProduct struct {
	shared.BaseEntity
	SKU       string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Category  string          `gorm:"type:varchar(100);index"`
	CostPrice decimal.Decimal `gorm:"type:decimal(12,2)"`
	Spec      string          `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (WarehouseProduct) TableName() string {
	return "warehouse_products"
}

// NewWarehouseProduct creates a warehouse product
func NewWarehouseProduct(sku, name string) (*WarehouseProduct, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	return &WarehouseProduct{
		BaseEntity: shared.NewBaseEntity(),
		SKU:        strings.TrimSpace(sku),
		Name:       name,
	}, nil
}

// Update updates mutable attributes
func (p *WarehouseProduct) Update(name, category, spec string, costPrice decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if costPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Cost price cannot be negative")
	}
	p.Name = name
	p.Category = category
	p.Spec = spec
	p.CostPrice = costPrice
	p.UpdatedAt = time.Now()
	return nil
}

func validateSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 100 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 100 characters")
	}
	return nil
}
