package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopops/backend/internal/domain/shared"
)

// ListingStatus is the shelf status of a shop product
type ListingStatus string

const (
	ListingStatusOnShelf  ListingStatus = "on_shelf"
	ListingStatusOffShelf ListingStatus = "off_shelf"
)

// ParseListingStatus parses a shelf status tag
func ParseListingStatus(s string) (ListingStatus, error) {
	switch ListingStatus(strings.ToLower(strings.TrimSpace(s))) {
	case ListingStatusOnShelf:
		return ListingStatusOnShelf, nil
	case ListingStatusOffShelf:
		return ListingStatusOffShelf, nil
	default:
		return "", shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Status must be %q or %q", ListingStatusOnShelf, ListingStatusOffShelf))
	}
}

// ShopProduct is a warehouse product listed in a shop
type ShopProduct struct {
	shared.BaseEntity
	ShopID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	WarehouseProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductURL         string          `gorm:"type:varchar(500)"`
	Title              string          `gorm:"type:varchar(200);not null"`
	Price              decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status             ListingStatus   `gorm:"type:varchar(20);not null;default:'on_shelf'"`
	Stock              int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ShopProduct) TableName() string {
	return "shop_products"
}

// NewShopProduct lists a warehouse product in a shop
func NewShopProduct(shopID, warehouseProductID uuid.UUID, title string, price decimal.Decimal) (*ShopProduct, error) {
	if shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHOP", "Shop is required")
	}
	if warehouseProductID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Warehouse product is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Listing title cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return &ShopProduct{
		BaseEntity:         shared.NewBaseEntity(),
		ShopID:             shopID,
		WarehouseProductID: warehouseProductID,
		Title:              title,
		Price:              price,
		Status:             ListingStatusOnShelf,
	}, nil
}

// Update updates listing attributes
func (p *ShopProduct) Update(title, productURL string, price decimal.Decimal, stock int) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Listing title cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	p.Title = title
	p.ProductURL = productURL
	p.Price = price
	p.Stock = stock
	p.UpdatedAt = time.Now()
	return nil
}

// SetStatus changes the shelf status
func (p *ShopProduct) SetStatus(status ListingStatus) error {
	parsed, err := ParseListingStatus(string(status))
	if err != nil {
		return err
	}
	p.Status = parsed
	p.UpdatedAt = time.Now()
	return nil
}
