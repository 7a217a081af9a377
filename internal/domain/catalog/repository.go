package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopops/backend/internal/domain/shared"
)

// WarehouseProductRepository defines persistence operations for warehouse products
type WarehouseProductRepository interface {
	shared.Repository[WarehouseProduct]

	// FindBySKU finds a product by its unique SKU
	FindBySKU(ctx context.Context, sku string) (*WarehouseProduct, error)

	// ExistsBySKU checks whether a SKU is taken
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}

// ShopProductListItem is a listing joined with its shop and warehouse product
type ShopProductListItem struct {
	Product              ShopProduct
	ShopName             string
	PlatformName         string
	SKU                  string
	WarehouseProductName string
	CostPrice            decimal.Decimal
}

// ShopProductQuery narrows shop product listings
type ShopProductQuery struct {
	ShopID  *uuid.UUID
	Status  *ListingStatus
	Keyword string // matches listing title
	Page    int
	PageSize int
}

// ShopProductRepository defines persistence operations for shop products
type ShopProductRepository interface {
	shared.Repository[ShopProduct]

	// Search lists shop products with joined display fields.
	// Total comes from the store, independent of the page.
	Search(ctx context.Context, q ShopProductQuery) ([]ShopProductListItem, int64, error)

	// FindByShopAndSKU resolves the listing of a warehouse SKU within a
	// shop. SKU comparison is case-insensitive and exact.
	FindByShopAndSKU(ctx context.Context, shopID uuid.UUID, sku string) (*ShopProduct, error)

	// UpdateStatusBatch sets the shelf status of every listed ID and
	// returns the number of rows touched
	UpdateStatusBatch(ctx context.Context, ids []uuid.UUID, status ListingStatus) (int64, error)

	// UpdatePriceBatch sets the price of every listed ID and returns
	// the number of rows touched
	UpdatePriceBatch(ctx context.Context, ids []uuid.UUID, price decimal.Decimal) (int64, error)
}

// InventoryRepository defines persistence operations for inventory records
type InventoryRepository interface {
	shared.Repository[Inventory]

	// FindByWarehouseProduct finds the inventory row of a product
	FindByWarehouseProduct(ctx context.Context, warehouseProductID uuid.UUID) (*Inventory, error)
}
