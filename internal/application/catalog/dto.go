package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopops/backend/internal/domain/catalog"
)

// CreateWarehouseProductRequest represents a request to create a warehouse product
type CreateWarehouseProductRequest struct {
	SKU       string           `json:"sku" binding:"required,min=1,max=100"`
	Name      string           `json:"name" binding:"required,min=1,max=200"`
	Category  string           `json:"category" binding:"max=100"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	Spec      string           `json:"spec" binding:"max=200"`
}

// UpdateWarehouseProductRequest represents a request to update a warehouse product
type UpdateWarehouseProductRequest struct {
	Name      *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Category  *string          `json:"category" binding:"omitempty,max=100"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	Spec      *string          `json:"spec" binding:"omitempty,max=200"`
}

// WarehouseProductResponse represents a warehouse product in API responses
type WarehouseProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Spec      string          `json:"spec"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WarehouseProductListFilter represents filter options for the warehouse list
type WarehouseProductListFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CreateShopProductRequest represents a request to list a product in a shop
type CreateShopProductRequest struct {
	ShopID             uuid.UUID       `json:"shop_id" binding:"required"`
	WarehouseProductID uuid.UUID       `json:"warehouse_product_id" binding:"required"`
	Title              string          `json:"title" binding:"required,min=1,max=200"`
	ProductURL         string          `json:"product_url" binding:"max=500"`
	Price              decimal.Decimal `json:"price" binding:"required"`
	Stock              *int            `json:"stock"`
	Status             string          `json:"status" binding:"omitempty,oneof=on_shelf off_shelf"`
}

// UpdateShopProductRequest represents a request to update a shop product
type UpdateShopProductRequest struct {
	Title      *string          `json:"title" binding:"omitempty,min=1,max=200"`
	ProductURL *string          `json:"product_url" binding:"omitempty,max=500"`
	Price      *decimal.Decimal `json:"price"`
	Stock      *int             `json:"stock"`
	Status     *string          `json:"status" binding:"omitempty,oneof=on_shelf off_shelf"`
}

// ShopProductResponse represents a shop product in API responses, enriched
// with joined display fields when produced by Search
type ShopProductResponse struct {
	ID                   uuid.UUID       `json:"id"`
	ShopID               uuid.UUID       `json:"shop_id"`
	WarehouseProductID   uuid.UUID       `json:"warehouse_product_id"`
	Title                string          `json:"title"`
	ProductURL           string          `json:"product_url"`
	Price                decimal.Decimal `json:"price"`
	Status               string          `json:"status"`
	Stock                int             `json:"stock"`
	ShopName             string          `json:"shop_name,omitempty"`
	PlatformName         string          `json:"platform_name,omitempty"`
	SKU                  string          `json:"sku,omitempty"`
	WarehouseProductName string          `json:"warehouse_product_name,omitempty"`
	CostPrice            decimal.Decimal `json:"cost_price"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ShopProductListFilter represents filter options for the shop product list
type ShopProductListFilter struct {
	ShopID   *uuid.UUID `form:"shop_id"`
	Status   string     `form:"status" binding:"omitempty,oneof=on_shelf off_shelf"`
	Keyword  string     `form:"keyword"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// BatchUpdateStatusRequest sets the shelf status of several listings
type BatchUpdateStatusRequest struct {
	IDs    []uuid.UUID `json:"ids" binding:"required,min=1"`
	Status string      `json:"status" binding:"required,oneof=on_shelf off_shelf"`
}

// BatchUpdatePriceRequest sets the price of several listings
type BatchUpdatePriceRequest struct {
	IDs   []uuid.UUID     `json:"ids" binding:"required,min=1"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// BatchUpdateResponse reports how many rows a batch operation touched
type BatchUpdateResponse struct {
	UpdatedCount int64 `json:"updated_count"`
}

// UpsertInventoryRequest sets the stock level of a warehouse product
type UpsertInventoryRequest struct {
	WarehouseProductID uuid.UUID `json:"warehouse_product_id" binding:"required"`
	Quantity           int       `json:"quantity" binding:"min=0"`
	WarehouseLocation  string    `json:"warehouse_location" binding:"max=100"`
}

// InventoryResponse represents an inventory record in API responses
type InventoryResponse struct {
	ID                 uuid.UUID `json:"id"`
	WarehouseProductID uuid.UUID `json:"warehouse_product_id"`
	Quantity           int       `json:"quantity"`
	WarehouseLocation  string    `json:"warehouse_location"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToWarehouseProductResponse converts a domain WarehouseProduct
func ToWarehouseProductResponse(p *catalog.WarehouseProduct) WarehouseProductResponse {
	return WarehouseProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		CostPrice: p.CostPrice,
		Spec:      p.Spec,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToShopProductResponse converts a domain ShopProduct
func ToShopProductResponse(p *catalog.ShopProduct) ShopProductResponse {
	return ShopProductResponse{
		ID:                 p.ID,
		ShopID:             p.ShopID,
		WarehouseProductID: p.WarehouseProductID,
		Title:              p.Title,
		ProductURL:         p.ProductURL,
		Price:              p.Price,
		Status:             string(p.Status),
		Stock:              p.Stock,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ToShopProductListResponse converts a joined listing row
func ToShopProductListResponse(item *catalog.ShopProductListItem) ShopProductResponse {
	response := ToShopProductResponse(&item.Product)
	response.ShopName = item.ShopName
	response.PlatformName = item.PlatformName
	response.SKU = item.SKU
	response.WarehouseProductName = item.WarehouseProductName
	response.CostPrice = item.CostPrice
	return response
}

// ToInventoryResponse converts a domain Inventory
func ToInventoryResponse(i *catalog.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:                 i.ID,
		WarehouseProductID: i.WarehouseProductID,
		Quantity:           i.Quantity,
		WarehouseLocation:  i.WarehouseLocation,
		CreatedAt:          i.CreatedAt,
		UpdatedAt:          i.UpdatedAt,
	}
}
