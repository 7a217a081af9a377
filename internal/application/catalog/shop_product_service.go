package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/application/system"
	"github.com/shopops/backend/internal/domain/catalog"
	"github.com/shopops/backend/internal/domain/channel"
	"github.com/shopops/backend/internal/domain/shared"
)

// ShopProductService handles shop listing operations, including the batch
// editor's bulk status and price updates
type ShopProductService struct {
	productRepo   catalog.ShopProductRepository
	warehouseRepo catalog.WarehouseProductRepository
	shopRepo      channel.ShopRepository
	recorder      *system.Recorder
}

// NewShopProductService creates a new ShopProductService
func NewShopProductService(
	productRepo catalog.ShopProductRepository,
	warehouseRepo catalog.WarehouseProductRepository,
	shopRepo channel.ShopRepository,
	recorder *system.Recorder,
) *ShopProductService {
	return &ShopProductService{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		shopRepo:      shopRepo,
		recorder:      recorder,
	}
}

// Create lists a warehouse product in a shop
func (s *ShopProductService) Create(ctx context.Context, actorID *uuid.UUID, req CreateShopProductRequest) (*ShopProductResponse, error) {
	if _, err := s.shopRepo.FindByID(ctx, req.ShopID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_SHOP", "Shop not found")
		}
		return nil, err
	}
	if _, err := s.warehouseRepo.FindByID(ctx, req.WarehouseProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Warehouse product not found")
		}
		return nil, err
	}

	product, err := catalog.NewShopProduct(req.ShopID, req.WarehouseProductID, req.Title, req.Price)
	if err != nil {
		return nil, err
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	if err := product.Update(req.Title, req.ProductURL, req.Price, stock); err != nil {
		return nil, err
	}
	if req.Status != "" {
		if err := product.SetStatus(catalog.ListingStatus(req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "create", "shop_products", product.ID.String(), nil, product)

	response := ToShopProductResponse(product)
	return &response, nil
}

// GetByID retrieves a shop product by ID
func (s *ShopProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ShopProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	response := ToShopProductResponse(product)
	return &response, nil
}

// List retrieves shop products with joined display fields. The total is
// counted by the store.
func (s *ShopProductService) List(ctx context.Context, filter ShopProductListFilter) ([]ShopProductResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	query := catalog.ShopProductQuery{
		ShopID:   filter.ShopID,
		Keyword:  filter.Keyword,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if filter.Status != "" {
		status, err := catalog.ParseListingStatus(filter.Status)
		if err != nil {
			return nil, 0, err
		}
		query.Status = &status
	}

	items, total, err := s.productRepo.Search(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ShopProductResponse, len(items))
	for i := range items {
		responses[i] = ToShopProductListResponse(&items[i])
	}
	return responses, total, nil
}

// Update updates a shop product
func (s *ShopProductService) Update(ctx context.Context, actorID *uuid.UUID, productID uuid.UUID, req UpdateShopProductRequest) (*ShopProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	before := *product

	title := product.Title
	if req.Title != nil {
		title = *req.Title
	}
	productURL := product.ProductURL
	if req.ProductURL != nil {
		productURL = *req.ProductURL
	}
	price := product.Price
	if req.Price != nil {
		price = *req.Price
	}
	stock := product.Stock
	if req.Stock != nil {
		stock = *req.Stock
	}
	if err := product.Update(title, productURL, price, stock); err != nil {
		return nil, err
	}
	if req.Status != nil {
		if err := product.SetStatus(catalog.ListingStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "update", "shop_products", product.ID.String(), &before, product)

	response := ToShopProductResponse(product)
	return &response, nil
}

// Delete removes a shop product
func (s *ShopProductService) Delete(ctx context.Context, actorID *uuid.UUID, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}

	s.recorder.Record(ctx, actorID, "delete", "shop_products", productID.String(), product, nil)
	return nil
}

// BatchUpdateStatus sets the shelf status of every listed product and
// returns the number of rows touched
func (s *ShopProductService) BatchUpdateStatus(ctx context.Context, actorID *uuid.UUID, req BatchUpdateStatusRequest) (*BatchUpdateResponse, error) {
	status, err := catalog.ParseListingStatus(req.Status)
	if err != nil {
		return nil, err
	}

	updated, err := s.productRepo.UpdateStatusBatch(ctx, req.IDs, status)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "batch_update_status", "shop_products", "", nil, map[string]interface{}{
		"ids":     req.IDs,
		"status":  req.Status,
		"updated": updated,
	})

	return &BatchUpdateResponse{UpdatedCount: updated}, nil
}

// BatchUpdatePrice sets the price of every listed product and returns the
// number of rows touched. The price must be positive with at most two
// decimal places; the decimal value is passed through unchanged.
func (s *ShopProductService) BatchUpdatePrice(ctx context.Context, actorID *uuid.UUID, req BatchUpdatePriceRequest) (*BatchUpdateResponse, error) {
	if !req.Price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be positive")
	}
	if req.Price.Exponent() < -2 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot have more than two decimal places")
	}

	updated, err := s.productRepo.UpdatePriceBatch(ctx, req.IDs, req.Price)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "batch_update_price", "shop_products", "", nil, map[string]interface{}{
		"ids":     req.IDs,
		"price":   req.Price.String(),
		"updated": updated,
	})

	return &BatchUpdateResponse{UpdatedCount: updated}, nil
}
