package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopops/backend/internal/application/system"
	"github.com/shopops/backend/internal/domain/catalog"
	"github.com/shopops/backend/internal/domain/shared"
)

// WarehouseService handles warehouse product and inventory operations
type WarehouseService struct {
	productRepo   catalog.WarehouseProductRepository
	inventoryRepo catalog.InventoryRepository
	recorder      *system.Recorder
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(
	productRepo catalog.WarehouseProductRepository,
	inventoryRepo catalog.InventoryRepository,
	recorder *system.Recorder,
) *WarehouseService {
	return &WarehouseService{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		recorder:      recorder,
	}
}

// Create creates a warehouse product
func (s *WarehouseService) Create(ctx context.Context, actorID *uuid.UUID, req CreateWarehouseProductRequest) (*WarehouseProductResponse, error) {
	exists, err := s.productRepo.ExistsBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}

	product, err := catalog.NewWarehouseProduct(req.SKU, req.Name)
	if err != nil {
		return nil, err
	}

	costPrice := decimal.Zero
	if req.CostPrice != nil {
		costPrice = *req.CostPrice
	}
	if err := product.Update(req.Name, req.Category, req.Spec, costPrice); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "create", "warehouse_products", product.ID.String(), nil, product)

	response := ToWarehouseProductResponse(product)
	return &response, nil
}

// GetByID retrieves a warehouse product by ID
func (s *WarehouseService) GetByID(ctx context.Context, productID uuid.UUID) (*WarehouseProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	response := ToWarehouseProductResponse(product)
	return &response, nil
}

// GetBySKU retrieves a warehouse product by SKU
func (s *WarehouseService) GetBySKU(ctx context.Context, sku string) (*WarehouseProductResponse, error) {
	product, err := s.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	response := ToWarehouseProductResponse(product)
	return &response, nil
}

// List retrieves warehouse products with filtering and pagination
func (s *WarehouseService) List(ctx context.Context, filter WarehouseProductListFilter) ([]WarehouseProductResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]WarehouseProductResponse, len(products))
	for i := range products {
		responses[i] = ToWarehouseProductResponse(&products[i])
	}
	return responses, total, nil
}

// Update updates a warehouse product
func (s *WarehouseService) Update(ctx context.Context, actorID *uuid.UUID, productID uuid.UUID, req UpdateWarehouseProductRequest) (*WarehouseProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	before := *product

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	category := product.Category
	if req.Category != nil {
		category = *req.Category
	}
	spec := product.Spec
	if req.Spec != nil {
		spec = *req.Spec
	}
	costPrice := product.CostPrice
	if req.CostPrice != nil {
		costPrice = *req.CostPrice
	}

	if err := product.Update(name, category, spec, costPrice); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "update", "warehouse_products", product.ID.String(), &before, product)

	response := ToWarehouseProductResponse(product)
	return &response, nil
}

// Delete removes a warehouse product
func (s *WarehouseService) Delete(ctx context.Context, actorID *uuid.UUID, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}

	s.recorder.Record(ctx, actorID, "delete", "warehouse_products", productID.String(), product, nil)
	return nil
}

// GetInventory retrieves the stock record of a warehouse product
func (s *WarehouseService) GetInventory(ctx context.Context, warehouseProductID uuid.UUID) (*InventoryResponse, error) {
	record, err := s.inventoryRepo.FindByWarehouseProduct(ctx, warehouseProductID)
	if err != nil {
		return nil, err
	}
	response := ToInventoryResponse(record)
	return &response, nil
}

// UpsertInventory sets the stock level of a warehouse product, creating the
// record on first write
func (s *WarehouseService) UpsertInventory(ctx context.Context, actorID *uuid.UUID, req UpsertInventoryRequest) (*InventoryResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, req.WarehouseProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Warehouse product not found")
		}
		return nil, err
	}

	record, err := s.inventoryRepo.FindByWarehouseProduct(ctx, req.WarehouseProductID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if record == nil {
		record, err = catalog.NewInventory(req.WarehouseProductID, req.Quantity, req.WarehouseLocation)
		if err != nil {
			return nil, err
		}
	} else if err := record.Adjust(req.Quantity, req.WarehouseLocation); err != nil {
		return nil, err
	}

	if err := s.inventoryRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actorID, "upsert", "inventories", record.ID.String(), nil, record)

	response := ToInventoryResponse(record)
	return &response, nil
}
