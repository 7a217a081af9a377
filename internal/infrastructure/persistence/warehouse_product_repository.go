package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopops/backend/internal/domain/catalog"
	"github.com/shopops/backend/internal/domain/shared"
)

// GormWarehouseProductRepository implements WarehouseProductRepository using GORM
type GormWarehouseProductRepository struct {
	db *gorm.DB
}

// NewGormWarehouseProductRepository creates a new GormWarehouseProductRepository
func NewGormWarehouseProductRepository(db *gorm.DB) *GormWarehouseProductRepository {
	return &GormWarehouseProductRepository{db: db}
}

// FindByID finds a warehouse product by its ID
func (r *GormWarehouseProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.WarehouseProduct, error) {
	var product catalog.WarehouseProduct
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindBySKU finds a product by its unique SKU
func (r *GormWarehouseProductRepository) FindBySKU(ctx context.Context, sku string) (*catalog.WarehouseProduct, error) {
	var product catalog.WarehouseProduct
	if err := r.db.WithContext(ctx).
		Where("sku = ?", strings.TrimSpace(sku)).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// ExistsBySKU checks whether a SKU is taken
func (r *GormWarehouseProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.WarehouseProduct{}).
		Where("sku = ?", strings.TrimSpace(sku)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all warehouse products matching the filter
func (r *GormWarehouseProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.WarehouseProduct, error) {
	var products []catalog.WarehouseProduct
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.WarehouseProduct{}), filter)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save creates or updates a warehouse product
func (r *GormWarehouseProductRepository) Save(ctx context.Context, product *catalog.WarehouseProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete deletes a warehouse product
func (r *GormWarehouseProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.WarehouseProduct{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts warehouse products matching the filter
func (r *GormWarehouseProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.WarehouseProduct{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormWarehouseProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, WarehouseProductSortFields, "created_at")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormWarehouseProductRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "sku":
			query = query.Where("sku = ?", value)
		}
	}

	return query
}

// Ensure GormWarehouseProductRepository implements WarehouseProductRepository
var _ catalog.WarehouseProductRepository = (*GormWarehouseProductRepository)(nil)
