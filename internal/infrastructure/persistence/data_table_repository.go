package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopops/backend/internal/domain/dataset"
	"github.com/shopops/backend/internal/domain/shared"
)

// GormDataTableRepository implements DataTableRepository using GORM
type GormDataTableRepository struct {
	db *gorm.DB
}

// NewGormDataTableRepository creates a new GormDataTableRepository
func NewGormDataTableRepository(db *gorm.DB) *GormDataTableRepository {
	return &GormDataTableRepository{db: db}
}

// FindByID finds a data table by its ID
func (r *GormDataTableRepository) FindByID(ctx context.Context, id uuid.UUID) (*dataset.DataTable, error) {
	var table dataset.DataTable
	if err := r.db.WithContext(ctx).First(&table, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

// FindAll finds all data tables matching the filter
func (r *GormDataTableRepository) FindAll(ctx context.Context, filter shared.Filter) ([]dataset.DataTable, error) {
	var tables []dataset.DataTable
	query := r.applyFilter(r.db.WithContext(ctx).Model(&dataset.DataTable{}), filter)

	if err := query.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// FindByShop returns all tables of a shop ordered by sort order
func (r *GormDataTableRepository) FindByShop(ctx context.Context, shopID uuid.UUID) ([]dataset.DataTable, error) {
	var tables []dataset.DataTable
	if err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("sort_order ASC, created_at ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// FindActiveByShops returns active tables for a set of shops ordered by sort order
func (r *GormDataTableRepository) FindActiveByShops(ctx context.Context, shopIDs []uuid.UUID) ([]dataset.DataTable, error) {
	if len(shopIDs) == 0 {
		return []dataset.DataTable{}, nil
	}

	var tables []dataset.DataTable
	if err := r.db.WithContext(ctx).
		Where("shop_id IN ? AND is_active = ?", shopIDs, true).
		Order("sort_order ASC, created_at ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// FindFirstByType returns the first table matching type and optional shop
func (r *GormDataTableRepository) FindFirstByType(ctx context.Context, tableType dataset.TableType, shopID *uuid.UUID) (*dataset.DataTable, error) {
	query := r.db.WithContext(ctx).Where("table_type = ?", tableType)
	if shopID != nil {
		query = query.Where("shop_id = ?", *shopID)
	}

	var table dataset.DataTable
	if err := query.Order("sort_order ASC, created_at ASC").First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

// Save creates or updates a data table
func (r *GormDataTableRepository) Save(ctx context.Context, table *dataset.DataTable) error {
	return r.db.WithContext(ctx).Save(table).Error
}

// Delete deletes a data table
func (r *GormDataTableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&dataset.DataTable{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts data tables matching the filter
func (r *GormDataTableRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&dataset.DataTable{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormDataTableRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, DataTableSortFields, "sort_order")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("sort_order ASC, created_at ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormDataTableRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "shop_id":
			query = query.Where("shop_id = ?", value)
		case "table_type":
			query = query.Where("table_type = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	return query
}

// Ensure GormDataTableRepository implements DataTableRepository
var _ dataset.DataTableRepository = (*GormDataTableRepository)(nil)
