package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopops/backend/internal/domain/channel"
	"github.com/shopops/backend/internal/domain/shared"
)

// GormShopRepository implements ShopRepository using GORM
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a new GormShopRepository
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// FindByID finds a shop by its ID
func (r *GormShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*channel.Shop, error) {
	var shop channel.Shop
	if err := r.db.WithContext(ctx).First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// FindAll finds all shops matching the filter
func (r *GormShopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]channel.Shop, error) {
	var shops []channel.Shop
	query := r.applyFilter(r.db.WithContext(ctx).Model(&channel.Shop{}), filter)

	if err := query.Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// FindByPlatform returns all shops belonging to a platform
func (r *GormShopRepository) FindByPlatform(ctx context.Context, platformID uuid.UUID) ([]channel.Shop, error) {
	var shops []channel.Shop
	if err := r.db.WithContext(ctx).
		Where("platform_id = ?", platformID).
		Order("name ASC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// FindActiveByPlatform returns active shops of a platform ordered by name
func (r *GormShopRepository) FindActiveByPlatform(ctx context.Context, platformID uuid.UUID) ([]channel.Shop, error) {
	var shops []channel.Shop
	if err := r.db.WithContext(ctx).
		Where("platform_id = ? AND status = ?", platformID, channel.ShopStatusActive).
		Order("name ASC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// ExistsByPlatformAndName checks for a duplicate shop name within a platform
func (r *GormShopRepository) ExistsByPlatformAndName(ctx context.Context, platformID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&channel.Shop{}).
		Where("platform_id = ? AND name = ?", platformID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByPlatform counts shops under a platform
func (r *GormShopRepository) CountByPlatform(ctx context.Context, platformID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&channel.Shop{}).
		Where("platform_id = ?", platformID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a shop
func (r *GormShopRepository) Save(ctx context.Context, shop *channel.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}

// Delete deletes a shop
func (r *GormShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&channel.Shop{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts shops matching the filter
func (r *GormShopRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&channel.Shop{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormShopRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, ShopSortFields, "name")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormShopRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR account ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "platform_id":
			query = query.Where("platform_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "manager_id":
			query = query.Where("manager_id = ?", value)
		}
	}

	return query
}

// Ensure GormShopRepository implements ShopRepository
var _ channel.ShopRepository = (*GormShopRepository)(nil)
