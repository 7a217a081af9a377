package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopops/backend/internal/domain/channel"
	"github.com/shopops/backend/internal/domain/shared"
)

// GormPlatformRepository implements PlatformRepository using GORM
type GormPlatformRepository struct {
	db *gorm.DB
}

// NewGormPlatformRepository creates a new GormPlatformRepository
func NewGormPlatformRepository(db *gorm.DB) *GormPlatformRepository {
	return &GormPlatformRepository{db: db}
}

// FindByID finds a platform by its ID
func (r *GormPlatformRepository) FindByID(ctx context.Context, id uuid.UUID) (*channel.Platform, error) {
	var platform channel.Platform
	if err := r.db.WithContext(ctx).First(&platform, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &platform, nil
}

// FindByCode finds a platform by its unique code
func (r *GormPlatformRepository) FindByCode(ctx context.Context, code string) (*channel.Platform, error) {
	var platform channel.Platform
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToLower(code)).
		First(&platform).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &platform, nil
}

// ExistsByCode checks whether a platform with the given code exists
func (r *GormPlatformRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&channel.Platform{}).
		Where("code = ?", strings.ToLower(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all platforms matching the filter
func (r *GormPlatformRepository) FindAll(ctx context.Context, filter shared.Filter) ([]channel.Platform, error) {
	var platforms []channel.Platform
	query := r.applyFilter(r.db.WithContext(ctx).Model(&channel.Platform{}), filter)

	if err := query.Find(&platforms).Error; err != nil {
		return nil, err
	}
	return platforms, nil
}

// FindActive returns all active platforms ordered by sort order
func (r *GormPlatformRepository) FindActive(ctx context.Context) ([]channel.Platform, error) {
	var platforms []channel.Platform
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&platforms).Error; err != nil {
		return nil, err
	}
	return platforms, nil
}

// Save creates or updates a platform
func (r *GormPlatformRepository) Save(ctx context.Context, platform *channel.Platform) error {
	return r.db.WithContext(ctx).Save(platform).Error
}

// Delete deletes a platform
func (r *GormPlatformRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&channel.Platform{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts platforms matching the filter
func (r *GormPlatformRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&channel.Platform{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormPlatformRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, PlatformSortFields, "sort_order")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("sort_order ASC, name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPlatformRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "code":
			query = query.Where("code = ?", value)
		}
	}

	return query
}

// Ensure GormPlatformRepository implements PlatformRepository
var _ channel.PlatformRepository = (*GormPlatformRepository)(nil)
