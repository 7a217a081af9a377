package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopops/backend/internal/domain/shared"
	"github.com/shopops/backend/internal/domain/system"
)

// GormSettingRepository implements SettingRepository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// FindByID finds a setting by its ID
func (r *GormSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*system.Setting, error) {
	var setting system.Setting
	if err := r.db.WithContext(ctx).First(&setting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

// FindByKey finds a setting by its unique key
func (r *GormSettingRepository) FindByKey(ctx context.Context, key string) (*system.Setting, error) {
	var setting system.Setting
	if err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

// FindByGroup lists settings of a group
func (r *GormSettingRepository) FindByGroup(ctx context.Context, group string) ([]system.Setting, error) {
	var settings []system.Setting
	if err := r.db.WithContext(ctx).
		Where("group_name = ?", group).
		Order("key ASC").
		Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// FindPublic lists settings readable without admin rights
func (r *GormSettingRepository) FindPublic(ctx context.Context) ([]system.Setting, error) {
	var settings []system.Setting
	if err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("key ASC").
		Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// FindAll finds all settings matching the filter
func (r *GormSettingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]system.Setting, error) {
	var settings []system.Setting
	query := r.db.WithContext(ctx).Model(&system.Setting{})

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("key ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "group_name":
			query = query.Where("group_name = ?", value)
		case "is_public":
			query = query.Where("is_public = ?", value)
		}
	}

	if err := query.Order("group_name ASC, key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// Save creates or updates a setting
func (r *GormSettingRepository) Save(ctx context.Context, setting *system.Setting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

// Delete deletes a setting
func (r *GormSettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&system.Setting{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts settings matching the filter
func (r *GormSettingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&system.Setting{})

	for key, value := range filter.Filters {
		switch key {
		case "group_name":
			query = query.Where("group_name = ?", value)
		case "is_public":
			query = query.Where("is_public = ?", value)
		}
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSettingRepository implements SettingRepository
var _ system.SettingRepository = (*GormSettingRepository)(nil)
