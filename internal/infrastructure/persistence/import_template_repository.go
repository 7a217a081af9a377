package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopops/backend/internal/domain/bulk"
	"github.com/shopops/backend/internal/domain/shared"
)

// GormImportTemplateRepository implements ImportTemplateRepository using GORM
type GormImportTemplateRepository struct {
	db *gorm.DB
}

// NewGormImportTemplateRepository creates a new GormImportTemplateRepository
func NewGormImportTemplateRepository(db *gorm.DB) *GormImportTemplateRepository {
	return &GormImportTemplateRepository{db: db}
}

// FindByID finds a template by its ID
func (r *GormImportTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*bulk.ImportTemplate, error) {
	var template bulk.ImportTemplate
	if err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

// FindByTarget finds the template of an import target
func (r *GormImportTemplateRepository) FindByTarget(ctx context.Context, target bulk.ImportTarget) (*bulk.ImportTemplate, error) {
	var template bulk.ImportTemplate
	if err := r.db.WithContext(ctx).
		Where("target = ?", target).
		First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

// FindAll finds all templates matching the filter
func (r *GormImportTemplateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]bulk.ImportTemplate, error) {
	var templates []bulk.ImportTemplate
	query := r.db.WithContext(ctx).Model(&bulk.ImportTemplate{})

	for key, value := range filter.Filters {
		switch key {
		case "target":
			query = query.Where("target = ?", value)
		}
	}

	if err := query.Order("target ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// Save creates or updates a template
func (r *GormImportTemplateRepository) Save(ctx context.Context, template *bulk.ImportTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

// Delete deletes a template
func (r *GormImportTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&bulk.ImportTemplate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts templates matching the filter
func (r *GormImportTemplateRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&bulk.ImportTemplate{})

	for key, value := range filter.Filters {
		switch key {
		case "target":
			query = query.Where("target = ?", value)
		}
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormImportTemplateRepository implements ImportTemplateRepository
var _ bulk.ImportTemplateRepository = (*GormImportTemplateRepository)(nil)
