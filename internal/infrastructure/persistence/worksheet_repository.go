package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopops/backend/internal/domain/shared"
	"github.com/shopops/backend/internal/domain/worksheet"
)

// GormWorksheetRepository implements worksheet.Repository using GORM.
// Every lookup carries the owning user ID so one user's worksheets are
// invisible to another.
type GormWorksheetRepository struct {
	db *gorm.DB
}

// NewGormWorksheetRepository creates a new GormWorksheetRepository
func NewGormWorksheetRepository(db *gorm.DB) *GormWorksheetRepository {
	return &GormWorksheetRepository{db: db}
}

// FindByID finds a worksheet owned by the user
func (r *GormWorksheetRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*worksheet.Worksheet, error) {
	var ws worksheet.Worksheet
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&ws).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ws, nil
}

// FindByUser lists the user's worksheets
func (r *GormWorksheetRepository) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]worksheet.Worksheet, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC")

	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}

	var sheets []worksheet.Worksheet
	if err := query.Find(&sheets).Error; err != nil {
		return nil, err
	}
	return sheets, nil
}

// ExistsByUserAndName checks for a duplicate name within the user's worksheets
func (r *GormWorksheetRepository) ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&worksheet.Worksheet{}).
		Where("user_id = ? AND name = ?", userID, name)

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save inserts or updates a worksheet
func (r *GormWorksheetRepository) Save(ctx context.Context, ws *worksheet.Worksheet) error {
	return r.db.WithContext(ctx).Save(ws).Error
}

// Delete removes a worksheet owned by the user
func (r *GormWorksheetRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&worksheet.Worksheet{}, "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormWorksheetRepository implements worksheet.Repository
var _ worksheet.Repository = (*GormWorksheetRepository)(nil)
