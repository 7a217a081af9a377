package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopops/backend/internal/domain/system"
)

// GormOperationLogRepository implements OperationLogRepository using GORM
type GormOperationLogRepository struct {
	db *gorm.DB
}

// NewGormOperationLogRepository creates a new GormOperationLogRepository
func NewGormOperationLogRepository(db *gorm.DB) *GormOperationLogRepository {
	return &GormOperationLogRepository{db: db}
}

// Save appends a log record
func (r *GormOperationLogRepository) Save(ctx context.Context, log *system.OperationLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

// Search lists log records, newest first, with a store-side total
func (r *GormOperationLogRepository) Search(ctx context.Context, q system.OperationLogQuery) ([]system.OperationLog, int64, error) {
	base := r.db.WithContext(ctx).Model(&system.OperationLog{})

	if q.UserID != nil {
		base = base.Where("user_id = ?", *q.UserID)
	}
	if q.ActionType != "" {
		base = base.Where("action = ?", q.ActionType)
	}
	if q.TableName != "" {
		base = base.Where("table_name = ?", q.TableName)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Session(&gorm.Session{}).Order("created_at DESC")
	if q.Page > 0 && q.PageSize > 0 {
		query = query.Offset((q.Page - 1) * q.PageSize).Limit(q.PageSize)
	}

	var logs []system.OperationLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// Ensure GormOperationLogRepository implements OperationLogRepository
var _ system.OperationLogRepository = (*GormOperationLogRepository)(nil)
