package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopops/backend/internal/domain/dataset"
	"github.com/shopops/backend/internal/domain/shared"
)

// GormTableRowRepository implements TableRowRepository using GORM
type GormTableRowRepository struct {
	db *gorm.DB
}

// NewGormTableRowRepository creates a new GormTableRowRepository
func NewGormTableRowRepository(db *gorm.DB) *GormTableRowRepository {
	return &GormTableRowRepository{db: db}
}

// FindByID finds a row within a table
func (r *GormTableRowRepository) FindByID(ctx context.Context, dataTableID, rowID uuid.UUID) (*dataset.TableRow, error) {
	var row dataset.TableRow
	if err := r.db.WithContext(ctx).
		Where("data_table_id = ? AND id = ?", dataTableID, rowID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Save inserts or updates a row
func (r *GormTableRowRepository) Save(ctx context.Context, row *dataset.TableRow) error {
	return r.db.WithContext(ctx).Save(row).Error
}

// SaveBatch inserts rows in one statement
func (r *GormTableRowRepository) SaveBatch(ctx context.Context, rows []*dataset.TableRow) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, 500).Error
}

// Delete removes a row from a table
func (r *GormTableRowRepository) Delete(ctx context.Context, dataTableID, rowID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&dataset.TableRow{}, "data_table_id = ? AND id = ?", dataTableID, rowID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByTable removes every row of a table and returns rows removed
func (r *GormTableRowRepository) DeleteByTable(ctx context.Context, dataTableID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&dataset.TableRow{}, "data_table_id = ?", dataTableID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Query lists rows with data-field filters and pagination.
// The total is counted by the store so it stays correct past the page.
func (r *GormTableRowRepository) Query(ctx context.Context, dataTableID uuid.UUID, q dataset.RowQuery) ([]dataset.TableRow, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&dataset.TableRow{}).
		Where("data_table_id = ?", dataTableID)

	for field, value := range q.Filters {
		base = base.Where("data ->> ? = ?", field, value)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Session(&gorm.Session{})
	if q.SortBy != "" {
		dir := "ASC"
		if q.SortDesc {
			dir = "DESC"
		}
		query = query.Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "data ->> ? " + dir, Vars: []interface{}{q.SortBy}, WithoutParentheses: true},
		})
	} else {
		query = query.Order("created_at ASC")
	}

	if q.Limit > 0 {
		query = query.Offset(q.Offset).Limit(q.Limit)
	}

	var rows []dataset.TableRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// CountByTable counts rows of a table
func (r *GormTableRowRepository) CountByTable(ctx context.Context, dataTableID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&dataset.TableRow{}).
		Where("data_table_id = ?", dataTableID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormTableRowRepository implements TableRowRepository
var _ dataset.TableRowRepository = (*GormTableRowRepository)(nil)
