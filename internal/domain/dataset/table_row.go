package dataset

import (
	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
)

// TableRow is one record of a data table. The payload is schema-less at the
// storage level; validation against the owning table's schema happens before
// a row is created.
type TableRow struct {
	shared.BaseEntity
	DataTableID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Data        shared.JSONMap `gorm:"type:jsonb;not null"`
}

// TableName returns the table name for GORM
func (TableRow) TableName() string {
	return "table_rows"
}

// NewTableRow creates a row for a data table
func NewTableRow(dataTableID uuid.UUID, data map[string]interface{}) (*TableRow, error) {
	if dataTableID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TABLE", "Data table is required")
	}
	if len(data) == 0 {
		return nil, shared.NewDomainError("EMPTY_ROW", "Row payload cannot be empty")
	}
	return &TableRow{
		BaseEntity:  shared.NewBaseEntity(),
		DataTableID: dataTableID,
		Data:        data,
	}, nil
}
