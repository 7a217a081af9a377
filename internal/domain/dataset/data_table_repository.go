package dataset

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
)

// DataTableRepository defines persistence operations for data tables
type DataTableRepository interface {
	shared.Repository[DataTable]

	// FindByShop returns all tables of a shop ordered by sort order
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]DataTable, error)

	// FindActiveByShops returns active tables for a set of shops,
	// ordered by sort order. Used by the navigation tree.
	FindActiveByShops(ctx context.Context, shopIDs []uuid.UUID) ([]DataTable, error)

	// FindFirstByType returns the first table matching type and optional
	// shop, ordered by sort order then creation time
	FindFirstByType(ctx context.Context, tableType TableType, shopID *uuid.UUID) (*DataTable, error)
}

// RowQuery narrows a row listing
type RowQuery struct {
	Filters  map[string]string // equality on data fields
	SortBy   string            // data field name
	SortDesc bool
	Offset   int
	Limit    int
}

// TableRowRepository defines persistence operations for table rows
type TableRowRepository interface {
	// FindByID finds a row within a table
	FindByID(ctx context.Context, dataTableID, rowID uuid.UUID) (*TableRow, error)

	// Save inserts or updates a row
	Save(ctx context.Context, row *TableRow) error

	// SaveBatch inserts rows in one statement
	SaveBatch(ctx context.Context, rows []*TableRow) error

	// Delete removes a row from a table
	Delete(ctx context.Context, dataTableID, rowID uuid.UUID) error

	// DeleteByTable removes every row of a table. Returns rows removed.
	// Used by overwrite-mode imports.
	DeleteByTable(ctx context.Context, dataTableID uuid.UUID) (int64, error)

	// Query lists rows with data-field filters and pagination.
	// Total is counted by the store, independent of the page.
	Query(ctx context.Context, dataTableID uuid.UUID, q RowQuery) ([]TableRow, int64, error)

	// CountByTable counts rows of a table
	CountByTable(ctx context.Context, dataTableID uuid.UUID) (int64, error)
}
