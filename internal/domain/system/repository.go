package system

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
)

// MenuItemRepository defines persistence operations for menu items
type MenuItemRepository interface {
	shared.Repository[MenuItem]

	// FindAllOrdered returns all items ordered by sort order for tree building
	FindAllOrdered(ctx context.Context) ([]MenuItem, error)

	// HasChildren reports whether any item references the given parent
	HasChildren(ctx context.Context, parentID uuid.UUID) (bool, error)
}

// SettingRepository defines persistence operations for settings
type SettingRepository interface {
	shared.Repository[Setting]

	// FindByKey finds a setting by its unique key
	FindByKey(ctx context.Context, key string) (*Setting, error)

	// FindByGroup lists settings of a group
	FindByGroup(ctx context.Context, group string) ([]Setting, error)

	// FindPublic lists settings readable without admin rights
	FindPublic(ctx context.Context) ([]Setting, error)
}

// OperationLogQuery narrows operation log listings
type OperationLogQuery struct {
	UserID     *uuid.UUID
	ActionType string
	TableName  string
	Page       int
	PageSize   int
}

// OperationLogRepository defines persistence operations for operation logs
type OperationLogRepository interface {
	// Save appends a log record
	Save(ctx context.Context, log *OperationLog) error

	// Search lists log records, newest first, with a store-side total
	Search(ctx context.Context, q OperationLogQuery) ([]OperationLog, int64, error)
}
