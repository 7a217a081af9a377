package bulk

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
)

// ImportHistoryRepository defines persistence operations for import runs
type ImportHistoryRepository interface {
	shared.Repository[ImportHistory]

	// FindRecent lists runs newest first
	FindRecent(ctx context.Context, offset, limit int) ([]ImportHistory, error)

	// FindByUser lists a user's runs newest first
	FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]ImportHistory, error)
}

// ImportTemplateRepository defines persistence operations for import templates
type ImportTemplateRepository interface {
	shared.Repository[ImportTemplate]

	// FindByTarget finds the template of an import target
	FindByTarget(ctx context.Context, target ImportTarget) (*ImportTemplate, error)
}
