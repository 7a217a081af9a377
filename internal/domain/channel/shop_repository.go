package channel

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
)

// ShopRepository defines persistence operations for shops
type ShopRepository interface {
	shared.Repository[Shop]

	// FindByPlatform returns all shops belonging to a platform
	FindByPlatform(ctx context.Context, platformID uuid.UUID) ([]Shop, error)

	// FindActiveByPlatform returns active shops of a platform ordered by name
	FindActiveByPlatform(ctx context.Context, platformID uuid.UUID) ([]Shop, error)

	// ExistsByPlatformAndName checks for a duplicate shop name within a platform
	ExistsByPlatformAndName(ctx context.Context, platformID uuid.UUID, name string) (bool, error)

	// CountByPlatform counts shops under a platform
	CountByPlatform(ctx context.Context, platformID uuid.UUID) (int64, error)
}
