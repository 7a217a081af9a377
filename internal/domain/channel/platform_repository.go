package channel

import (
	"context"

	"github.com/shopops/backend/internal/domain/shared"
)

// PlatformRepository defines persistence operations for platforms
type PlatformRepository interface {
	shared.Repository[Platform]

	// FindByCode finds a platform by its unique code
	FindByCode(ctx context.Context, code string) (*Platform, error)

	// ExistsByCode checks whether a platform with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// FindActive returns all active platforms ordered by sort order
	FindActive(ctx context.Context) ([]Platform, error)
}
