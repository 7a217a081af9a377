package identity

import (
	"context"

	"github.com/shopops/backend/internal/domain/shared"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	shared.Repository[User]

	// FindByUsername finds a user by unique username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername checks whether a username is taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
