package worksheet

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for worksheets.
// All lookups are scoped to the owning user; a worksheet of another user
// behaves as if it did not exist.
type Repository interface {
	// FindByID finds a worksheet owned by the user
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Worksheet, error)

	// FindByUser lists the user's worksheets
	FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]Worksheet, error)

	// ExistsByUserAndName checks for a duplicate name within the user's worksheets
	ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)

	// Save inserts or updates a worksheet
	Save(ctx context.Context, ws *Worksheet) error

	// Delete removes a worksheet owned by the user
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
