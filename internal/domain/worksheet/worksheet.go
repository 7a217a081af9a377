package worksheet

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
)

// Worksheet is a saved, user-owned view configuration over shop products.
// Names are unique per user; other users never see it.
type Worksheet struct {
	shared.BaseEntity
	UserID uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_worksheets_user_name,priority:1"`
	Name   string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_worksheets_user_name,priority:2"`
	Config shared.JSONMap `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Worksheet) TableName() string {
	return "worksheets"
}

// NewWorksheet creates a worksheet for a user
func NewWorksheet(userID uuid.UUID, name string, config map[string]interface{}) (*Worksheet, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User is required")
	}
	if err := validateWorksheetName(name); err != nil {
		return nil, err
	}
	return &Worksheet{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Name:       name,
		Config:     config,
	}, nil
}

// Rename changes the worksheet name
func (w *Worksheet) Rename(name string) error {
	if err := validateWorksheetName(name); err != nil {
		return err
	}
	w.Name = name
	w.UpdatedAt = time.Now()
	return nil
}

// SetConfig replaces the saved view configuration
func (w *Worksheet) SetConfig(config map[string]interface{}) {
	w.Config = config
	w.UpdatedAt = time.Now()
}

func validateWorksheetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Worksheet name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Worksheet name cannot exceed 100 characters")
	}
	return nil
}
