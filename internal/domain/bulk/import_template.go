package bulk

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopops/backend/internal/domain/shared"
)

// ImportTemplate describes the expected spreadsheet layout for an import
// target: one template per target, used for download and for the description
// shown next to the upload form.
type ImportTemplate struct {
	shared.BaseEntity
	Target      ImportTarget   `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text"`
	Columns     StringList     `gorm:"type:jsonb;not null"`
	ExampleRow  StringList     `gorm:"type:jsonb"`
	Extra       shared.JSONMap `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (ImportTemplate) TableName() string {
	return "import_templates"
}

// NewImportTemplate creates a template for an import target
func NewImportTemplate(target ImportTarget, name string, columns []string) (*ImportTemplate, error) {
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_TARGET", fmt.Sprintf("Unknown import target %q", string(target)))
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	if len(columns) == 0 {
		return nil, shared.NewDomainError("EMPTY_COLUMNS", "Template requires at least one column")
	}
	return &ImportTemplate{
		BaseEntity: shared.NewBaseEntity(),
		Target:     target,
		Name:       name,
		Columns:    columns,
	}, nil
}

// Update changes the template's descriptive attributes
func (t *ImportTemplate) Update(name, description string, columns, exampleRow []string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	if len(columns) == 0 {
		return shared.NewDomainError("EMPTY_COLUMNS", "Template requires at least one column")
	}
	t.Name = name
	t.Description = description
	t.Columns = columns
	t.ExampleRow = exampleRow
	t.UpdatedAt = time.Now()
	return nil
}
