package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
)

// TableType classifies a data table
type TableType string

const (
	TableTypeProduct   TableType = "product"
	TableTypeSales     TableType = "sales"
	TableTypeInventory TableType = "inventory"
	TableTypeCustom    TableType = "custom"
)

// ParseTableType parses a table type tag
func ParseTableType(s string) (TableType, error) {
	switch TableType(strings.ToLower(strings.TrimSpace(s))) {
	case TableTypeProduct:
		return TableTypeProduct, nil
	case TableTypeSales:
		return TableTypeSales, nil
	case TableTypeInventory:
		return TableTypeInventory, nil
	case TableTypeCustom:
		return TableTypeCustom, nil
	default:
		return "", shared.NewDomainError("INVALID_TABLE_TYPE", fmt.Sprintf("Unknown table type %q", s))
	}
}

// DataTable is a per-shop table instance with a user-defined field schema.
// Row payloads live in table_rows and are validated against Fields.
type DataTable struct {
	shared.BaseEntity
	ShopID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	TableType   TableType `gorm:"type:varchar(50);not null;index"`
	Description string    `gorm:"type:text"`
	Fields      FieldList `gorm:"type:jsonb;not null"`
	SortOrder   int       `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (DataTable) TableName() string {
	return "data_tables"
}

// NewDataTable creates a data table with a validated schema.
// At least one field is required.
func NewDataTable(shopID uuid.UUID, name string, tableType TableType, fields FieldList) (*DataTable, error) {
	if shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHOP", "Shop is required")
	}
	if err := validateTableName(name); err != nil {
		return nil, err
	}
	if _, err := ParseTableType(string(tableType)); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, shared.NewDomainError("EMPTY_SCHEMA", "Data table requires at least one field")
	}
	for _, f := range fields {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}

	return &DataTable{
		BaseEntity: shared.NewBaseEntity(),
		ShopID:     shopID,
		Name:       name,
		TableType:  tableType,
		Fields:     clone(fields).normalize(),
		IsActive:   true,
	}, nil
}

// Update changes name and description
func (t *DataTable) Update(name, description string) error {
	if err := validateTableName(name); err != nil {
		return err
	}
	t.Name = name
	t.Description = description
	t.UpdatedAt = time.Now()
	return nil
}

// ReplaceFields swaps the whole schema. Used by schema editor saves.
func (t *DataTable) ReplaceFields(fields FieldList) error {
	if len(fields) == 0 {
		return shared.NewDomainError("EMPTY_SCHEMA", "Data table requires at least one field")
	}
	for _, f := range fields {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	t.Fields = clone(fields).normalize()
	t.UpdatedAt = time.Now()
	return nil
}

// SetSortOrder sets the display position inside the shop node
func (t *DataTable) SetSortOrder(order int) {
	t.SortOrder = order
	t.UpdatedAt = time.Now()
}

// Activate shows the table in the navigation tree
func (t *DataTable) Activate() {
	t.IsActive = true
	t.UpdatedAt = time.Now()
}

// Deactivate hides the table from the navigation tree without deleting rows
func (t *DataTable) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now()
}

// ValidateRow checks a row payload against the schema: required fields must
// be present and every known field must coerce to its declared type.
// The coerced payload is returned; unknown keys pass through untouched.
func (t *DataTable) ValidateRow(data map[string]interface{}) (map[string]interface{}, error) {
	for _, name := range t.Fields.RequiredNames() {
		value, ok := data[name]
		if !ok || value == nil {
			return nil, shared.NewDomainError("MISSING_REQUIRED_FIELD", fmt.Sprintf("Missing required field %q", name))
		}
		if s, isStr := value.(string); isStr && strings.TrimSpace(s) == "" {
			return nil, shared.NewDomainError("MISSING_REQUIRED_FIELD", fmt.Sprintf("Missing required field %q", name))
		}
	}

	coerced := make(map[string]interface{}, len(data))
	for key, value := range data {
		field, known := t.Fields.FindByName(key)
		if !known {
			coerced[key] = value
			continue
		}
		cv, err := field.Type.Coerce(value)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_FIELD_VALUE", fmt.Sprintf("Field %q: %s", key, err.Error()))
		}
		coerced[key] = cv
	}
	return coerced, nil
}

func validateTableName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Data table name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Data table name cannot exceed 100 characters")
	}
	return nil
}
