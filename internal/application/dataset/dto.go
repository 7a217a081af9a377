package dataset

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/dataset"
)

// FieldInput is one field of a table schema in requests
type FieldInput struct {
	Name     string `json:"name" binding:"required,min=1,max=50"`
	Type     string `json:"type" binding:"required"`
	Required bool   `json:"required"`
	Order    *int   `json:"order"`
}

// CreateTableRequest represents a request to create a data table
type CreateTableRequest struct {
	ShopID      uuid.UUID    `json:"shop_id" binding:"required"`
	Name        string       `json:"name" binding:"required,min=1,max=100"`
	TableType   string       `json:"table_type" binding:"required"`
	Description string       `json:"description" binding:"max=2000"`
	Fields      []FieldInput `json:"fields" binding:"required,min=1"`
	SortOrder   *int         `json:"sort_order"`
}

// UpdateTableRequest represents a request to update a data table
type UpdateTableRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

// FieldResponse is one field of a table schema in responses
type FieldResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Order    int    `json:"order"`
}

// TableResponse represents a data table in API responses
type TableResponse struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shop_id"`
	Name        string          `json:"name"`
	TableType   string          `json:"table_type"`
	Description string          `json:"description"`
	Fields      []FieldResponse `json:"fields"`
	SortOrder   int             `json:"sort_order"`
	IsActive    bool            `json:"is_active"`
	RowCount    int64           `json:"row_count"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableListFilter represents filter options for the table list
type TableListFilter struct {
	Search    string     `form:"search"`
	ShopID    *uuid.UUID `form:"shop_id"`
	TableType string     `form:"table_type"`
	IsActive  *bool      `form:"is_active"`
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// TreeNode is one node of the navigation tree
type TreeNode struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Type     string     `json:"type"` // platform | shop | table
	Children []TreeNode `json:"children,omitempty"`
}

// Schema editor requests. Indexes refer to the current schema order.

// AddFieldRequest appends a field to a table schema
type AddFieldRequest struct {
	Field FieldInput `json:"field" binding:"required"`
}

// UpdateFieldRequest replaces the field at an index
type UpdateFieldRequest struct {
	Index int        `json:"index" binding:"min=0"`
	Field FieldInput `json:"field" binding:"required"`
}

// RemoveFieldRequest deletes the field at an index
type RemoveFieldRequest struct {
	Index int `json:"index" binding:"min=0"`
}

// MoveFieldRequest moves the field at an index one step up or down
type MoveFieldRequest struct {
	Index     int    `json:"index" binding:"min=0"`
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// BatchSetTypeRequest assigns a type to the selected fields
type BatchSetTypeRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
	Type  string   `json:"type" binding:"required"`
}

// BatchSetRequiredRequest flips the required flag on the selected fields
type BatchSetRequiredRequest struct {
	Names    []string `json:"names" binding:"required,min=1"`
	Required bool     `json:"required"`
}

// BatchDeleteFieldsRequest removes the selected fields
type BatchDeleteFieldsRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
}

// InsertRowRequest adds a row to a data table
type InsertRowRequest struct {
	Data map[string]interface{} `json:"data" binding:"required"`
}

// RowResponse represents a table row in API responses
type RowResponse struct {
	ID        uuid.UUID              `json:"id"`
	Data      map[string]interface{} `json:"data"`
	Display   map[string]string      `json:"display"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// RowListRequest narrows a row listing
type RowListRequest struct {
	Filters  map[string]string `json:"filters"`
	SortBy   string            `json:"sort_by"`
	SortDesc bool              `json:"sort_desc"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// RowListResponse is a paginated row listing with derived display columns
type RowListResponse struct {
	Columns  []ColumnResponse `json:"columns"`
	Rows     []RowResponse    `json:"rows"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ColumnResponse is one derived display column
type ColumnResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Order    int    `json:"order"`
}

// QueryRowsRequest finds rows by table type and optional shop without a
// table ID, used by the generic query endpoint
type QueryRowsRequest struct {
	TableType string            `json:"table_type" binding:"required"`
	ShopID    *uuid.UUID        `json:"shop_id"`
	Filters   map[string]string `json:"filters"`
	SortBy    string            `json:"sort_by"`
	SortDesc  bool              `json:"sort_desc"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// ParseSampleResponse is the result of inferring a schema from an upload
type ParseSampleResponse struct {
	Fields  []FieldResponse     `json:"fields"`
	Preview []map[string]string `json:"preview"`
	Total   int                 `json:"total"`
}

// ToTableResponse converts a domain DataTable to TableResponse
func ToTableResponse(t *dataset.DataTable) TableResponse {
	return TableResponse{
		ID:          t.ID,
		ShopID:      t.ShopID,
		Name:        t.Name,
		TableType:   string(t.TableType),
		Description: t.Description,
		Fields:      ToFieldResponses(t.Fields),
		SortOrder:   t.SortOrder,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToFieldResponses converts a domain FieldList
func ToFieldResponses(fields dataset.FieldList) []FieldResponse {
	out := make([]FieldResponse, len(fields))
	for i, f := range fields {
		out[i] = FieldResponse{Name: f.Name, Type: string(f.Type), Required: f.Required, Order: f.Order}
	}
	return out
}

// ToColumnResponses converts derived display columns
func ToColumnResponses(cols []dataset.Column) []ColumnResponse {
	out := make([]ColumnResponse, len(cols))
	for i, c := range cols {
		out[i] = ColumnResponse{Name: c.Name, Type: string(c.Type), Required: c.Required, Order: c.Order}
	}
	return out
}

// toFieldList validates and converts request fields into a domain schema
func toFieldList(inputs []FieldInput) (dataset.FieldList, error) {
	fields := make(dataset.FieldList, 0, len(inputs))
	for i, in := range inputs {
		fieldType, err := dataset.ParseFieldType(in.Type)
		if err != nil {
			return nil, err
		}
		order := i
		if in.Order != nil {
			order = *in.Order
		}
		fields = append(fields, dataset.FieldConfig{
			Name:     in.Name,
			Type:     fieldType,
			Required: in.Required,
			Order:    order,
		})
	}
	return fields, nil
}

func toFieldConfig(in FieldInput) (dataset.FieldConfig, error) {
	fieldType, err := dataset.ParseFieldType(in.Type)
	if err != nil {
		return dataset.FieldConfig{}, err
	}
	return dataset.FieldConfig{Name: in.Name, Type: fieldType, Required: in.Required}, nil
}
