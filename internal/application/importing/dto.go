package importing

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/bulk"
)

// UploadInput carries one uploaded spreadsheet and its import options
type UploadInput struct {
	FileName string
	Size     int64
	Reader   io.Reader

	Target   bulk.ImportTarget
	Mode     string // append | overwrite
	Strategy string // skip | abort

	// ConfirmOverwrite must be set for overwrite mode; without it the
	// import performs no row writes.
	ConfirmOverwrite bool

	// TableID selects the data table for the data_table target
	TableID *uuid.UUID

	// ShopID scopes shop product and sales imports
	ShopID *uuid.UUID
}

// ImportResult is the outcome of one import run
type ImportResult struct {
	HistoryID    uuid.UUID       `json:"history_id"`
	Status       string          `json:"status"`
	TotalRows    int             `json:"total_rows"`
	ImportedRows int             `json:"imported_rows"`
	Errors       []bulk.RowError `json:"errors,omitempty"`
}

// HistoryResponse represents an import run in API responses
type HistoryResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      *uuid.UUID      `json:"user_id"`
	FileName    string          `json:"file_name"`
	FileSize    int64           `json:"file_size"`
	Target      string          `json:"target"`
	Mode        string          `json:"mode"`
	Strategy    string          `json:"strategy"`
	Status      string          `json:"status"`
	TotalRows   int             `json:"total_rows"`
	SuccessRows int             `json:"success_rows"`
	SuccessRate float64         `json:"success_rate"`
	Errors      []bulk.RowError `json:"errors,omitempty"`
	StartedAt   *time.Time      `json:"started_at"`
	CompletedAt *time.Time      `json:"completed_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

// HistoryListFilter represents filter options for the history list
type HistoryListFilter struct {
	UserID   *uuid.UUID `form:"user_id"`
	Target   string     `form:"target"`
	Status   string     `form:"status"`
	Search   string     `form:"search"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// CreateTemplateRequest represents a request to create an import template
type CreateTemplateRequest struct {
	Target      string   `json:"target" binding:"required"`
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"max=2000"`
	Columns     []string `json:"columns" binding:"required,min=1"`
	ExampleRow  []string `json:"example_row"`
}

// UpdateTemplateRequest represents a request to update an import template
type UpdateTemplateRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Columns     []string `json:"columns"`
	ExampleRow  []string `json:"example_row"`
}

// TemplateResponse represents an import template in API responses
type TemplateResponse struct {
	ID          uuid.UUID `json:"id"`
	Target      string    `json:"target"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Columns     []string  `json:"columns"`
	ExampleRow  []string  `json:"example_row"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToHistoryResponse converts a domain ImportHistory to HistoryResponse.
// The stored error list is decoded; an undecodable list is returned empty
// rather than failing the listing.
func ToHistoryResponse(h *bulk.ImportHistory) HistoryResponse {
	rowErrors, _ := h.RowErrors()
	return HistoryResponse{
		ID:          h.ID,
		UserID:      h.UserID,
		FileName:    h.FileName,
		FileSize:    h.FileSize,
		Target:      string(h.Target),
		Mode:        string(h.Mode),
		Strategy:    string(h.Strategy),
		Status:      string(h.Status),
		TotalRows:   h.TotalRows,
		SuccessRows: h.SuccessRows,
		SuccessRate: h.SuccessRate(),
		Errors:      rowErrors,
		StartedAt:   h.StartedAt,
		CompletedAt: h.CompletedAt,
		CreatedAt:   h.CreatedAt,
	}
}

// ToTemplateResponse converts a domain ImportTemplate to TemplateResponse
func ToTemplateResponse(t *bulk.ImportTemplate) TemplateResponse {
	return TemplateResponse{
		ID:          t.ID,
		Target:      string(t.Target),
		Name:        t.Name,
		Description: t.Description,
		Columns:     t.Columns,
		ExampleRow:  t.ExampleRow,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
