package worksheet

import (
	"time"

	"github.com/google/uuid"
	catalogapp "github.com/shopops/backend/internal/application/catalog"
	"github.com/shopops/backend/internal/domain/worksheet"
)

// CreateWorksheetRequest represents a request to create a worksheet
type CreateWorksheetRequest struct {
	Name   string                 `json:"name" binding:"required,min=1,max=100"`
	Config map[string]interface{} `json:"config"`
}

// UpdateWorksheetRequest represents a request to update a worksheet
type UpdateWorksheetRequest struct {
	Name   *string                `json:"name" binding:"omitempty,min=1,max=100"`
	Config map[string]interface{} `json:"config"`
}

// WorksheetResponse represents a worksheet in API responses
type WorksheetResponse struct {
	ID        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Config    map[string]interface{} `json:"config"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// QueryDataRequest filters the shop products shown inside a worksheet
type QueryDataRequest struct {
	ShopID   *uuid.UUID `form:"shop_id"`
	Status   string     `form:"status" binding:"omitempty,oneof=on_shelf off_shelf"`
	Keyword  string     `form:"keyword"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// QueryDataResponse carries the worksheet descriptor next to the page of
// enriched shop products it selects
type QueryDataResponse struct {
	Worksheet WorksheetResponse                `json:"worksheet"`
	Items     []catalogapp.ShopProductResponse `json:"items"`
	Total     int64                            `json:"total"`
	Page      int                              `json:"page"`
	PageSize  int                              `json:"page_size"`
}

// ToWorksheetResponse converts a domain Worksheet
func ToWorksheetResponse(w *worksheet.Worksheet) WorksheetResponse {
	return WorksheetResponse{
		ID:        w.ID,
		Name:      w.Name,
		Config:    w.Config,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
