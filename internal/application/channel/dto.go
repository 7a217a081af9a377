package channel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/channel"
)

// CreatePlatformRequest represents a request to create a platform
type CreatePlatformRequest struct {
	Name        string                 `json:"name" binding:"required,min=1,max=100"`
	Code        string                 `json:"code" binding:"required,min=1,max=50"`
	Icon        string                 `json:"icon" binding:"max=255"`
	Description string                 `json:"description" binding:"max=2000"`
	SortOrder   *int                   `json:"sort_order"`
	Config      map[string]interface{} `json:"config"`
}

// UpdatePlatformRequest represents a request to update a platform
type UpdatePlatformRequest struct {
	Name        *string                `json:"name" binding:"omitempty,min=1,max=100"`
	Icon        *string                `json:"icon" binding:"omitempty,max=255"`
	Description *string                `json:"description" binding:"omitempty,max=2000"`
	SortOrder   *int                   `json:"sort_order"`
	Config      map[string]interface{} `json:"config"`
}

// PlatformResponse represents a platform in API responses
type PlatformResponse struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Code        string                 `json:"code"`
	Icon        string                 `json:"icon"`
	Description string                 `json:"description"`
	IsActive    bool                   `json:"is_active"`
	SortOrder   int                    `json:"sort_order"`
	Config      map[string]interface{} `json:"config"`
	ShopCount   int64                  `json:"shop_count"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// PlatformListFilter represents filter options for the platform list
type PlatformListFilter struct {
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CreateShopRequest represents a request to create a shop
type CreateShopRequest struct {
	Name       string     `json:"name" binding:"required,min=1,max=100"`
	PlatformID uuid.UUID  `json:"platform_id" binding:"required"`
	Account    string     `json:"account" binding:"max=100"`
	ManagerID  *uuid.UUID `json:"manager_id"`
}

// UpdateShopRequest represents a request to update a shop
type UpdateShopRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=1,max=100"`
	Account   *string    `json:"account" binding:"omitempty,max=100"`
	ManagerID *uuid.UUID `json:"manager_id"`
}

// ShopResponse represents a shop in API responses
type ShopResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	PlatformID uuid.UUID  `json:"platform_id"`
	Account    string     `json:"account"`
	ManagerID  *uuid.UUID `json:"manager_id"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ShopListFilter represents filter options for the shop list
type ShopListFilter struct {
	Search     string     `form:"search"`
	PlatformID *uuid.UUID `form:"platform_id"`
	Status     string     `form:"status" binding:"omitempty,oneof=active inactive"`
	ManagerID  *uuid.UUID `form:"manager_id"`
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPlatformResponse converts a domain Platform to PlatformResponse
func ToPlatformResponse(p *channel.Platform) PlatformResponse {
	return PlatformResponse{
		ID:          p.ID,
		Name:        p.Name,
		Code:        p.Code,
		Icon:        p.Icon,
		Description: p.Description,
		IsActive:    p.IsActive,
		SortOrder:   p.SortOrder,
		Config:      p.Config,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToShopResponse converts a domain Shop to ShopResponse
func ToShopResponse(s *channel.Shop) ShopResponse {
	return ShopResponse{
		ID:         s.ID,
		Name:       s.Name,
		PlatformID: s.PlatformID,
		Account:    s.Account,
		ManagerID:  s.ManagerID,
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ToShopResponses converts a slice of domain Shops
func ToShopResponses(shops []channel.Shop) []ShopResponse {
	out := make([]ShopResponse, len(shops))
	for i := range shops {
		out[i] = ToShopResponse(&shops[i])
	}
	return out
}
