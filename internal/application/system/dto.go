package system

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/system"
)

// CreateMenuItemRequest represents a request to create a menu item
type CreateMenuItemRequest struct {
	Name         string     `json:"name" binding:"required,min=1,max=100"`
	Icon         string     `json:"icon" binding:"max=100"`
	Path         string     `json:"path" binding:"max=200"`
	Component    string     `json:"component" binding:"max=200"`
	ParentID     *uuid.UUID `json:"parent_id"`
	SortOrder    int        `json:"sort_order"`
	IsVisible    *bool      `json:"is_visible"`
	RequiredRole string     `json:"required_role" binding:"omitempty,oneof=admin operator"`
}

// UpdateMenuItemRequest represents a request to update a menu item
type UpdateMenuItemRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	Icon         *string `json:"icon" binding:"omitempty,max=100"`
	Path         *string `json:"path" binding:"omitempty,max=200"`
	Component    *string `json:"component" binding:"omitempty,max=200"`
	SortOrder    *int    `json:"sort_order"`
	IsVisible    *bool   `json:"is_visible"`
	RequiredRole *string `json:"required_role" binding:"omitempty,oneof=admin operator"`
}

// MenuItemResponse represents a menu item in API responses
type MenuItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Icon         string     `json:"icon"`
	Path         string     `json:"path"`
	Component    string     `json:"component"`
	ParentID     *uuid.UUID `json:"parent_id,omitempty"`
	SortOrder    int        `json:"sort_order"`
	IsVisible    bool       `json:"is_visible"`
	RequiredRole string     `json:"required_role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MenuTreeNode is a menu item with its children nested
type MenuTreeNode struct {
	MenuItemResponse
	Children []MenuTreeNode `json:"children"`
}

// CreateSettingRequest represents a request to create a setting
type CreateSettingRequest struct {
	Key         string `json:"key" binding:"required,min=1,max=100"`
	Value       string `json:"value"`
	ValueType   string `json:"value_type" binding:"required,oneof=string number boolean json"`
	Description string `json:"description" binding:"max=255"`
	GroupName   string `json:"group_name" binding:"max=50"`
	IsPublic    *bool  `json:"is_public"`
}

// UpdateSettingRequest represents a request to update a setting
type UpdateSettingRequest struct {
	Value       *string `json:"value"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	GroupName   *string `json:"group_name" binding:"omitempty,max=50"`
	IsPublic    *bool   `json:"is_public"`
}

// SettingResponse represents a setting in API responses. TypedValue holds
// the raw value interpreted according to the value type.
type SettingResponse struct {
	ID          uuid.UUID   `json:"id"`
	Key         string      `json:"key"`
	Value       string      `json:"value"`
	ValueType   string      `json:"value_type"`
	TypedValue  interface{} `json:"typed_value"`
	Description string      `json:"description"`
	GroupName   string      `json:"group_name"`
	IsPublic    bool        `json:"is_public"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OperationLogResponse represents an audit record in API responses
type OperationLogResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	ActionType string     `json:"action_type"`
	TableName  string     `json:"table_name"`
	RecordID   string     `json:"record_id"`
	OldValue   string     `json:"old_value"`
	NewValue   string     `json:"new_value"`
	CreatedAt  time.Time  `json:"created_at"`
}

// OperationLogListFilter represents filter options for the audit listing
type OperationLogListFilter struct {
	UserID     *uuid.UUID `form:"user_id"`
	ActionType string     `form:"action_type"`
	TableName  string     `form:"table_name"`
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToMenuItemResponse converts a domain MenuItem
func ToMenuItemResponse(m *system.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:           m.ID,
		Name:         m.Name,
		Icon:         m.Icon,
		Path:         m.Path,
		Component:    m.Component,
		ParentID:     m.ParentID,
		SortOrder:    m.SortOrder,
		IsVisible:    m.IsVisible,
		RequiredRole: m.RequiredRole,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToSettingResponse converts a domain Setting. A value that fails typed
// interpretation is returned with a nil typed value rather than an error.
func ToSettingResponse(s *system.Setting) SettingResponse {
	typed, err := s.TypedValue()
	if err != nil {
		typed = nil
	}
	return SettingResponse{
		ID:          s.ID,
		Key:         s.Key,
		Value:       s.Value,
		ValueType:   string(s.ValueType),
		TypedValue:  typed,
		Description: s.Description,
		GroupName:   s.GroupName,
		IsPublic:    s.IsPublic,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToOperationLogResponse converts a domain OperationLog
func ToOperationLogResponse(l *system.OperationLog) OperationLogResponse {
	return OperationLogResponse{
		ID:         l.ID,
		UserID:     l.UserID,
		ActionType: l.ActionType,
		TableName:  l.TableName_,
		RecordID:   l.RecordID,
		OldValue:   l.OldValue,
		NewValue:   l.NewValue,
		CreatedAt:  l.CreatedAt,
	}
}
