package system

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
)

// MenuItem is a navigation entry. Items form a tree via ParentID.
type MenuItem struct {
	shared.BaseEntity
	Name         string     `gorm:"type:varchar(100);not null"`
	Icon         string     `gorm:"type:varchar(100)"`
	Path         string     `gorm:"type:varchar(200)"`
	ParentID     *uuid.UUID `gorm:"type:uuid;index"`
	SortOrder    int        `gorm:"not null;default:0"`
	IsVisible    bool       `gorm:"not null;default:true"`
	RequiredRole string     `gorm:"type:varchar(20)"`
	Component    string     `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (MenuItem) TableName() string {
	return "menu_items"
}

// NewMenuItem creates a menu entry
func NewMenuItem(name, path string, parentID *uuid.UUID) (*MenuItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Menu name cannot be empty")
	}
	return &MenuItem{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Path:       path,
		ParentID:   parentID,
		IsVisible:  true,
	}, nil
}

// Update updates display attributes
func (m *MenuItem) Update(name, icon, path, component, requiredRole string, sortOrder int, visible bool) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Menu name cannot be empty")
	}
	m.Name = name
	m.Icon = icon
	m.Path = path
	m.Component = component
	m.RequiredRole = requiredRole
	m.SortOrder = sortOrder
	m.IsVisible = visible
	m.UpdatedAt = time.Now()
	return nil
}

// VisibleTo reports whether a role may see this entry
func (m *MenuItem) VisibleTo(role string) bool {
	if !m.IsVisible {
		return false
	}
	if m.RequiredRole == "" {
		return true
	}
	return m.RequiredRole == role
}
