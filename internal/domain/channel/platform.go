package channel

import (
	"strings"
	"time"

	"github.com/shopops/backend/internal/domain/shared"
)

// Platform represents a sales platform (marketplace) that shops belong to
type Platform struct {
	shared.BaseEntity
	Name        string         `gorm:"type:varchar(100);not null"`
	Code        string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	Icon        string         `gorm:"type:varchar(255)"`
	Description string         `gorm:"type:text"`
	IsActive    bool           `gorm:"not null;default:true"`
	SortOrder   int            `gorm:"not null;default:0"`
	Config      shared.JSONMap `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Platform) TableName() string {
	return "platforms"
}

// NewPlatform creates a new platform
func NewPlatform(name, code string) (*Platform, error) {
	if err := validatePlatformName(name); err != nil {
		return nil, err
	}
	if err := validatePlatformCode(code); err != nil {
		return nil, err
	}

	return &Platform{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Code:       strings.ToLower(code),
		IsActive:   true,
	}, nil
}

// Update updates the platform's basic information
func (p *Platform) Update(name, icon, description string) error {
	if err := validatePlatformName(name); err != nil {
		return err
	}

	p.Name = name
	p.Icon = icon
	p.Description = description
	p.UpdatedAt = time.Now()

	return nil
}

// SetSortOrder sets the display order of the platform
func (p *Platform) SetSortOrder(order int) {
	p.SortOrder = order
	p.UpdatedAt = time.Now()
}

// SetConfig replaces the platform-specific configuration
func (p *Platform) SetConfig(config map[string]interface{}) {
	p.Config = config
	p.UpdatedAt = time.Now()
}

// Activate enables the platform
func (p *Platform) Activate() error {
	if p.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Platform is already active")
	}
	p.IsActive = true
	p.UpdatedAt = time.Now()
	return nil
}

// Deactivate disables the platform. Inactive platforms are hidden from the
// navigation tree but their shops and data are kept.
func (p *Platform) Deactivate() error {
	if !p.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Platform is already inactive")
	}
	p.IsActive = false
	p.UpdatedAt = time.Now()
	return nil
}

func validatePlatformName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Platform name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Platform name cannot exceed 100 characters")
	}
	return nil
}

func validatePlatformCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return shared.NewDomainError("INVALID_CODE", "Platform code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Platform code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !isCodeRune(r) {
			return shared.NewDomainError("INVALID_CODE", "Platform code may only contain letters, digits, hyphens and underscores")
		}
	}
	return nil
}

func isCodeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}
