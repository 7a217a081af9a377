package channel

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopops/backend/internal/domain/shared"
)

// ShopStatus represents the operational status of a shop
type ShopStatus string

const (
	ShopStatusActive   ShopStatus = "active"
	ShopStatusInactive ShopStatus = "inactive"
)

// Shop represents a storefront on a sales platform
type Shop struct {
	shared.BaseEntity
	Name       string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_shops_platform_name,priority:2"`
	PlatformID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_shops_platform_name,priority:1"`
	Account    string     `gorm:"type:varchar(100)"`
	ManagerID  *uuid.UUID `gorm:"type:uuid;index"`
	Status     ShopStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Shop) TableName() string {
	return "shops"
}

// NewShop creates a new shop under a platform
func NewShop(platformID uuid.UUID, name, account string) (*Shop, error) {
	if platformID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PLATFORM", "Platform is required")
	}
	if err := validateShopName(name); err != nil {
		return nil, err
	}

	return &Shop{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		PlatformID: platformID,
		Account:    account,
		Status:     ShopStatusActive,
	}, nil
}

// Update updates the shop's basic information
func (s *Shop) Update(name, account string) error {
	if err := validateShopName(name); err != nil {
		return err
	}
	s.Name = name
	s.Account = account
	s.UpdatedAt = time.Now()
	return nil
}

// AssignManager sets the user responsible for this shop
func (s *Shop) AssignManager(managerID uuid.UUID) {
	if managerID == uuid.Nil {
		s.ManagerID = nil
	} else {
		s.ManagerID = &managerID
	}
	s.UpdatedAt = time.Now()
}

// Activate marks the shop as operating
func (s *Shop) Activate() error {
	if s.Status == ShopStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Shop is already active")
	}
	s.Status = ShopStatusActive
	s.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the shop as closed
func (s *Shop) Deactivate() error {
	if s.Status == ShopStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Shop is already inactive")
	}
	s.Status = ShopStatusInactive
	s.UpdatedAt = time.Now()
	return nil
}

// IsActive reports whether the shop is operating
func (s *Shop) IsActive() bool {
	return s.Status == ShopStatusActive
}

func validateShopName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Shop name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Shop name cannot exceed 100 characters")
	}
	return nil
}
