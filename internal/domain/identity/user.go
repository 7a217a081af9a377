package identity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopops/backend/internal/domain/shared"
)

// Role is the coarse permission level of a user
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// ParseRole parses a role tag
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleOperator:
		return RoleOperator, nil
	default:
		return "", shared.NewDomainError("INVALID_ROLE", fmt.Sprintf("Unknown role %q", s))
	}
}

// User is an operator of the console
type User struct {
	shared.BaseEntity
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	Name         string `gorm:"type:varchar(100);not null"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'operator'"`
	Avatar       string `gorm:"type:varchar(255)"`
	Email        string `gorm:"type:varchar(100)"`
	Phone        string `gorm:"type:varchar(30)"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user. The password hash is produced by the caller.
func NewUser(username, passwordHash, name string, role Role) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Display name cannot be empty")
	}
	if _, err := ParseRole(string(role)); err != nil {
		return nil, err
	}
	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     strings.ToLower(strings.TrimSpace(username)),
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
	}, nil
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpdateProfile updates display attributes
func (u *User) UpdateProfile(name, avatar, email, phone string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Display name cannot be empty")
	}
	u.Name = name
	u.Avatar = avatar
	u.Email = email
	u.Phone = phone
	u.UpdatedAt = time.Now()
	return nil
}

// ChangeRole switches the user's role
func (u *User) ChangeRole(role Role) error {
	parsed, err := ParseRole(string(role))
	if err != nil {
		return err
	}
	u.Role = parsed
	u.UpdatedAt = time.Now()
	return nil
}

// SetPasswordHash replaces the stored credential hash
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password hash is required")
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	return nil
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < 3 || len(username) > 50 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be between 3 and 50 characters")
	}
	return nil
}
