package system

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopops/backend/internal/domain/shared"
)

// ValueType declares how a setting's raw value is interpreted
type ValueType string

const (
	ValueTypeString  ValueType = "string"
	ValueTypeNumber  ValueType = "number"
	ValueTypeBoolean ValueType = "boolean"
	ValueTypeJSON    ValueType = "json"
)

// ParseValueType parses a setting value type
func ParseValueType(s string) (ValueType, error) {
	switch ValueType(strings.ToLower(strings.TrimSpace(s))) {
	case ValueTypeString:
		return ValueTypeString, nil
	case ValueTypeNumber:
		return ValueTypeNumber, nil
	case ValueTypeBoolean:
		return ValueTypeBoolean, nil
	case ValueTypeJSON:
		return ValueTypeJSON, nil
	default:
		return "", shared.NewDomainError("INVALID_VALUE_TYPE", fmt.Sprintf("Unknown value type %q", s))
	}
}

// Setting is a keyed configuration value. Public settings are readable
// without admin rights.
type Setting struct {
	shared.BaseEntity
	Key         string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Value       string    `gorm:"type:text"`
	ValueType   ValueType `gorm:"type:varchar(20);not null;default:'string'"`
	Description string    `gorm:"type:varchar(255)"`
	GroupName   string    `gorm:"type:varchar(50);index"`
	IsPublic    bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Setting) TableName() string {
	return "settings"
}

// NewSetting creates a setting
func NewSetting(key, value string, valueType ValueType) (*Setting, error) {
	if strings.TrimSpace(key) == "" {
		return nil, shared.NewDomainError("INVALID_KEY", "Setting key cannot be empty")
	}
	parsed, err := ParseValueType(string(valueType))
	if err != nil {
		return nil, err
	}
	s := &Setting{
		BaseEntity: shared.NewBaseEntity(),
		Key:        key,
		Value:      value,
		ValueType:  parsed,
	}
	if err := s.checkValue(); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateValue replaces the raw value, revalidating against the value type
func (s *Setting) UpdateValue(value string) error {
	old := s.Value
	s.Value = value
	if err := s.checkValue(); err != nil {
		s.Value = old
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// TypedValue interprets the raw value according to ValueType
func (s *Setting) TypedValue() (interface{}, error) {
	switch s.ValueType {
	case ValueTypeString:
		return s.Value, nil
	case ValueTypeNumber:
		f, err := strconv.ParseFloat(s.Value, 64)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_VALUE", fmt.Sprintf("Setting %q is not a number", s.Key))
		}
		return f, nil
	case ValueTypeBoolean:
		b, err := strconv.ParseBool(s.Value)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_VALUE", fmt.Sprintf("Setting %q is not a boolean", s.Key))
		}
		return b, nil
	case ValueTypeJSON:
		var v interface{}
		if err := json.Unmarshal([]byte(s.Value), &v); err != nil {
			return nil, shared.NewDomainError("INVALID_VALUE", fmt.Sprintf("Setting %q is not valid JSON", s.Key))
		}
		return v, nil
	default:
		return nil, shared.NewDomainError("INVALID_VALUE_TYPE", fmt.Sprintf("Unknown value type %q", string(s.ValueType)))
	}
}

func (s *Setting) checkValue() error {
	if s.Value == "" {
		return nil
	}
	_, err := s.TypedValue()
	return err
}
