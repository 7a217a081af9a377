package dataset

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopops/backend/internal/domain/shared"
)

// MaxFieldNameLength bounds user-defined field names
const MaxFieldNameLength = 50

// FieldConfig describes one column of a data table. Order is an explicit,
// persisted position; the schema keeps it dense (0..n-1) after every edit.
type FieldConfig struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Order    int       `json:"order"`
}

// Validate checks the field configuration
func (f FieldConfig) Validate() error {
	if err := validateFieldName(f.Name); err != nil {
		return err
	}
	if !f.Type.Valid() {
		return shared.NewDomainError("UNKNOWN_FIELD_TYPE", fmt.Sprintf("Unknown field type %q", string(f.Type)))
	}
	return nil
}

func validateFieldName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_FIELD_NAME", "Field name cannot be empty")
	}
	if len(name) > MaxFieldNameLength {
		return shared.NewDomainError("INVALID_FIELD_NAME", fmt.Sprintf("Field name cannot exceed %d characters", MaxFieldNameLength))
	}
	return nil
}

// FieldList is an ordered field schema persisted as a JSON column
type FieldList []FieldConfig

// Value implements driver.Valuer
func (l FieldList) Value() (driver.Value, error) {
	if l == nil {
		l = FieldList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal field list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *FieldList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for field list: %T", value)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// Names returns the field names in schema order
func (l FieldList) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name
	}
	return names
}

// FindByName returns the field with the given name, if present
func (l FieldList) FindByName(name string) (FieldConfig, bool) {
	for _, f := range l {
		if f.Name == name {
			return f, true
		}
	}
	return FieldConfig{}, false
}

// RequiredNames returns the names of required fields in schema order
func (l FieldList) RequiredNames() []string {
	var names []string
	for _, f := range l {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// normalize sorts by Order and reassigns dense positions 0..n-1
func (l FieldList) normalize() FieldList {
	sort.SliceStable(l, func(i, j int) bool { return l[i].Order < l[j].Order })
	for i := range l {
		l[i].Order = i
	}
	return l
}

// Add appends a validated field at the end of the schema
func (l FieldList) Add(field FieldConfig) (FieldList, error) {
	if err := field.Validate(); err != nil {
		return l, err
	}
	if _, exists := l.FindByName(field.Name); exists {
		return l, shared.NewDomainError("DUPLICATE_FIELD", fmt.Sprintf("Field %q already exists", field.Name))
	}
	field.Order = len(l)
	return append(l, field).normalize(), nil
}

// Update replaces the field at the given index, keeping its position
func (l FieldList) Update(index int, field FieldConfig) (FieldList, error) {
	if index < 0 || index >= len(l) {
		return l, shared.NewDomainError("FIELD_OUT_OF_RANGE", "Field index out of range")
	}
	if err := field.Validate(); err != nil {
		return l, err
	}
	if other, exists := l.FindByName(field.Name); exists && other.Order != l[index].Order {
		return l, shared.NewDomainError("DUPLICATE_FIELD", fmt.Sprintf("Field %q already exists", field.Name))
	}
	field.Order = l[index].Order
	out := clone(l)
	out[index] = field
	return out.normalize(), nil
}

// Remove deletes the field at the given index
func (l FieldList) Remove(index int) (FieldList, error) {
	if index < 0 || index >= len(l) {
		return l, shared.NewDomainError("FIELD_OUT_OF_RANGE", "Field index out of range")
	}
	out := append(clone(l)[:index], l[index+1:]...)
	return out.normalize(), nil
}

// MoveUp swaps the field with its predecessor. At the top it is a no-op.
func (l FieldList) MoveUp(index int) (FieldList, error) {
	if index < 0 || index >= len(l) {
		return l, shared.NewDomainError("FIELD_OUT_OF_RANGE", "Field index out of range")
	}
	if index == 0 {
		return l, nil
	}
	out := clone(l)
	out[index-1].Order, out[index].Order = out[index].Order, out[index-1].Order
	return out.normalize(), nil
}

// MoveDown swaps the field with its successor. At the bottom it is a no-op.
func (l FieldList) MoveDown(index int) (FieldList, error) {
	if index < 0 || index >= len(l) {
		return l, shared.NewDomainError("FIELD_OUT_OF_RANGE", "Field index out of range")
	}
	if index == len(l)-1 {
		return l, nil
	}
	out := clone(l)
	out[index].Order, out[index+1].Order = out[index+1].Order, out[index].Order
	return out.normalize(), nil
}

// BatchSetType assigns a type to every field named in the selection
func (l FieldList) BatchSetType(names []string, fieldType FieldType) (FieldList, error) {
	if !fieldType.Valid() {
		return l, shared.NewDomainError("UNKNOWN_FIELD_TYPE", fmt.Sprintf("Unknown field type %q", string(fieldType)))
	}
	out := clone(l)
	selected := toSet(names)
	for i := range out {
		if selected[out[i].Name] {
			out[i].Type = fieldType
		}
	}
	return out.normalize(), nil
}

// BatchSetRequired flips the required flag for every field in the selection
func (l FieldList) BatchSetRequired(names []string, required bool) FieldList {
	out := clone(l)
	selected := toSet(names)
	for i := range out {
		if selected[out[i].Name] {
			out[i].Required = required
		}
	}
	return out.normalize()
}

// BatchDelete removes every field named in the selection. Callers are
// expected to drop their selection afterwards; the removed names no longer
// resolve against the schema.
func (l FieldList) BatchDelete(names []string) FieldList {
	selected := toSet(names)
	out := make(FieldList, 0, len(l))
	for _, f := range l {
		if !selected[f.Name] {
			out = append(out, f)
		}
	}
	return out.normalize()
}

func clone(l FieldList) FieldList {
	out := make(FieldList, len(l))
	copy(out, l)
	return out
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
