package dataset

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopops/backend/internal/domain/shared"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FieldType is the closed set of value types a data-table field can hold.
// Every consumer switches over the full set; an unknown tag is an error,
// never a silent text fallback.
type FieldType string

const (
	FieldTypeText    FieldType = "text"
	FieldTypeNumber  FieldType = "number"
	FieldTypeDate    FieldType = "date"
	FieldTypeBoolean FieldType = "boolean"
)

// NullDisplay is the placeholder rendered for missing values
const NullDisplay = "-"

// dateLayouts are the accepted input layouts, tried in order
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

var numberPrinter = message.NewPrinter(language.English)

// ParseFieldType parses a field type tag, rejecting unknown tags
func ParseFieldType(s string) (FieldType, error) {
	switch FieldType(strings.ToLower(strings.TrimSpace(s))) {
	case FieldTypeText:
		return FieldTypeText, nil
	case FieldTypeNumber:
		return FieldTypeNumber, nil
	case FieldTypeDate:
		return FieldTypeDate, nil
	case FieldTypeBoolean:
		return FieldTypeBoolean, nil
	default:
		return "", shared.NewDomainError("UNKNOWN_FIELD_TYPE", fmt.Sprintf("Unknown field type %q", s))
	}
}

// Valid reports whether the tag is a member of the closed set
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeBoolean:
		return true
	}
	return false
}

// Format renders a raw cell value for display. The rendering is pure and
// idempotent: formatting an already formatted string yields the same string.
//
//	nil           -> "-"
//	text          -> string as-is, nested structures as compact JSON
//	number        -> grouped per locale ("1,234.5"), unparseable input as-is
//	date          -> "2006-01-02" when a known layout matches, else as-is
//	boolean       -> "yes"/"no", unrecognized input as-is
func (t FieldType) Format(value interface{}) (string, error) {
	if value == nil {
		return NullDisplay, nil
	}

	switch t {
	case FieldTypeText:
		return formatText(value), nil
	case FieldTypeNumber:
		return formatNumber(value), nil
	case FieldTypeDate:
		return formatDate(value), nil
	case FieldTypeBoolean:
		return formatBoolean(value), nil
	default:
		return "", shared.NewDomainError("UNKNOWN_FIELD_TYPE", fmt.Sprintf("Unknown field type %q", string(t)))
	}
}

func formatText(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]interface{}, []interface{}:
		return compactJSON(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatNumber(value interface{}) string {
	switch v := value.(type) {
	case float64:
		return numberPrinter.Sprintf("%v", number.Decimal(v))
	case float32:
		return numberPrinter.Sprintf("%v", number.Decimal(float64(v)))
	case int:
		return numberPrinter.Sprintf("%v", number.Decimal(v))
	case int64:
		return numberPrinter.Sprintf("%v", number.Decimal(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return numberPrinter.Sprintf("%v", number.Decimal(f))
		}
		return v.String()
	case string:
		// A string that still parses as a plain number gets grouped; a
		// previously grouped value parses no more and passes through.
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return numberPrinter.Sprintf("%v", number.Decimal(f))
		}
		return v
	case map[string]interface{}, []interface{}:
		return compactJSON(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatDate(value interface{}) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format("2006-01-02")
	case string:
		if parsed, ok := ParseDate(v); ok {
			return parsed.Format("2006-01-02")
		}
		return v
	case map[string]interface{}, []interface{}:
		return compactJSON(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatBoolean(value interface{}) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "y":
			return "yes"
		case "false", "0", "no", "n":
			return "no"
		}
		return v
	case float64:
		if v == 0 {
			return "no"
		}
		return "yes"
	case map[string]interface{}, []interface{}:
		return compactJSON(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func compactJSON(value interface{}) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(data)
}

// ParseDate tries the accepted date layouts in order
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Coerce converts a raw cell value into the canonical Go value stored for
// this field type. A coercion failure is a row-level validation error.
func (t FieldType) Coerce(value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}

	switch t {
	case FieldTypeText:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return fmt.Sprintf("%v", value), nil
	case FieldTypeNumber:
		switch v := value.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil, shared.NewDomainError("INVALID_NUMBER", fmt.Sprintf("Value %q is not a number", v.String()))
			}
			return f, nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, shared.NewDomainError("INVALID_NUMBER", fmt.Sprintf("Value %q is not a number", v))
			}
			return f, nil
		default:
			return nil, shared.NewDomainError("INVALID_NUMBER", fmt.Sprintf("Value %v is not a number", value))
		}
	case FieldTypeDate:
		switch v := value.(type) {
		case time.Time:
			return v.Format("2006-01-02"), nil
		case string:
			parsed, ok := ParseDate(v)
			if !ok {
				return nil, shared.NewDomainError("INVALID_DATE", fmt.Sprintf("Value %q is not a recognized date", v))
			}
			return parsed.Format("2006-01-02"), nil
		default:
			return nil, shared.NewDomainError("INVALID_DATE", fmt.Sprintf("Value %v is not a recognized date", value))
		}
	case FieldTypeBoolean:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true", "1", "yes", "y":
				return true, nil
			case "false", "0", "no", "n":
				return false, nil
			}
			return nil, shared.NewDomainError("INVALID_BOOLEAN", fmt.Sprintf("Value %q is not a boolean", v))
		case float64:
			return v != 0, nil
		default:
			return nil, shared.NewDomainError("INVALID_BOOLEAN", fmt.Sprintf("Value %v is not a boolean", value))
		}
	default:
		return nil, shared.NewDomainError("UNKNOWN_FIELD_TYPE", fmt.Sprintf("Unknown field type %q", string(t)))
	}
}
