package spreadsheet

import (
	"strconv"
	"strings"

	"github.com/shopops/backend/internal/domain/dataset"
)

// PreviewRowCount is how many rows a schema inference returns as preview
const PreviewRowCount = 5

// Inference is the result of sampling an uploaded file
type Inference struct {
	Fields  dataset.FieldList
	Preview []map[string]string
	Total   int
}

// InferSchema derives a field schema from parsed rows. Per column the
// narrower types are tried first: number, then date, then boolean, falling
// back to text. Columns start out optional; marking fields required is a
// schema-editor decision.
func InferSchema(headers []string, rows []*Row) *Inference {
	fields := make(dataset.FieldList, 0, len(headers))
	for order, header := range headers {
		fields = append(fields, dataset.FieldConfig{
			Name:  header,
			Type:  inferColumnType(header, rows),
			Order: order,
		})
	}

	previewLen := len(rows)
	if previewLen > PreviewRowCount {
		previewLen = PreviewRowCount
	}
	preview := make([]map[string]string, 0, previewLen)
	for _, row := range rows[:previewLen] {
		preview = append(preview, row.Data)
	}

	return &Inference{Fields: fields, Preview: preview, Total: len(rows)}
}

func inferColumnType(header string, rows []*Row) dataset.FieldType {
	sampled := 0
	numbers, dates, booleans := 0, 0, 0

	for _, row := range rows {
		value := strings.TrimSpace(row.Get(header))
		if value == "" {
			continue
		}
		sampled++
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			numbers++
			continue
		}
		if _, ok := dataset.ParseDate(value); ok {
			dates++
			continue
		}
		if isBooleanLiteral(value) {
			booleans++
		}
	}

	if sampled == 0 {
		return dataset.FieldTypeText
	}
	switch {
	case numbers == sampled:
		return dataset.FieldTypeNumber
	case dates == sampled:
		return dataset.FieldTypeDate
	case booleans == sampled:
		return dataset.FieldTypeBoolean
	default:
		return dataset.FieldTypeText
	}
}

func isBooleanLiteral(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false", "yes", "no", "y", "n":
		return true
	}
	return false
}
