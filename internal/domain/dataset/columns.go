package dataset

import "sort"

// Column is a derived display column
type Column struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Order    int       `json:"order"`
}

// DeriveColumns produces the display columns for a table. With a schema the
// columns mirror it in order. Without one (legacy tables imported before
// schemas existed) the keys of the first row become text columns, sorted for
// a stable layout. Pure function, safe to call repeatedly.
func DeriveColumns(fields FieldList, rows []map[string]interface{}) []Column {
	if len(fields) > 0 {
		cols := make([]Column, len(fields))
		for i, f := range clone(fields).normalize() {
			cols[i] = Column{Name: f.Name, Type: f.Type, Required: f.Required, Order: f.Order}
		}
		return cols
	}

	if len(rows) == 0 {
		return []Column{}
	}

	keys := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cols := make([]Column, len(keys))
	for i, k := range keys {
		cols[i] = Column{Name: k, Type: FieldTypeText, Order: i}
	}
	return cols
}

// RenderRow formats one row for display using the derived columns.
// Missing values render as the null placeholder.
func RenderRow(cols []Column, data map[string]interface{}) (map[string]string, error) {
	out := make(map[string]string, len(cols))
	for _, col := range cols {
		value, ok := data[col.Name]
		if !ok {
			out[col.Name] = NullDisplay
			continue
		}
		formatted, err := col.Type.Format(value)
		if err != nil {
			return nil, err
		}
		out[col.Name] = formatted
	}
	return out, nil
}
