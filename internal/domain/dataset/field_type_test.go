package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldType(t *testing.T) {
	t.Run("accepts every member of the closed set", func(t *testing.T) {
		for _, tag := range []string{"text", "number", "date", "boolean"} {
			parsed, err := ParseFieldType(tag)
			require.NoError(t, err)
			assert.Equal(t, FieldType(tag), parsed)
		}
	})

	t.Run("normalizes case and surrounding space", func(t *testing.T) {
		parsed, err := ParseFieldType("  Number ")
		require.NoError(t, err)
		assert.Equal(t, FieldTypeNumber, parsed)
	})

	t.Run("rejects an unknown tag", func(t *testing.T) {
		_, err := ParseFieldType("uuid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "uuid")
	})
}

func TestFieldTypeCoerce(t *testing.T) {
	t.Run("number accepts numeric strings and numbers", func(t *testing.T) {
		v, err := FieldTypeNumber.Coerce("12.5")
		require.NoError(t, err)
		assert.Equal(t, 12.5, v)

		v, err = FieldTypeNumber.Coerce(7)
		require.NoError(t, err)
		assert.Equal(t, float64(7), v)
	})

	t.Run("number rejects words", func(t *testing.T) {
		_, err := FieldTypeNumber.Coerce("twelve")
		require.Error(t, err)
	})

	t.Run("date canonicalizes every accepted layout", func(t *testing.T) {
		for _, input := range []string{"2026-08-01", "2026/08/01", "08/01/2026"} {
			v, err := FieldTypeDate.Coerce(input)
			require.NoError(t, err, input)
			assert.Equal(t, "2026-08-01", v)
		}
	})

	t.Run("boolean accepts the usual spellings", func(t *testing.T) {
		for _, input := range []string{"true", "1", "yes", "Y"} {
			v, err := FieldTypeBoolean.Coerce(input)
			require.NoError(t, err, input)
			assert.Equal(t, true, v)
		}
		v, err := FieldTypeBoolean.Coerce("no")
		require.NoError(t, err)
		assert.Equal(t, false, v)
	})

	t.Run("nil passes through untyped", func(t *testing.T) {
		v, err := FieldTypeNumber.Coerce(nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestFieldTypeFormat(t *testing.T) {
	t.Run("numbers are grouped for display", func(t *testing.T) {
		out, err := FieldTypeNumber.Format(float64(1234567.5))
		require.NoError(t, err)
		assert.Equal(t, "1,234,567.5", out)
	})

	t.Run("an already grouped number passes through", func(t *testing.T) {
		out, err := FieldTypeNumber.Format("1,234.5")
		require.NoError(t, err)
		assert.Equal(t, "1,234.5", out)
	})

	t.Run("dates render in canonical form", func(t *testing.T) {
		out, err := FieldTypeDate.Format(time.Date(2026, 8, 1, 13, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "2026-08-01", out)
	})

	t.Run("booleans render as yes and no", func(t *testing.T) {
		out, err := FieldTypeBoolean.Format(true)
		require.NoError(t, err)
		assert.Equal(t, "yes", out)
	})

	t.Run("an unknown tag is an error, not a text fallback", func(t *testing.T) {
		_, err := FieldType("uuid").Format("x")
		require.Error(t, err)
	})

	t.Run("formatting a formatted value yields the same string", func(t *testing.T) {
		cases := map[FieldType]interface{}{
			FieldTypeText:    "Red Mug",
			FieldTypeNumber:  float64(1234567.5),
			FieldTypeDate:    "2026/08/01",
			FieldTypeBoolean: true,
		}
		for fieldType, value := range cases {
			once, err := fieldType.Format(value)
			require.NoError(t, err, string(fieldType))
			twice, err := fieldType.Format(once)
			require.NoError(t, err, string(fieldType))
			assert.Equal(t, once, twice, string(fieldType))
		}
	})
}

func TestDeriveColumns(t *testing.T) {
	t.Run("mirrors the schema when one exists", func(t *testing.T) {
		fields := FieldList{
			{Name: "price", Type: FieldTypeNumber, Order: 1},
			{Name: "name", Type: FieldTypeText, Required: true, Order: 0},
		}
		cols := DeriveColumns(fields, nil)

		require.Len(t, cols, 2)
		assert.Equal(t, "name", cols[0].Name)
		assert.Equal(t, "price", cols[1].Name)
	})

	t.Run("falls back to sorted row keys without a schema", func(t *testing.T) {
		cols := DeriveColumns(nil, []map[string]interface{}{
			{"zeta": 1, "alpha": 2},
		})

		require.Len(t, cols, 2)
		assert.Equal(t, "alpha", cols[0].Name)
		assert.Equal(t, FieldTypeText, cols[0].Type)
	})

	t.Run("derivation is idempotent", func(t *testing.T) {
		fields := FieldList{
			{Name: "price", Type: FieldTypeNumber, Order: 1},
			{Name: "name", Type: FieldTypeText, Required: true, Order: 0},
		}
		rows := []map[string]interface{}{{"name": "Red Mug"}}
		original := append(FieldList(nil), fields...)

		once := DeriveColumns(fields, rows)
		twice := DeriveColumns(fields, rows)

		assert.Equal(t, once, twice)
		assert.Equal(t, original, fields, "inputs are untouched")
	})
}

func TestRenderRow(t *testing.T) {
	cols := []Column{
		{Name: "name", Type: FieldTypeText},
		{Name: "price", Type: FieldTypeNumber},
	}

	out, err := RenderRow(cols, map[string]interface{}{"name": "Red Mug"})

	require.NoError(t, err)
	assert.Equal(t, "Red Mug", out["name"])
	assert.Equal(t, NullDisplay, out["price"])
}
