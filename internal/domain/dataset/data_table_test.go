package dataset

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableFixture(t *testing.T) *DataTable {
	t.Helper()
	table, err := NewDataTable(uuid.New(), "Listings", TableTypeProduct, FieldList{
		{Name: "name", Type: FieldTypeText, Required: true, Order: 0},
		{Name: "price", Type: FieldTypeNumber, Order: 1},
	})
	require.NoError(t, err)
	return table
}

func TestNewDataTable(t *testing.T) {
	t.Run("creates an active table with a normalized schema", func(t *testing.T) {
		table, err := NewDataTable(uuid.New(), "Listings", TableTypeProduct, FieldList{
			{Name: "price", Type: FieldTypeNumber, Order: 7},
			{Name: "name", Type: FieldTypeText, Required: true, Order: 2},
		})

		require.NoError(t, err)
		assert.True(t, table.IsActive)
		assert.Equal(t, []string{"name", "price"}, table.Fields.Names())
		assert.Equal(t, 0, table.Fields[0].Order)
		assert.Equal(t, 1, table.Fields[1].Order)
	})

	t.Run("requires a shop", func(t *testing.T) {
		_, err := NewDataTable(uuid.Nil, "Listings", TableTypeProduct, FieldList{{Name: "name", Type: FieldTypeText}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Shop")
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := NewDataTable(uuid.New(), "  ", TableTypeProduct, FieldList{{Name: "name", Type: FieldTypeText}})
		require.Error(t, err)
	})

	t.Run("rejects an unknown table type", func(t *testing.T) {
		_, err := NewDataTable(uuid.New(), "Listings", TableType("ledger"), FieldList{{Name: "name", Type: FieldTypeText}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ledger")
	})

	t.Run("rejects an empty schema", func(t *testing.T) {
		_, err := NewDataTable(uuid.New(), "Listings", TableTypeProduct, nil)
		require.Error(t, err)
	})

	t.Run("rejects a schema with an invalid field", func(t *testing.T) {
		_, err := NewDataTable(uuid.New(), "Listings", TableTypeProduct, FieldList{
			{Name: "name", Type: FieldType("uuid")},
		})
		require.Error(t, err)
	})
}

func TestParseTableType(t *testing.T) {
	for _, tag := range []string{"product", "sales", "inventory", "custom"} {
		parsed, err := ParseTableType(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, TableType(tag), parsed)
	}

	parsed, err := ParseTableType(" Product ")
	require.NoError(t, err)
	assert.Equal(t, TableTypeProduct, parsed)

	_, err = ParseTableType("ledger")
	require.Error(t, err)
}

func TestDataTableReplaceFields(t *testing.T) {
	t.Run("swaps the schema", func(t *testing.T) {
		table := tableFixture(t)

		err := table.ReplaceFields(FieldList{
			{Name: "sku", Type: FieldTypeText, Required: true, Order: 0},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"sku"}, table.Fields.Names())
	})

	t.Run("rejects an empty replacement", func(t *testing.T) {
		table := tableFixture(t)

		err := table.ReplaceFields(FieldList{})

		require.Error(t, err)
		assert.Equal(t, []string{"name", "price"}, table.Fields.Names())
	})
}

func TestDataTableValidateRow(t *testing.T) {
	t.Run("coerces known fields", func(t *testing.T) {
		table := tableFixture(t)

		coerced, err := table.ValidateRow(map[string]interface{}{
			"name":  "Red Mug",
			"price": "12.5",
		})

		require.NoError(t, err)
		assert.Equal(t, "Red Mug", coerced["name"])
		assert.Equal(t, 12.5, coerced["price"])
	})

	t.Run("missing required field", func(t *testing.T) {
		table := tableFixture(t)

		_, err := table.ValidateRow(map[string]interface{}{"price": 5})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("a blank string does not satisfy a required field", func(t *testing.T) {
		table := tableFixture(t)

		_, err := table.ValidateRow(map[string]interface{}{"name": "   "})

		require.Error(t, err)
	})

	t.Run("a value that cannot coerce is rejected", func(t *testing.T) {
		table := tableFixture(t)

		_, err := table.ValidateRow(map[string]interface{}{"name": "Red Mug", "price": "cheap"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("unknown keys pass through untouched", func(t *testing.T) {
		table := tableFixture(t)

		coerced, err := table.ValidateRow(map[string]interface{}{"name": "Red Mug", "note": "fragile"})

		require.NoError(t, err)
		assert.Equal(t, "fragile", coerced["note"])
	})
}

func TestDataTableVisibility(t *testing.T) {
	table := tableFixture(t)

	table.Deactivate()
	assert.False(t, table.IsActive)

	table.Activate()
	assert.True(t, table.IsActive)
}
