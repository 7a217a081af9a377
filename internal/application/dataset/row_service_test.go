package dataset

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopops/backend/internal/domain/dataset"
	"github.com/shopops/backend/internal/domain/shared"
)

func newRowServiceFixture() (*RowService, *MockDataTableRepository, *MockTableRowRepository) {
	tableRepo := new(MockDataTableRepository)
	rowRepo := new(MockTableRowRepository)
	return NewRowService(tableRepo, rowRepo, nil), tableRepo, rowRepo
}

func TestRowServiceInsert(t *testing.T) {
	ctx := context.Background()

	t.Run("coerces values against the schema", func(t *testing.T) {
		service, tableRepo, rowRepo := newRowServiceFixture()

		table := productTable(t, uuid.New())
		tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)
		rowRepo.On("Save", ctx, mock.AnythingOfType("*dataset.TableRow")).Return(nil)

		resp, err := service.Insert(ctx, nil, table.ID, InsertRowRequest{
			Data: map[string]interface{}{"name": "Red Mug", "price": "12.5"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Red Mug", resp.Data["name"])
		assert.Equal(t, float64(12.5), resp.Data["price"])
		assert.Equal(t, "Red Mug", resp.Display["name"])
	})

	t.Run("rejects a missing required field", func(t *testing.T) {
		service, tableRepo, rowRepo := newRowServiceFixture()

		table := productTable(t, uuid.New())
		tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)

		_, err := service.Insert(ctx, nil, table.ID, InsertRowRequest{
			Data: map[string]interface{}{"price": 10},
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "MISSING_REQUIRED_FIELD", domainErr.Code)
		rowRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects a value the field type cannot hold", func(t *testing.T) {
		service, tableRepo, _ := newRowServiceFixture()

		table := productTable(t, uuid.New())
		tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)

		_, err := service.Insert(ctx, nil, table.ID, InsertRowRequest{
			Data: map[string]interface{}{"name": "Red Mug", "price": "twelve"},
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_FIELD_VALUE", domainErr.Code)
	})
}

func TestRowServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns display columns and a store-side total", func(t *testing.T) {
		service, tableRepo, rowRepo := newRowServiceFixture()

		table := productTable(t, uuid.New())
		tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)

		row, err := dataset.NewTableRow(table.ID, map[string]interface{}{"name": "Red Mug", "price": float64(30)})
		require.NoError(t, err)

		rowRepo.On("Query", ctx, table.ID, mock.MatchedBy(func(q dataset.RowQuery) bool {
			return q.Offset == 0 && q.Limit == 20
		})).Return([]dataset.TableRow{*row}, int64(55), nil)

		resp, err := service.List(ctx, table.ID, RowListRequest{})

		require.NoError(t, err)
		assert.Equal(t, int64(55), resp.Total)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.PageSize)
		require.Len(t, resp.Columns, 2)
		assert.Equal(t, "name", resp.Columns[0].Name)
		require.Len(t, resp.Rows, 1)
		assert.Equal(t, "Red Mug", resp.Rows[0].Display["name"])
	})

	t.Run("renders missing values with the null placeholder", func(t *testing.T) {
		service, tableRepo, rowRepo := newRowServiceFixture()

		table := productTable(t, uuid.New())
		tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)

		row, err := dataset.NewTableRow(table.ID, map[string]interface{}{"name": "Red Mug"})
		require.NoError(t, err)
		rowRepo.On("Query", ctx, table.ID, mock.Anything).Return([]dataset.TableRow{*row}, int64(1), nil)

		resp, err := service.List(ctx, table.ID, RowListRequest{})

		require.NoError(t, err)
		assert.Equal(t, dataset.NullDisplay, resp.Rows[0].Display["price"])
	})

	t.Run("caps the page size", func(t *testing.T) {
		service, tableRepo, rowRepo := newRowServiceFixture()

		table := productTable(t, uuid.New())
		tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)
		rowRepo.On("Query", ctx, table.ID, mock.MatchedBy(func(q dataset.RowQuery) bool {
			return q.Limit == 200
		})).Return([]dataset.TableRow{}, int64(0), nil)

		resp, err := service.List(ctx, table.ID, RowListRequest{PageSize: 5000})

		require.NoError(t, err)
		assert.Equal(t, 200, resp.PageSize)
	})
}

func TestRowServiceQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("routes to the first table of the requested type", func(t *testing.T) {
		service, tableRepo, rowRepo := newRowServiceFixture()

		shopID := uuid.New()
		table := productTable(t, shopID)
		tableRepo.On("FindFirstByType", ctx, dataset.TableTypeProduct, &shopID).Return(table, nil)
		rowRepo.On("Query", ctx, table.ID, mock.MatchedBy(func(q dataset.RowQuery) bool {
			return q.Filters["name"] == "Red Mug" && q.SortBy == "price" && q.SortDesc
		})).Return([]dataset.TableRow{}, int64(0), nil)

		_, err := service.Query(ctx, QueryRowsRequest{
			TableType: "product",
			ShopID:    &shopID,
			Filters:   map[string]string{"name": "Red Mug"},
			SortBy:    "price",
			SortDesc:  true,
		})

		require.NoError(t, err)
		rowRepo.AssertExpectations(t)
	})

	t.Run("rejects an unknown table type", func(t *testing.T) {
		service, _, _ := newRowServiceFixture()

		_, err := service.Query(ctx, QueryRowsRequest{TableType: "ledger"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TABLE_TYPE", domainErr.Code)
	})
}

func TestRowServiceDelete(t *testing.T) {
	ctx := context.Background()

	service, _, rowRepo := newRowServiceFixture()

	tableID := uuid.New()
	row, err := dataset.NewTableRow(tableID, map[string]interface{}{"name": "Red Mug"})
	require.NoError(t, err)

	rowRepo.On("FindByID", ctx, tableID, row.ID).Return(row, nil)
	rowRepo.On("Delete", ctx, tableID, row.ID).Return(nil)

	require.NoError(t, service.Delete(ctx, nil, tableID, row.ID))
	rowRepo.AssertExpectations(t)
}

func TestRowServiceParseSample(t *testing.T) {
	ctx := context.Background()

	service, _, _ := newRowServiceFixture()

	csv := "name,price,released\nRed Mug,12.5,2026-01-15\nBlue Mug,9,2026-02-01\n"
	resp, err := service.ParseSample(ctx, "sample.csv", strings.NewReader(csv), int64(len(csv)))

	require.NoError(t, err)
	require.Len(t, resp.Fields, 3)
	assert.Equal(t, "name", resp.Fields[0].Name)
	assert.Equal(t, "text", resp.Fields[0].Type)
	assert.Equal(t, "number", resp.Fields[1].Type)
	assert.Equal(t, "date", resp.Fields[2].Type)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Preview, 2)
	assert.Equal(t, "Red Mug", resp.Preview[0]["name"])
}
