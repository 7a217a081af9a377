package dataset

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopops/backend/internal/domain/channel"
	"github.com/shopops/backend/internal/domain/dataset"
	"github.com/shopops/backend/internal/domain/shared"
)

// MockDataTableRepository is a mock implementation of dataset.DataTableRepository
type MockDataTableRepository struct {
	mock.Mock
}

func (m *MockDataTableRepository) FindByID(ctx context.Context, id uuid.UUID) (*dataset.DataTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dataset.DataTable), args.Error(1)
}

func (m *MockDataTableRepository) FindAll(ctx context.Context, filter shared.Filter) ([]dataset.DataTable, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]dataset.DataTable), args.Error(1)
}

func (m *MockDataTableRepository) Save(ctx context.Context, entity *dataset.DataTable) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockDataTableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDataTableRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDataTableRepository) FindByShop(ctx context.Context, shopID uuid.UUID) ([]dataset.DataTable, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]dataset.DataTable), args.Error(1)
}

func (m *MockDataTableRepository) FindActiveByShops(ctx context.Context, shopIDs []uuid.UUID) ([]dataset.DataTable, error) {
	args := m.Called(ctx, shopIDs)
	return args.Get(0).([]dataset.DataTable), args.Error(1)
}

func (m *MockDataTableRepository) FindFirstByType(ctx context.Context, tableType dataset.TableType, shopID *uuid.UUID) (*dataset.DataTable, error) {
	args := m.Called(ctx, tableType, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dataset.DataTable), args.Error(1)
}

// MockTableRowRepository is a mock implementation of dataset.TableRowRepository
type MockTableRowRepository struct {
	mock.Mock
}

func (m *MockTableRowRepository) FindByID(ctx context.Context, dataTableID, rowID uuid.UUID) (*dataset.TableRow, error) {
	args := m.Called(ctx, dataTableID, rowID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dataset.TableRow), args.Error(1)
}

func (m *MockTableRowRepository) Save(ctx context.Context, row *dataset.TableRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockTableRowRepository) SaveBatch(ctx context.Context, rows []*dataset.TableRow) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *MockTableRowRepository) Delete(ctx context.Context, dataTableID, rowID uuid.UUID) error {
	args := m.Called(ctx, dataTableID, rowID)
	return args.Error(0)
}

func (m *MockTableRowRepository) DeleteByTable(ctx context.Context, dataTableID uuid.UUID) (int64, error) {
	args := m.Called(ctx, dataTableID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTableRowRepository) Query(ctx context.Context, dataTableID uuid.UUID, q dataset.RowQuery) ([]dataset.TableRow, int64, error) {
	args := m.Called(ctx, dataTableID, q)
	return args.Get(0).([]dataset.TableRow), args.Get(1).(int64), args.Error(2)
}

func (m *MockTableRowRepository) CountByTable(ctx context.Context, dataTableID uuid.UUID) (int64, error) {
	args := m.Called(ctx, dataTableID)
	return args.Get(0).(int64), args.Error(1)
}

// MockShopRepository is a mock implementation of channel.ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*channel.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*channel.Shop), args.Error(1)
}

func (m *MockShopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]channel.Shop, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]channel.Shop), args.Error(1)
}

func (m *MockShopRepository) Save(ctx context.Context, entity *channel.Shop) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShopRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShopRepository) FindByPlatform(ctx context.Context, platformID uuid.UUID) ([]channel.Shop, error) {
	args := m.Called(ctx, platformID)
	return args.Get(0).([]channel.Shop), args.Error(1)
}

func (m *MockShopRepository) FindActiveByPlatform(ctx context.Context, platformID uuid.UUID) ([]channel.Shop, error) {
	args := m.Called(ctx, platformID)
	return args.Get(0).([]channel.Shop), args.Error(1)
}

func (m *MockShopRepository) ExistsByPlatformAndName(ctx context.Context, platformID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, platformID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockShopRepository) CountByPlatform(ctx context.Context, platformID uuid.UUID) (int64, error) {
	args := m.Called(ctx, platformID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPlatformRepository is a mock implementation of channel.PlatformRepository
type MockPlatformRepository struct {
	mock.Mock
}

func (m *MockPlatformRepository) FindByID(ctx context.Context, id uuid.UUID) (*channel.Platform, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*channel.Platform), args.Error(1)
}

func (m *MockPlatformRepository) FindAll(ctx context.Context, filter shared.Filter) ([]channel.Platform, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]channel.Platform), args.Error(1)
}

func (m *MockPlatformRepository) Save(ctx context.Context, entity *channel.Platform) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockPlatformRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlatformRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlatformRepository) FindByCode(ctx context.Context, code string) (*channel.Platform, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*channel.Platform), args.Error(1)
}

func (m *MockPlatformRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlatformRepository) FindActive(ctx context.Context) ([]channel.Platform, error) {
	args := m.Called(ctx)
	return args.Get(0).([]channel.Platform), args.Error(1)
}

type tableServiceFixture struct {
	service      *TableService
	tableRepo    *MockDataTableRepository
	rowRepo      *MockTableRowRepository
	shopRepo     *MockShopRepository
	platformRepo *MockPlatformRepository
}

func newTableServiceFixture() *tableServiceFixture {
	f := &tableServiceFixture{
		tableRepo:    new(MockDataTableRepository),
		rowRepo:      new(MockTableRowRepository),
		shopRepo:     new(MockShopRepository),
		platformRepo: new(MockPlatformRepository),
	}
	f.service = NewTableService(f.tableRepo, f.rowRepo, f.shopRepo, f.platformRepo, nil)
	return f
}

func productTable(t *testing.T, shopID uuid.UUID) *dataset.DataTable {
	t.Helper()
	table, err := dataset.NewDataTable(shopID, "Listings", dataset.TableTypeProduct, dataset.FieldList{
		{Name: "name", Type: dataset.FieldTypeText, Required: true, Order: 0},
		{Name: "price", Type: dataset.FieldTypeNumber, Order: 1},
	})
	require.NoError(t, err)
	return table
}

func TestTableServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a table with a validated schema", func(t *testing.T) {
		f := newTableServiceFixture()

		shop, err := channel.NewShop(uuid.New(), "Main Store", "main@store")
		require.NoError(t, err)
		f.shopRepo.On("FindByID", ctx, shop.ID).Return(shop, nil)
		f.tableRepo.On("Save", ctx, mock.AnythingOfType("*dataset.DataTable")).Return(nil)

		resp, err := f.service.Create(ctx, nil, CreateTableRequest{
			ShopID:    shop.ID,
			Name:      "Listings",
			TableType: "product",
			Fields: []FieldInput{
				{Name: "name", Type: "text", Required: true},
				{Name: "price", Type: "number"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Listings", resp.Name)
		assert.Equal(t, "product", resp.TableType)
		require.Len(t, resp.Fields, 2)
		assert.Equal(t, "name", resp.Fields[0].Name)
		assert.True(t, resp.Fields[0].Required)
		assert.True(t, resp.IsActive)
	})

	t.Run("rejects an unknown shop", func(t *testing.T) {
		f := newTableServiceFixture()

		shopID := uuid.New()
		f.shopRepo.On("FindByID", ctx, shopID).Return(nil, shared.ErrNotFound)

		_, err := f.service.Create(ctx, nil, CreateTableRequest{
			ShopID:    shopID,
			Name:      "Listings",
			TableType: "product",
			Fields:    []FieldInput{{Name: "name", Type: "text"}},
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_SHOP", domainErr.Code)
	})

	t.Run("rejects an unknown table type", func(t *testing.T) {
		f := newTableServiceFixture()

		shop, err := channel.NewShop(uuid.New(), "Main Store", "main@store")
		require.NoError(t, err)
		f.shopRepo.On("FindByID", ctx, shop.ID).Return(shop, nil)

		_, err = f.service.Create(ctx, nil, CreateTableRequest{
			ShopID:    shop.ID,
			Name:      "Listings",
			TableType: "ledger",
			Fields:    []FieldInput{{Name: "name", Type: "text"}},
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TABLE_TYPE", domainErr.Code)
	})

	t.Run("rejects an unknown field type", func(t *testing.T) {
		f := newTableServiceFixture()

		shop, err := channel.NewShop(uuid.New(), "Main Store", "main@store")
		require.NoError(t, err)
		f.shopRepo.On("FindByID", ctx, shop.ID).Return(shop, nil)

		_, err = f.service.Create(ctx, nil, CreateTableRequest{
			ShopID:    shop.ID,
			Name:      "Listings",
			TableType: "product",
			Fields:    []FieldInput{{Name: "name", Type: "uuid"}},
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNKNOWN_FIELD_TYPE", domainErr.Code)
	})
}

func TestTableServiceGetByID(t *testing.T) {
	ctx := context.Background()

	f := newTableServiceFixture()

	table := productTable(t, uuid.New())
	f.tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)
	f.rowRepo.On("CountByTable", ctx, table.ID).Return(int64(128), nil)

	resp, err := f.service.GetByID(ctx, table.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(128), resp.RowCount)
}

func TestTableServiceDelete(t *testing.T) {
	ctx := context.Background()

	f := newTableServiceFixture()

	table := productTable(t, uuid.New())
	f.tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)
	f.rowRepo.On("DeleteByTable", ctx, table.ID).Return(int64(40), nil)
	f.tableRepo.On("Delete", ctx, table.ID).Return(nil)

	require.NoError(t, f.service.Delete(ctx, nil, table.ID))
	// Rows go first so the table never dangles
	f.rowRepo.AssertExpectations(t)
	f.tableRepo.AssertExpectations(t)
}

func TestTableServiceTree(t *testing.T) {
	ctx := context.Background()

	f := newTableServiceFixture()

	platform, err := channel.NewPlatform("Etsy", "etsy")
	require.NoError(t, err)
	shop, err := channel.NewShop(platform.ID, "Main Store", "main@store")
	require.NoError(t, err)
	table := productTable(t, shop.ID)

	f.platformRepo.On("FindActive", ctx).Return([]channel.Platform{*platform}, nil)
	f.shopRepo.On("FindActiveByPlatform", ctx, platform.ID).Return([]channel.Shop{*shop}, nil)
	f.tableRepo.On("FindActiveByShops", ctx, []uuid.UUID{shop.ID}).Return([]dataset.DataTable{*table}, nil)

	tree, err := f.service.Tree(ctx)

	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "platform", tree[0].Type)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "shop", tree[0].Children[0].Type)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "table", tree[0].Children[0].Children[0].Type)
	assert.Equal(t, "Listings", tree[0].Children[0].Children[0].Name)
}

func TestTableServiceSchemaEditing(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a field", func(t *testing.T) {
		f := newTableServiceFixture()

		table := productTable(t, uuid.New())
		f.tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)
		f.tableRepo.On("Save", ctx, table).Return(nil)

		resp, err := f.service.AddField(ctx, nil, table.ID, AddFieldRequest{
			Field: FieldInput{Name: "released_at", Type: "date"},
		})

		require.NoError(t, err)
		require.Len(t, resp.Fields, 3)
		assert.Equal(t, "released_at", resp.Fields[2].Name)
		assert.Equal(t, 2, resp.Fields[2].Order)
	})

	t.Run("rejects a duplicate field name", func(t *testing.T) {
		f := newTableServiceFixture()

		table := productTable(t, uuid.New())
		f.tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)

		_, err := f.service.AddField(ctx, nil, table.ID, AddFieldRequest{
			Field: FieldInput{Name: "price", Type: "number"},
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_FIELD", domainErr.Code)
		f.tableRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("moves a field up", func(t *testing.T) {
		f := newTableServiceFixture()

		table := productTable(t, uuid.New())
		f.tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)
		f.tableRepo.On("Save", ctx, table).Return(nil)

		resp, err := f.service.MoveField(ctx, nil, table.ID, MoveFieldRequest{Index: 1, Direction: "up"})

		require.NoError(t, err)
		assert.Equal(t, "price", resp.Fields[0].Name)
		assert.Equal(t, "name", resp.Fields[1].Name)
	})

	t.Run("batch assigns a type", func(t *testing.T) {
		f := newTableServiceFixture()

		table := productTable(t, uuid.New())
		f.tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)
		f.tableRepo.On("Save", ctx, table).Return(nil)

		resp, err := f.service.BatchSetType(ctx, nil, table.ID, BatchSetTypeRequest{
			Names: []string{"name", "price"},
			Type:  "text",
		})

		require.NoError(t, err)
		for _, field := range resp.Fields {
			assert.Equal(t, "text", field.Type)
		}
	})

	t.Run("refuses to delete the whole schema", func(t *testing.T) {
		f := newTableServiceFixture()

		table := productTable(t, uuid.New())
		f.tableRepo.On("FindByID", ctx, table.ID).Return(table, nil)

		_, err := f.service.BatchDeleteFields(ctx, nil, table.ID, BatchDeleteFieldsRequest{
			Names: []string{"name", "price"},
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMPTY_SCHEMA", domainErr.Code)
		f.tableRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
