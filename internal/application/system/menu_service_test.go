package system

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopops/backend/internal/domain/shared"
	"github.com/shopops/backend/internal/domain/system"
)

// MockMenuItemRepository is a mock implementation of system.MenuItemRepository
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*system.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*system.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]system.MenuItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]system.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Save(ctx context.Context, entity *system.MenuItem) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMenuItemRepository) FindAllOrdered(ctx context.Context) ([]system.MenuItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]system.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) HasChildren(ctx context.Context, parentID uuid.UUID) (bool, error) {
	args := m.Called(ctx, parentID)
	return args.Bool(0), args.Error(1)
}

func menuItem(t *testing.T, name string, parentID *uuid.UUID, sortOrder int) *system.MenuItem {
	t.Helper()
	item, err := system.NewMenuItem(name, "/"+name, parentID)
	require.NoError(t, err)
	item.SortOrder = sortOrder
	return item
}

func TestMenuServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a root item", func(t *testing.T) {
		menuRepo := new(MockMenuItemRepository)
		service := NewMenuService(menuRepo, nil)

		menuRepo.On("Save", ctx, mock.AnythingOfType("*system.MenuItem")).Return(nil)

		resp, err := service.Create(ctx, nil, CreateMenuItemRequest{
			Name: "Dashboard",
			Path: "/dashboard",
			Icon: "chart",
		})

		require.NoError(t, err)
		assert.Equal(t, "Dashboard", resp.Name)
		assert.True(t, resp.IsVisible)
	})

	t.Run("rejects missing parent", func(t *testing.T) {
		menuRepo := new(MockMenuItemRepository)
		service := NewMenuService(menuRepo, nil)

		parentID := uuid.New()
		menuRepo.On("FindByID", ctx, parentID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, nil, CreateMenuItemRequest{
			Name:     "Orphan",
			ParentID: &parentID,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PARENT", domainErr.Code)
	})
}

func TestMenuServiceTree(t *testing.T) {
	ctx := context.Background()

	menuRepo := new(MockMenuItemRepository)
	service := NewMenuService(menuRepo, nil)

	root := menuItem(t, "system", nil, 1)
	child := menuItem(t, "users", &root.ID, 1)
	grandchild := menuItem(t, "roles", &child.ID, 1)
	other := menuItem(t, "dashboard", nil, 2)

	menuRepo.On("FindAllOrdered", ctx).Return([]system.MenuItem{*root, *child, *grandchild, *other}, nil)

	tree, err := service.Tree(ctx)

	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "system", tree[0].Name)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "users", tree[0].Children[0].Name)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "roles", tree[0].Children[0].Children[0].Name)
	assert.Empty(t, tree[1].Children)
}

func TestMenuServiceVisibleTree(t *testing.T) {
	ctx := context.Background()

	t.Run("hides admin-only entries from operators", func(t *testing.T) {
		menuRepo := new(MockMenuItemRepository)
		service := NewMenuService(menuRepo, nil)

		adminOnly := menuItem(t, "settings", nil, 1)
		adminOnly.RequiredRole = "admin"
		open := menuItem(t, "dashboard", nil, 2)

		menuRepo.On("FindAllOrdered", ctx).Return([]system.MenuItem{*adminOnly, *open}, nil)

		tree, err := service.VisibleTree(ctx, "operator")

		require.NoError(t, err)
		require.Len(t, tree, 1)
		assert.Equal(t, "dashboard", tree[0].Name)
	})

	t.Run("hidden parent hides its subtree", func(t *testing.T) {
		menuRepo := new(MockMenuItemRepository)
		service := NewMenuService(menuRepo, nil)

		parent := menuItem(t, "legacy", nil, 1)
		parent.IsVisible = false
		child := menuItem(t, "legacy-child", &parent.ID, 1)

		menuRepo.On("FindAllOrdered", ctx).Return([]system.MenuItem{*parent, *child}, nil)

		tree, err := service.VisibleTree(ctx, "admin")

		require.NoError(t, err)
		assert.Empty(t, tree)
	})
}

func TestMenuServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses item with children", func(t *testing.T) {
		menuRepo := new(MockMenuItemRepository)
		service := NewMenuService(menuRepo, nil)

		item := menuItem(t, "system", nil, 1)
		menuRepo.On("FindByID", ctx, item.ID).Return(item, nil)
		menuRepo.On("HasChildren", ctx, item.ID).Return(true, nil)

		err := service.Delete(ctx, nil, item.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RESOURCE_IN_USE", domainErr.Code)
		menuRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes a leaf", func(t *testing.T) {
		menuRepo := new(MockMenuItemRepository)
		service := NewMenuService(menuRepo, nil)

		item := menuItem(t, "dashboard", nil, 1)
		menuRepo.On("FindByID", ctx, item.ID).Return(item, nil)
		menuRepo.On("HasChildren", ctx, item.ID).Return(false, nil)
		menuRepo.On("Delete", ctx, item.ID).Return(nil)

		assert.NoError(t, service.Delete(ctx, nil, item.ID))
		menuRepo.AssertExpectations(t)
	})
}
