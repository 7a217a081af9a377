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

// MockSettingRepository is a mock implementation of system.SettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*system.Setting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*system.Setting), args.Error(1)
}

func (m *MockSettingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]system.Setting, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]system.Setting), args.Error(1)
}

func (m *MockSettingRepository) Save(ctx context.Context, entity *system.Setting) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockSettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSettingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettingRepository) FindByKey(ctx context.Context, key string) (*system.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*system.Setting), args.Error(1)
}

func (m *MockSettingRepository) FindByGroup(ctx context.Context, group string) ([]system.Setting, error) {
	args := m.Called(ctx, group)
	return args.Get(0).([]system.Setting), args.Error(1)
}

func (m *MockSettingRepository) FindPublic(ctx context.Context) ([]system.Setting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]system.Setting), args.Error(1)
}

func TestSettingServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a typed setting", func(t *testing.T) {
		settingRepo := new(MockSettingRepository)
		service := NewSettingService(settingRepo, nil)

		settingRepo.On("FindByKey", ctx, "page_size").Return(nil, shared.ErrNotFound)
		settingRepo.On("Save", ctx, mock.AnythingOfType("*system.Setting")).Return(nil)

		resp, err := service.Create(ctx, nil, CreateSettingRequest{
			Key:       "page_size",
			Value:     "50",
			ValueType: "number",
			GroupName: "display",
		})

		require.NoError(t, err)
		assert.Equal(t, "page_size", resp.Key)
		assert.Equal(t, float64(50), resp.TypedValue)
	})

	t.Run("rejects duplicate key", func(t *testing.T) {
		settingRepo := new(MockSettingRepository)
		service := NewSettingService(settingRepo, nil)

		existing, err := system.NewSetting("page_size", "20", system.ValueTypeNumber)
		require.NoError(t, err)
		settingRepo.On("FindByKey", ctx, "page_size").Return(existing, nil)

		_, err = service.Create(ctx, nil, CreateSettingRequest{
			Key:       "page_size",
			Value:     "50",
			ValueType: "number",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("rejects value that does not match its type", func(t *testing.T) {
		settingRepo := new(MockSettingRepository)
		service := NewSettingService(settingRepo, nil)

		settingRepo.On("FindByKey", ctx, "page_size").Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, nil, CreateSettingRequest{
			Key:       "page_size",
			Value:     "not-a-number",
			ValueType: "number",
		})
		assert.Error(t, err)
	})
}

func TestSettingServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("revalidates the new value", func(t *testing.T) {
		settingRepo := new(MockSettingRepository)
		service := NewSettingService(settingRepo, nil)

		setting, err := system.NewSetting("maintenance", "false", system.ValueTypeBoolean)
		require.NoError(t, err)
		settingRepo.On("FindByKey", ctx, "maintenance").Return(setting, nil)

		bad := "maybe"
		_, err = service.Update(ctx, nil, "maintenance", UpdateSettingRequest{Value: &bad})
		require.Error(t, err)

		// The stored value is untouched after a failed update
		assert.Equal(t, "false", setting.Value)
		settingRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("updates value and visibility", func(t *testing.T) {
		settingRepo := new(MockSettingRepository)
		service := NewSettingService(settingRepo, nil)

		setting, err := system.NewSetting("maintenance", "false", system.ValueTypeBoolean)
		require.NoError(t, err)
		settingRepo.On("FindByKey", ctx, "maintenance").Return(setting, nil)
		settingRepo.On("Save", ctx, setting).Return(nil)

		value := "true"
		public := true
		resp, err := service.Update(ctx, nil, "maintenance", UpdateSettingRequest{
			Value:    &value,
			IsPublic: &public,
		})

		require.NoError(t, err)
		assert.Equal(t, true, resp.TypedValue)
		assert.True(t, resp.IsPublic)
	})
}

func TestSettingServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("narrows to a group", func(t *testing.T) {
		settingRepo := new(MockSettingRepository)
		service := NewSettingService(settingRepo, nil)

		setting, err := system.NewSetting("page_size", "20", system.ValueTypeNumber)
		require.NoError(t, err)
		setting.GroupName = "display"
		settingRepo.On("FindByGroup", ctx, "display").Return([]system.Setting{*setting}, nil)

		settings, err := service.List(ctx, "display")

		require.NoError(t, err)
		require.Len(t, settings, 1)
		assert.Equal(t, "page_size", settings[0].Key)
	})

	t.Run("lists public settings", func(t *testing.T) {
		settingRepo := new(MockSettingRepository)
		service := NewSettingService(settingRepo, nil)

		setting, err := system.NewSetting("site_name", "Shop Console", system.ValueTypeString)
		require.NoError(t, err)
		setting.IsPublic = true
		settingRepo.On("FindPublic", ctx).Return([]system.Setting{*setting}, nil)

		settings, err := service.ListPublic(ctx)

		require.NoError(t, err)
		require.Len(t, settings, 1)
		assert.Equal(t, "Shop Console", settings[0].TypedValue)
	})
}

func TestSettingServiceDelete(t *testing.T) {
	ctx := context.Background()

	settingRepo := new(MockSettingRepository)
	service := NewSettingService(settingRepo, nil)

	setting, err := system.NewSetting("obsolete", "x", system.ValueTypeString)
	require.NoError(t, err)
	settingRepo.On("FindByKey", ctx, "obsolete").Return(setting, nil)
	settingRepo.On("Delete", ctx, setting.ID).Return(nil)

	assert.NoError(t, service.Delete(ctx, nil, "obsolete"))
	settingRepo.AssertExpectations(t)
}
