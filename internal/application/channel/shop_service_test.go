package channel

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopops/backend/internal/domain/channel"
	"github.com/shopops/backend/internal/domain/identity"
	"github.com/shopops/backend/internal/domain/shared"
)

func newShopServiceFixture() (*ShopService, *MockShopRepository, *MockPlatformRepository, *MockUserRepository) {
	shopRepo := new(MockShopRepository)
	platformRepo := new(MockPlatformRepository)
	userRepo := new(MockUserRepository)
	return NewShopService(shopRepo, platformRepo, userRepo, nil), shopRepo, platformRepo, userRepo
}

func TestShopServiceCreate(t *testing.T) {
	ctx := context.Background()

	platform, err := channel.NewPlatform("Taobao", "taobao")
	require.NoError(t, err)

	t.Run("creates shop", func(t *testing.T) {
		service, shopRepo, platformRepo, _ := newShopServiceFixture()

		platformRepo.On("FindByID", ctx, platform.ID).Return(platform, nil)
		shopRepo.On("ExistsByPlatformAndName", ctx, platform.ID, "Main Store").Return(false, nil)
		shopRepo.On("Save", ctx, mock.AnythingOfType("*channel.Shop")).Return(nil)

		resp, err := service.Create(ctx, nil, CreateShopRequest{
			Name:       "Main Store",
			PlatformID: platform.ID,
			Account:    "store@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "Main Store", resp.Name)
		assert.Equal(t, platform.ID, resp.PlatformID)
		shopRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown platform", func(t *testing.T) {
		service, _, platformRepo, _ := newShopServiceFixture()

		id := uuid.New()
		platformRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, nil, CreateShopRequest{
			Name:       "Main Store",
			PlatformID: id,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PLATFORM", domainErr.Code)
	})

	t.Run("rejects duplicate name within platform", func(t *testing.T) {
		service, shopRepo, platformRepo, _ := newShopServiceFixture()

		platformRepo.On("FindByID", ctx, platform.ID).Return(platform, nil)
		shopRepo.On("ExistsByPlatformAndName", ctx, platform.ID, "Main Store").Return(true, nil)

		_, err := service.Create(ctx, nil, CreateShopRequest{
			Name:       "Main Store",
			PlatformID: platform.ID,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("rejects unknown manager", func(t *testing.T) {
		service, shopRepo, platformRepo, userRepo := newShopServiceFixture()

		managerID := uuid.New()
		platformRepo.On("FindByID", ctx, platform.ID).Return(platform, nil)
		shopRepo.On("ExistsByPlatformAndName", ctx, platform.ID, "Main Store").Return(false, nil)
		userRepo.On("FindByID", ctx, managerID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, nil, CreateShopRequest{
			Name:       "Main Store",
			PlatformID: platform.ID,
			ManagerID:  &managerID,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_MANAGER", domainErr.Code)
	})
}

func TestShopServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("rename checks for duplicates", func(t *testing.T) {
		service, shopRepo, _, _ := newShopServiceFixture()

		shop, err := channel.NewShop(uuid.New(), "Old Name", "")
		require.NoError(t, err)

		newName := "New Name"
		shopRepo.On("FindByID", ctx, shop.ID).Return(shop, nil)
		shopRepo.On("ExistsByPlatformAndName", ctx, shop.PlatformID, newName).Return(true, nil)

		_, err = service.Update(ctx, nil, shop.ID, UpdateShopRequest{Name: &newName})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("assigns manager", func(t *testing.T) {
		service, shopRepo, _, userRepo := newShopServiceFixture()

		shop, err := channel.NewShop(uuid.New(), "Main Store", "")
		require.NoError(t, err)

		manager, err := identity.NewUser("manager", "hash", "Manager", identity.RoleOperator)
		require.NoError(t, err)

		shopRepo.On("FindByID", ctx, shop.ID).Return(shop, nil)
		userRepo.On("FindByID", ctx, manager.ID).Return(manager, nil)
		shopRepo.On("Save", ctx, shop).Return(nil)

		resp, err := service.Update(ctx, nil, shop.ID, UpdateShopRequest{ManagerID: &manager.ID})

		require.NoError(t, err)
		require.NotNil(t, resp.ManagerID)
		assert.Equal(t, manager.ID, *resp.ManagerID)
	})
}

func TestShopServiceStatus(t *testing.T) {
	ctx := context.Background()

	service, shopRepo, _, _ := newShopServiceFixture()

	shop, err := channel.NewShop(uuid.New(), "Main Store", "")
	require.NoError(t, err)

	shopRepo.On("FindByID", ctx, shop.ID).Return(shop, nil)
	shopRepo.On("Save", ctx, shop).Return(nil)

	resp, err := service.Deactivate(ctx, nil, shop.ID)
	require.NoError(t, err)
	assert.False(t, shop.IsActive())

	resp, err = service.Activate(ctx, nil, shop.ID)
	require.NoError(t, err)
	assert.True(t, shop.IsActive())
	_ = resp
}

func TestShopServiceListByPlatform(t *testing.T) {
	ctx := context.Background()

	service, shopRepo, _, _ := newShopServiceFixture()

	platformID := uuid.New()
	shop, err := channel.NewShop(platformID, "Main Store", "")
	require.NoError(t, err)

	shopRepo.On("FindByPlatform", ctx, platformID).Return([]channel.Shop{*shop}, nil)

	shops, err := service.ListByPlatform(ctx, platformID)

	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "Main Store", shops[0].Name)
}
