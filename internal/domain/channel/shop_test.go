package channel

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shopFixture(t *testing.T) *Shop {
	t.Helper()
	shop, err := NewShop(uuid.New(), "US Store", "ops@example.com")
	require.NoError(t, err)
	return shop
}

func TestNewShop(t *testing.T) {
	t.Run("creates an active shop", func(t *testing.T) {
		shop := shopFixture(t)

		assert.Equal(t, "US Store", shop.Name)
		assert.Equal(t, ShopStatusActive, shop.Status)
		assert.True(t, shop.IsActive())
		assert.Nil(t, shop.ManagerID)
	})

	t.Run("requires a platform", func(t *testing.T) {
		_, err := NewShop(uuid.Nil, "US Store", "")
		require.Error(t, err)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := NewShop(uuid.New(), "  ", "")
		require.Error(t, err)
	})
}

func TestShopUpdate(t *testing.T) {
	shop := shopFixture(t)

	require.NoError(t, shop.Update("EU Store", "eu-ops@example.com"))
	assert.Equal(t, "EU Store", shop.Name)
	assert.Equal(t, "eu-ops@example.com", shop.Account)

	require.Error(t, shop.Update("", ""))
}

func TestShopAssignManager(t *testing.T) {
	shop := shopFixture(t)
	managerID := uuid.New()

	shop.AssignManager(managerID)
	require.NotNil(t, shop.ManagerID)
	assert.Equal(t, managerID, *shop.ManagerID)

	// A nil id clears the assignment
	shop.AssignManager(uuid.Nil)
	assert.Nil(t, shop.ManagerID)
}

func TestShopStatusTransitions(t *testing.T) {
	shop := shopFixture(t)

	require.Error(t, shop.Activate())

	require.NoError(t, shop.Deactivate())
	assert.False(t, shop.IsActive())
	require.Error(t, shop.Deactivate())

	require.NoError(t, shop.Activate())
	assert.True(t, shop.IsActive())
}
