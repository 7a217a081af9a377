package channel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlatform(t *testing.T) {
	t.Run("creates an active platform with a lowercased code", func(t *testing.T) {
		platform, err := NewPlatform("Amazon", "AMZ")

		require.NoError(t, err)
		assert.Equal(t, "Amazon", platform.Name)
		assert.Equal(t, "amz", platform.Code)
		assert.True(t, platform.IsActive)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := NewPlatform("  ", "amz")
		require.Error(t, err)
	})

	t.Run("requires a code", func(t *testing.T) {
		_, err := NewPlatform("Amazon", "")
		require.Error(t, err)
	})

	t.Run("rejects a code with punctuation", func(t *testing.T) {
		_, err := NewPlatform("Amazon", "amz!")
		require.Error(t, err)
	})

	t.Run("accepts hyphens and underscores in codes", func(t *testing.T) {
		platform, err := NewPlatform("Etsy EU", "etsy-eu_2")
		require.NoError(t, err)
		assert.Equal(t, "etsy-eu_2", platform.Code)
	})

	t.Run("rejects an overlong name", func(t *testing.T) {
		_, err := NewPlatform(strings.Repeat("x", 101), "amz")
		require.Error(t, err)
	})
}

func TestPlatformUpdate(t *testing.T) {
	platform, err := NewPlatform("Amazon", "amz")
	require.NoError(t, err)

	err = platform.Update("Amazon US", "amazon.svg", "North America marketplace")

	require.NoError(t, err)
	assert.Equal(t, "Amazon US", platform.Name)
	assert.Equal(t, "amazon.svg", platform.Icon)
	// Code stays fixed after creation
	assert.Equal(t, "amz", platform.Code)
}

func TestPlatformActivation(t *testing.T) {
	platform, err := NewPlatform("Amazon", "amz")
	require.NoError(t, err)

	t.Run("deactivating twice is an error", func(t *testing.T) {
		require.NoError(t, platform.Deactivate())
		assert.False(t, platform.IsActive)

		require.Error(t, platform.Deactivate())
	})

	t.Run("activating again succeeds once", func(t *testing.T) {
		require.NoError(t, platform.Activate())
		assert.True(t, platform.IsActive)

		require.Error(t, platform.Activate())
	})
}

func TestPlatformConfig(t *testing.T) {
	platform, err := NewPlatform("Amazon", "amz")
	require.NoError(t, err)

	platform.SetConfig(map[string]interface{}{"region": "us-east-1"})

	assert.Equal(t, "us-east-1", platform.Config["region"])
}
