package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopops/backend/internal/infrastructure/auth"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	require.NoError(t, auth.VerifyPassword(hash, "s3cret-pass"))
	assert.ErrorIs(t, auth.VerifyPassword(hash, "wrong-pass"), auth.ErrPasswordMismatch)
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := auth.HashPassword("abc")
	assert.Error(t, err)
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := auth.HashPassword("same-password")
	require.NoError(t, err)
	h2, err := auth.HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
