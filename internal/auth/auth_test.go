package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevGleb/RealWorldApp/internal/auth"
)

func TestPasswordHasher(t *testing.T) {
	hasher := auth.NewPasswordHasher(4) // low cost keeps the test fast

	t.Run("hash then verify round-trip", func(t *testing.T) {
		hashed, err := hasher.Hash("s3cret-password")

		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-password", hashed)
		assert.True(t, hasher.Verify("s3cret-password", hashed))
	})

	t.Run("wrong password fails verification", func(t *testing.T) {
		hashed, err := hasher.Hash("correct")

		require.NoError(t, err)
		assert.False(t, hasher.Verify("incorrect", hashed))
	})

	t.Run("hashing is salted", func(t *testing.T) {
		a, err := hasher.Hash("same-input")
		require.NoError(t, err)
		b, err := hasher.Hash("same-input")
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("out of range cost falls back to default", func(t *testing.T) {
		h := auth.NewPasswordHasher(99)

		hashed, err := h.Hash("pw")
		require.NoError(t, err)
		assert.True(t, h.Verify("pw", hashed))
	})
}

func TestTokenManager(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("issue then verify returns user id", func(t *testing.T) {
		token, err := manager.Issue("user-123", "gleb@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, err := manager.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", userID)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := manager.Verify("not-a-token")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := auth.NewTokenManager("other-secret", time.Hour)
		token, err := other.Issue("user-123", "gleb@example.com")
		require.NoError(t, err)

		_, err = manager.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := auth.NewTokenManager("test-secret", -time.Minute)
		token, err := expired.Issue("user-123", "gleb@example.com")
		require.NoError(t, err)

		_, err = manager.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
