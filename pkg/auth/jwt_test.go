package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		m := NewJWTManager("secret", time.Hour)

		token, err := m.GenerateToken("admin")
		require.NoError(t, err)

		claims, err := m.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := NewJWTManager("secret-a", time.Hour).GenerateToken("admin")
		require.NoError(t, err)

		_, err = NewJWTManager("secret-b", time.Hour).ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := NewJWTManager("secret", -time.Minute).GenerateToken("admin")
		require.NoError(t, err)

		_, err = NewJWTManager("secret", -time.Minute).ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("letmein")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "letmein"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
