package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevGleb/RealWorldApp/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("loads defaults with secret set", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, 5432, cfg.DBPort)
		assert.Equal(t, "realworld", cfg.DBName)
		assert.Equal(t, int32(25), cfg.DBMaxConns)
		assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
		assert.Equal(t, 10, cfg.BcryptCost)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("TOKEN_TTL", "24h")
		t.Setenv("HTTP_READ_TIMEOUT", "30s")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.ServerPort)
		assert.Equal(t, 5433, cfg.DBPort)
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	})

	t.Run("missing jwt secret fails validation", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("invalid int falls back to default", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("DB_PORT", "not-a-number")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, 5432, cfg.DBPort)
	})

	t.Run("invalid duration falls back to default", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("TOKEN_TTL", "soon")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	})
}
