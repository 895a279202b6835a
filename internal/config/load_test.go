package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret-that-is-at-least-32-chars"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("WAYPOST_DATABASE_URL", "postgres://localhost:5432/waypost_test")
	t.Setenv("WAYPOST_AUTH_JWT_SECRET", testSecret)
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geocode.BaseURL)
	assert.Equal(t, 10, cfg.Geocode.TimeoutSeconds)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WAYPOST_SERVER_PORT", "9090")
	t.Setenv("WAYPOST_SERVER_LOG_LEVEL", "debug")
	t.Setenv("WAYPOST_GEOCODE_BASE_URL", "http://localhost:7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "http://localhost:7070", cfg.Geocode.BaseURL)
}

func TestLoad_MissingSecretFails(t *testing.T) {
	t.Setenv("WAYPOST_DATABASE_URL", "postgres://localhost:5432/waypost_test")
	t.Setenv("WAYPOST_AUTH_JWT_SECRET", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_ShortSecretFails(t *testing.T) {
	t.Setenv("WAYPOST_DATABASE_URL", "postgres://localhost:5432/waypost_test")
	t.Setenv("WAYPOST_AUTH_JWT_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "JWTSecret"))
}

func TestLoad_MissingDatabaseURLFails(t *testing.T) {
	t.Setenv("WAYPOST_DATABASE_URL", "")
	t.Setenv("WAYPOST_AUTH_JWT_SECRET", testSecret)

	_, err := Load()
	require.Error(t, err)
}
