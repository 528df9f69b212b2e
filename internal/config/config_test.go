package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "user-account-service", cfg.App.Name)
	require.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	require.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	require.Equal(t, 10, cfg.Auth.BcryptCost)
	require.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL())
	require.True(t, cfg.Postgres.RunMigrations)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "15")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.App.Port)
	require.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL())
	require.Equal(t, 12, cfg.Auth.BcryptCost)
	require.False(t, cfg.Postgres.RunMigrations)
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestAuthConfig_TTLFallback(t *testing.T) {
	cfg := AuthConfig{AccessTokenTTLMinutes: 0}
	require.Equal(t, time.Hour, cfg.AccessTokenTTL())
}
