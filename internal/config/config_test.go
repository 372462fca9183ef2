package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.RefreshTokenTTL)
	assert.False(t, cfg.SeedData)
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("SEED_DATA", "true")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.True(t, cfg.SeedData)
}

func TestFromViper_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "mysql")
	v.Set("ACCESS_TOKEN_TTL", "1h")
	v.Set("REFRESH_TOKEN_TTL", "30m")
	v.Set("BCRYPT_COST", 99)

	_, err := FromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
	assert.Contains(t, err.Error(), "DATABASE_DSN")
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "REFRESH_TOKEN_TTL")
	assert.Contains(t, err.Error(), "BCRYPT_COST")
}

func TestConfig_StringMasksSecret(t *testing.T) {
	cfg := &Config{JWTSecret: "top-secret", AppPort: ":9000", DBDriver: "sqlite"}
	assert.NotContains(t, cfg.String(), "top-secret")
}
