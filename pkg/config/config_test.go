package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 30, cfg.Alerts.ExpiryWindowDays)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, "postgres://postgres:@localhost:5432/estoque?sslmode=disable", cfg.DB.ConnectionString())
	assert.Empty(t, cfg.Auth.OperatorPasswordHash)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ALERT_EXPIRY_WINDOW_DAYS", "15")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("DB_PASSWORD", "p@ss:word")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Alerts.ExpiryWindowDays)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Contains(t, cfg.DB.DSN(), "p%40ss%3Aword")
}

func TestLoad_DatabaseURLOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/loja")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/loja", cfg.DB.ConnectionString())
}

func TestLoad_OperatorRequiresSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OPERATOR_PASSWORD_HASH", "$2a$10$abc")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()

	assert.Error(t, err)
}
