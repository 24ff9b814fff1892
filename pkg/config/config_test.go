package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "university_db", cfg.Database.Name)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Database.AutoSchema)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Exports.Enabled)
	assert.True(t, cfg.WebUI.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "8081")
	t.Setenv("API_PREFIX", "/api/")
	t.Setenv("DB_DRIVER", " Postgres ")
	t.Setenv("DB_AUTO_SCHEMA", "true")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, ,http://example.com")
	t.Setenv("ENABLE_EXPORTS", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoSchema)
	assert.Equal(t, []string{"http://localhost:3000", "http://example.com"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Exports.Enabled)
}

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
