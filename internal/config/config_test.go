package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfigFile(t, `
database:
  url: postgres://localhost:5432/registry
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9000"
  read_timeout: 30s
database:
  url: postgres://localhost:5432/registry
  max_open_conns: 25
log:
  level: debug
  format: text
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
database:
  url: postgres://file-host:5432/registry
`)

	t.Setenv("APP_DATABASE__URL", "postgres://env-host:5432/registry")
	t.Setenv("APP_SERVER__PORT", "8888")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env-host:5432/registry", cfg.Database.URL)
	assert.Equal(t, "8888", cfg.Server.Port)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("APP_DATABASE__URL", "postgres://env-host:5432/registry")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://env-host:5432/registry", cfg.Database.URL)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.url")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
