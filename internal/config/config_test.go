package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 8081, cfg.Admin.Port)
	assert.Equal(t, "json", cfg.Storage.Driver)
	assert.Equal(t, "data/projects", cfg.Storage.Path)
	assert.Equal(t, "mock", cfg.Enrichment.Provider)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
}

const sampleYAML = `environment: production
server:
  port: 9090
  read_timeout: 5s
logging:
  level: debug
  format: console
storage:
  driver: redis
  redis:
    addr: redis:6379
    db: 2
    ttl: 24h
generation:
  strict: true
  catalog_dir: ./templates
enrichment:
  provider: mock
  seed: 42
`

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 90*time.Second, cfg.Server.WriteTimeout, "unset values get defaults")
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "redis:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
	assert.Equal(t, 24*time.Hour, cfg.Storage.Redis.TTL)
	assert.Equal(t, "gameforge", cfg.Storage.Redis.Prefix)
	assert.True(t, cfg.Generation.Strict)
	assert.Equal(t, "./templates", cfg.Generation.CatalogDir)
	assert.Equal(t, int64(42), cfg.Enrichment.Seed)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	t.Setenv("GAMEFORGE_SERVER_PORT", "7000")
	t.Setenv("GAMEFORGE_STORAGE_DRIVER", "json")
	t.Setenv("GAMEFORGE_ENRICHMENT_OPENAI_MODEL", "gpt-4o")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Storage.Driver)
	assert.Equal(t, "gpt-4o", cfg.Enrichment.OpenAI.Model)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("GAMEFORGE_ENRICHMENT_PROVIDER", "openai")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")

	t.Setenv("GAMEFORGE_ENRICHMENT_PROVIDER", "mock")
	t.Setenv("GAMEFORGE_STORAGE_DRIVER", "postgres")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "out", cfg.Generation.OutputDir)
}
