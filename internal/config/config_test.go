package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 5000, cfg.App.Port)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.Mongo.URI)
	assert.Equal(t, "files_manager", cfg.Mongo.Database)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, "/tmp/files_manager", cfg.Storage.Root)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 1, cfg.Worker.Count)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "files_test")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("FILES_PATH", "/data/uploads")
	t.Setenv("SESSION_TTL_HOURS", "1")
	t.Setenv("WORKER_COUNT", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "files_test", cfg.Mongo.Database)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, "/data/uploads", cfg.Storage.Root)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 4, cfg.Worker.Count)
}

func TestLoadClampsInvalidValues(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "-3")
	t.Setenv("WORKER_COUNT", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 1, cfg.Worker.Count)
}
