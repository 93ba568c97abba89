package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Market.Seed)
	assert.Equal(t, "trade", cfg.Redis.KeyPrefix)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("PORT", "9090")
	t.Setenv("ORIGIN", "http://a.test,http://b.test")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_DB", "trading")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.Origins)
	assert.Contains(t, cfg.GetDSN(), "host=db")
	assert.Contains(t, cfg.GetDSN(), "dbname=trading")
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Driver = "sqlite"
	cfg.Server.Port = 8080
	assert.Error(t, cfg.Validate())

	cfg.Storage.Driver = StorageRedis
	assert.NoError(t, cfg.Validate())

	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestRedisAddr(t *testing.T) {
	cfg := &Config{}
	cfg.Redis.Host = "cache"
	cfg.Redis.Port = 6380
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
}
