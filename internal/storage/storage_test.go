package storage

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trading-platform-backend/internal/common/config"
	usermodels "trading-platform-backend/internal/features/user/models"
)

func TestNewMemory(t *testing.T) {
	store := NewMemory()

	assert.Equal(t, config.StorageMemory, store.Driver())
	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close())
}

func TestNewRedisSharesOneKeyspace(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	store := NewRedis(client, "trade")
	assert.Equal(t, config.StorageRedis, store.Driver())
	require.NoError(t, store.Ping(ctx))

	_, err := store.Users.Create(ctx, usermodels.CreateUserRequest{
		Email: "a@example.com", FirstName: "A", LastName: "B", Phone: "1", Country: "US", Currency: "USD",
	})
	require.NoError(t, err)
	assert.True(t, mr.Exists("trade:user:1"))

	require.NoError(t, store.Close())
	assert.Error(t, store.Ping(ctx))
}

func TestNewSelectsDriver(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageMemory
	store, err := New(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, config.StorageMemory, store.Driver())

	mr := miniredis.RunT(t)
	cfg.Storage.Driver = config.StorageRedis
	cfg.Redis.Host = mr.Host()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	cfg.Redis.Port = port
	cfg.Redis.KeyPrefix = "it"
	store, err = New(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, config.StorageRedis, store.Driver())
	require.NoError(t, store.Close())

	cfg.Storage.Driver = "sqlite"
	_, err = New(ctx, cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestModelsCoverEveryTable(t *testing.T) {
	assert.Len(t, Models(), 6)
}
