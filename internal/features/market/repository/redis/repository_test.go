package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-platform-backend/internal/features/market/models"
	"trading-platform-backend/internal/features/market/repository"
	platformredis "trading-platform-backend/internal/platform/redis"
)

func newTestRepository(t *testing.T) repository.MarketRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewMarketRepository(client, platformredis.Keyspace("test"))
}

func quote(symbol, price string) models.UpsertQuoteRequest {
	return models.UpsertQuoteRequest{Symbol: symbol, Price: price, Change24h: "1.5", ChangePercent24h: "1.5"}
}

func TestUpsertKeepsIDAndRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	first, err := repo.Upsert(ctx, quote("BTC/USD", "42000"))
	require.NoError(t, err)
	assert.Equal(t, "42000.00000000", first.Price)
	assert.Nil(t, first.Volume24h)

	time.Sleep(time.Millisecond)

	second, err := repo.Upsert(ctx, quote("BTC/USD", "43000.5"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "43000.50000000", second.Price)
	assert.True(t, second.LastUpdated.After(first.LastUpdated))

	got, err := repo.Get(ctx, "BTC/USD")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "43000.50000000", got.Price)
}

func TestGetAllOrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	empty, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, s := range []string{"ETH/USD", "BTC/USD", "SOL/USD"} {
		_, err := repo.Upsert(ctx, quote(s, "1"))
		require.NoError(t, err)
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ETH/USD", all[0].Symbol)
	assert.Equal(t, "BTC/USD", all[1].Symbol)
	assert.Equal(t, "SOL/USD", all[2].Symbol)
}

func TestDeleteQuote(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.Upsert(ctx, quote("XRP/USD", "0.62"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, "XRP/USD")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "XRP/USD")
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err := repo.Get(ctx, "XRP/USD")
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSymbolsDoNotCollideWithBookkeepingKeys(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	for _, s := range []string{"seq", "symbols", "BTC/USD"} {
		_, err := repo.Upsert(ctx, quote(s, "1"))
		require.NoError(t, err)
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
