package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-platform-backend/internal/common/optional"
	"trading-platform-backend/internal/features/transaction/models"
	"trading-platform-backend/internal/features/transaction/repository"
	platformredis "trading-platform-backend/internal/platform/redis"
)

func newTestRepository(t *testing.T) (repository.TransactionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTransactionRepository(client, platformredis.Keyspace("test")), mr
}

func deposit(userID int64, amount string) models.CreateTransactionRequest {
	return models.CreateTransactionRequest{UserID: userID, Type: "deposit", Amount: amount}
}

func TestGetByUserID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	ids := make([]int64, 0, 3)
	for _, amount := range []string{"10", "20", "30"} {
		tx, err := repo.Create(ctx, deposit(1, amount))
		require.NoError(t, err)
		ids = append(ids, tx.ID)
	}
	_, err := repo.Create(ctx, deposit(2, "99"))
	require.NoError(t, err)

	items, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, ids[2], items[0].ID)
	assert.Equal(t, ids[1], items[1].ID)
	assert.Equal(t, ids[0], items[2].ID)
	assert.Equal(t, "30.00", items[0].Amount)

	empty, err := repo.GetByUserID(ctx, 5)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestUpdateMovesOwnerIndex(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	tx, err := repo.Create(ctx, deposit(1, "10"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, tx.ID, models.UpdateTransactionRequest{
		UserID: optional.Some(int64(2)),
		Status: optional.Some("completed"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "completed", updated.Status)

	assert.False(t, mr.Exists("test:transaction:user:1"))
	members, err := mr.ZMembers("test:transaction:user:2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, members)

	items, err := repo.GetByUserID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, tx.ID, items[0].ID)
}

func TestDeleteRemovesIndexes(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	tx, err := repo.Create(ctx, deposit(1, "10"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, tx.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, mr.Exists("test:transaction:1"))
	assert.False(t, mr.Exists("test:transaction:user:1"))

	items, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}
