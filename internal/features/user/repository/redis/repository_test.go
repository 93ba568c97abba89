package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-platform-backend/internal/common/optional"
	"trading-platform-backend/internal/features/user/models"
	"trading-platform-backend/internal/features/user/repository"
	platformredis "trading-platform-backend/internal/platform/redis"
)

func newTestRepository(t *testing.T) (repository.UserRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewUserRepository(client, platformredis.Keyspace("test")), mr
}

func newUser(email string) models.CreateUserRequest {
	return models.CreateUserRequest{
		Email:     email,
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "+15550100",
		Country:   "US",
		Currency:  "USD",
	}
}

func TestCreateStoresRecordAndIndex(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	created, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	assert.True(t, mr.Exists("test:user:1"))
	members, err := mr.Members("test:user:all")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, members)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@example.com", got.Email)
	assert.Equal(t, "0.00", got.Balance)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestGetByEmailScansUsers(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	_, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)
	b, err := repo.Create(ctx, newUser("b@example.com"))
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "b@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b.ID, got.ID)

	got, err = repo.GetByEmail(ctx, "c@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	created, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, models.UpdateUserRequest{
		AccountTier:    optional.Some("Silver"),
		DepositAddress: optional.Some("bc1q"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Silver", updated.AccountTier)
	require.NotNil(t, updated.DepositAddress)
	assert.Equal(t, "bc1q", *updated.DepositAddress)

	missing, err := repo.Update(ctx, 42, models.UpdateUserRequest{AccountTier: optional.Some("Gold")})
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.False(t, mr.Exists("test:user:42"))

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, mr.Exists("test:user:1"))

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestIDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	a, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)
	_, err = repo.Delete(ctx, a.ID)
	require.NoError(t, err)

	b, err := repo.Create(ctx, newUser("b@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), b.ID)
}
