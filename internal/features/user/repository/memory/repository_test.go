package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-platform-backend/internal/common/optional"
	"trading-platform-backend/internal/features/user/models"
)

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

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	a, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)
	b, err := repo.Create(ctx, newUser("b@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@example.com", got.Email)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	created, err := repo.Create(ctx, newUser("a@x.com"))
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	got, err = repo.GetByEmail(ctx, "A@X.COM")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateMergesSuppliedFields(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	created, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, models.UpdateUserRequest{
		Balance: optional.Some("250"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "250.00", updated.Balance)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.FirstName, updated.FirstName)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateMissingLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	created, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID+100, models.UpdateUserRequest{
		FirstName: optional.Some("Ghost"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
}

func TestDeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	created, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReturnedUserIsACopy(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	created, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)
	created.FirstName = "Mutated"

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
}
