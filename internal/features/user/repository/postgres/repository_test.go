package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-platform-backend/internal/common/optional"
	"trading-platform-backend/internal/features/user/models"
	"trading-platform-backend/internal/features/user/repository"
	"trading-platform-backend/internal/platform/postgres/dbtest"
)

func newTestRepository(t *testing.T) repository.UserRepository {
	t.Helper()
	return NewPostgresRepository(dbtest.Open(t, &models.User{}))
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

func TestCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	a, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)
	b, err := repo.Create(ctx, newUser("b@example.com"))
	require.NoError(t, err)
	assert.Positive(t, a.ID)
	assert.Greater(t, b.ID, a.ID)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@example.com", got.Email)
	assert.Equal(t, "Bronze", got.AccountTier)
	assert.False(t, got.IsVerified)
	dbtest.AssertDecimal(t, "0", got.Balance)
	assert.Nil(t, got.DepositAddress)

	byEmail, err := repo.GetByEmail(ctx, "b@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, b.ID, byEmail.ID)

	byEmail, err = repo.GetByEmail(ctx, "B@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Nil(t, byEmail)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDuplicateEmailIsTranslated(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)
	b, err := repo.Create(ctx, newUser("b@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newUser("a@example.com"))
	assert.ErrorIs(t, err, repository.ErrEmailTaken)

	_, err = repo.Update(ctx, b.ID, models.UpdateUserRequest{Email: optional.Some("a@example.com")})
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestUpdateMergesSuppliedFields(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	created, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	updated, err := repo.Update(ctx, created.ID, models.UpdateUserRequest{
		Balance:        optional.Some("250"),
		DepositAddress: optional.Some("bc1qexample"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	dbtest.AssertDecimal(t, "250.00", updated.Balance)
	require.NotNil(t, updated.DepositAddress)
	assert.Equal(t, "bc1qexample", *updated.DepositAddress)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.FirstName, updated.FirstName)
	assert.Equal(t, created.AccountTier, updated.AccountTier)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	cleared, err := repo.Update(ctx, created.ID, models.UpdateUserRequest{DepositAddress: optional.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.DepositAddress)
	dbtest.AssertDecimal(t, "250", cleared.Balance)

	missing, err := repo.Update(ctx, created.ID+100, models.UpdateUserRequest{FirstName: optional.Some("Ghost")})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

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
