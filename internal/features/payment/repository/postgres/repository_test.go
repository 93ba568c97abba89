package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-platform-backend/internal/common/optional"
	"trading-platform-backend/internal/features/payment/models"
	"trading-platform-backend/internal/features/payment/repository"
	"trading-platform-backend/internal/platform/postgres/dbtest"
)

func newTestRepository(t *testing.T) repository.PaymentRepository {
	t.Helper()
	return NewPostgresRepository(dbtest.Open(t, &models.PaymentSubmission{}))
}

func submit(userID int64, amount string) models.CreatePaymentRequest {
	return models.CreatePaymentRequest{UserID: userID, Amount: amount, ScreenshotURL: "https://cdn.example.com/receipt.png"}
}

func TestPaymentLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	first, err := repo.Create(ctx, submit(1, "100"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, submit(1, "250.5"))
	require.NoError(t, err)
	assert.Equal(t, "250.50", second.Amount)
	dbtest.AssertDecimal(t, "250.50", mustGet(t, repo, second.ID).Amount)

	items, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)

	confirmed, err := repo.Update(ctx, first.ID, models.UpdatePaymentRequest{Status: optional.Some("confirmed")})
	require.NoError(t, err)
	require.NotNil(t, confirmed)
	assert.Equal(t, "confirmed", confirmed.Status)
	assert.Nil(t, confirmed.ProcessedAt)
	dbtest.AssertDecimal(t, first.Amount, confirmed.Amount)
	assert.Equal(t, first.ScreenshotURL, confirmed.ScreenshotURL)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)

	deleted, err := repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	items, err = repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMissingPayment(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	updated, err := repo.Update(ctx, 1, models.UpdatePaymentRequest{Status: optional.Some("rejected")})
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func mustGet(t *testing.T, repo repository.PaymentRepository, id int64) *models.PaymentSubmission {
	t.Helper()
	p, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}
