package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-platform-backend/internal/common/optional"
)

func newPayment(now time.Time) PaymentSubmission {
	return NewPaymentSubmission(CreatePaymentRequest{
		UserID:        1,
		Amount:        "500",
		ScreenshotURL: "https://cdn.example.com/receipt.png",
	}, 1, now)
}

func TestNewPaymentSubmission(t *testing.T) {
	now := time.Now().UTC()
	p := newPayment(now)

	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, "500.00", p.Amount)
	assert.Equal(t, now, p.SubmittedAt)
	assert.Nil(t, p.ProcessedAt)
}

func TestStatusUpdateLeavesProcessedTime(t *testing.T) {
	submitted := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	p := newPayment(submitted)

	req := UpdatePaymentRequest{Status: optional.Some("confirmed")}
	req.ApplyTo(&p)

	assert.Equal(t, "confirmed", p.Status)
	assert.Nil(t, p.ProcessedAt)
	assert.Equal(t, "500.00", p.Amount)
	assert.Equal(t, map[string]interface{}{"status": "confirmed"}, req.Columns())
}

func TestClearingProcessedTime(t *testing.T) {
	now := time.Now().UTC()
	p := newPayment(now)
	p.ProcessedAt = &now

	req := UpdatePaymentRequest{ProcessedAt: optional.Null[time.Time]()}
	req.ApplyTo(&p)
	assert.Nil(t, p.ProcessedAt)

	cols := req.Columns()
	require.Contains(t, cols, "processed_at")
	assert.Nil(t, cols["processed_at"])
}

func TestUpdatePaymentValidateAndAmount(t *testing.T) {
	assert.Error(t, (&UpdatePaymentRequest{Amount: optional.Some("abc")}).Validate())
	assert.Error(t, (&UpdatePaymentRequest{Status: optional.Some("approved")}).Validate())
	assert.Error(t, (&UpdatePaymentRequest{UserID: optional.Some(int64(-1))}).Validate())

	req := UpdatePaymentRequest{Amount: optional.Some("12.345")}
	require.NoError(t, req.Validate())

	p := newPayment(time.Now())
	req.ApplyTo(&p)
	assert.Equal(t, "12.35", p.Amount)
	assert.Equal(t, "pending", p.Status)
	assert.Nil(t, p.ProcessedAt)
}
