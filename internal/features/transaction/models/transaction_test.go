package models

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-platform-backend/internal/common/optional"
)

func TestNewTransactionDefaultsToPending(t *testing.T) {
	now := time.Now().UTC()
	tx := NewTransaction(CreateTransactionRequest{UserID: 3, Type: "deposit", Amount: "250"}, 1, now)

	assert.Equal(t, StatusPending, tx.Status)
	assert.Equal(t, "250.00", tx.Amount)
	assert.Nil(t, tx.Description)
	assert.Equal(t, now, tx.CreatedAt)
	assert.Equal(t, now, tx.UpdatedAt)

	completed := "completed"
	tx = NewTransaction(CreateTransactionRequest{UserID: 3, Type: "profit", Amount: "1", Status: &completed}, 2, now)
	assert.Equal(t, "completed", tx.Status)
}

func TestNewestFirst(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	items := []*Transaction{
		{ID: 1, CreatedAt: base},
		{ID: 3, CreatedAt: base.Add(-time.Minute)},
		{ID: 2, CreatedAt: base},
		{ID: 4, CreatedAt: base.Add(time.Minute)},
	}

	slices.SortFunc(items, NewestFirst)

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []int64{4, 2, 1, 3}, ids)
}

func TestUpdateTransactionValidate(t *testing.T) {
	valid := UpdateTransactionRequest{Status: optional.Some("completed"), Description: optional.Null[string]()}
	assert.NoError(t, valid.Validate())

	invalid := UpdateTransactionRequest{
		UserID: optional.Some(int64(0)),
		Type:   optional.Some("gift"),
		Amount: optional.Null[string](),
		Status: optional.Some("done"),
	}
	assert.Error(t, invalid.Validate())
}

func TestUpdateTransactionApplyAndColumns(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	desc := "initial"
	tx := Transaction{ID: 1, UserID: 1, Type: "deposit", Amount: "10.00", Status: "pending", Description: &desc, CreatedAt: created, UpdatedAt: created}

	later := created.Add(time.Hour)
	req := UpdateTransactionRequest{
		Status:      optional.Some("completed"),
		Amount:      optional.Some("12.5"),
		Description: optional.Null[string](),
	}
	req.ApplyTo(&tx, later)

	assert.Equal(t, "completed", tx.Status)
	assert.Equal(t, "12.50", tx.Amount)
	assert.Nil(t, tx.Description)
	assert.Equal(t, "deposit", tx.Type)
	assert.Equal(t, later, tx.UpdatedAt)

	cols := req.Columns(later)
	assert.Equal(t, "completed", cols["status"])
	assert.Equal(t, "12.50", cols["amount"])
	require.Contains(t, cols, "description")
	assert.Nil(t, cols["description"])
	assert.NotContains(t, cols, "reference")
	assert.NotContains(t, cols, "user_id")
}
