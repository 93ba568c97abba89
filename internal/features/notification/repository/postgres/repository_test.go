package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-platform-backend/internal/common/optional"
	"trading-platform-backend/internal/features/notification/models"
	"trading-platform-backend/internal/features/notification/repository"
	"trading-platform-backend/internal/platform/postgres/dbtest"
)

func newTestRepository(t *testing.T) repository.NotificationRepository {
	t.Helper()
	return NewPostgresRepository(dbtest.Open(t, &models.Notification{}))
}

func notify(userID int64, title string) models.CreateNotificationRequest {
	return models.CreateNotificationRequest{UserID: userID, Type: "info", Title: title, Message: "body"}
}

func TestUnreadNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	a, err := repo.Create(ctx, notify(1, "a"))
	require.NoError(t, err)
	b, err := repo.Create(ctx, notify(1, "b"))
	require.NoError(t, err)
	c, err := repo.Create(ctx, notify(1, "c"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, notify(2, "other"))
	require.NoError(t, err)

	marked, err := repo.MarkAsRead(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, marked)

	unread, err := repo.GetUnreadByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, c.ID, unread[0].ID)
	assert.Equal(t, a.ID, unread[1].ID)

	all, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMarkAsReadMissing(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	marked, err := repo.MarkAsRead(ctx, 404)
	require.NoError(t, err)
	assert.False(t, marked)
}

func TestMarkAllAsRead(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	changed, err := repo.MarkAllAsReadByUserID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, changed)

	for _, title := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, notify(1, title))
		require.NoError(t, err)
	}
	other, err := repo.Create(ctx, notify(2, "x"))
	require.NoError(t, err)

	changed, err = repo.MarkAllAsReadByUserID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, changed)

	unread, err := repo.GetUnreadByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, unread)

	changed, err = repo.MarkAllAsReadByUserID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, changed)

	untouched, err := repo.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.False(t, untouched.IsRead)
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	n, err := repo.Create(ctx, notify(1, "a"))
	require.NoError(t, err)

	unchanged, err := repo.Update(ctx, n.ID, models.UpdateNotificationRequest{})
	require.NoError(t, err)
	require.NotNil(t, unchanged)
	assert.Equal(t, "a", unchanged.Title)

	updated, err := repo.Update(ctx, n.ID, models.UpdateNotificationRequest{Title: optional.Some("renamed")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.True(t, n.CreatedAt.Equal(updated.CreatedAt))

	missing, err := repo.Update(ctx, 99, models.UpdateNotificationRequest{Title: optional.Some("x")})
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := repo.Delete(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.Delete(ctx, n.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
