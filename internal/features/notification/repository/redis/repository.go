package redis

import (
	"context"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"trading-platform-backend/internal/features/notification/models"
	"trading-platform-backend/internal/features/notification/repository"
	platformredis "trading-platform-backend/internal/platform/redis"
)

type notificationRepository struct {
	records *platformredis.Records[models.Notification]
}

func NewNotificationRepository(client *redis.Client, ks platformredis.Keyspace) repository.NotificationRepository {
	return &notificationRepository{
		records: platformredis.NewRecords(client, platformredis.Keyspace(ks.Key("notification")),
			func(n *models.Notification) int64 { return n.UserID }),
	}
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	return r.records.Get(ctx, id)
}

func (r *notificationRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Notification, error) {
	items, err := r.records.ByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(items, models.NewestFirst)
	return items, nil
}

func (r *notificationRepository) GetUnreadByUserID(ctx context.Context, userID int64) ([]*models.Notification, error) {
	items, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	unread := make([]*models.Notification, 0, len(items))
	for _, n := range items {
		if !n.IsRead {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (r *notificationRepository) Create(ctx context.Context, req models.CreateNotificationRequest) (*models.Notification, error) {
	now := time.Now().UTC()
	return r.records.Insert(ctx, now, func(id int64) models.Notification {
		return models.NewNotification(req, id, now)
	})
}

func (r *notificationRepository) Update(ctx context.Context, id int64, req models.UpdateNotificationRequest) (*models.Notification, error) {
	return r.records.Update(ctx, id, req.ApplyTo)
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id int64) (bool, error) {
	n, err := r.records.Update(ctx, id, func(n *models.Notification) {
		n.IsRead = true
	})
	if err != nil {
		return false, err
	}
	return n != nil, nil
}

// MarkAllAsReadByUserID flips each unread record under its own WATCH, so a
// notification read concurrently is not counted twice.
func (r *notificationRepository) MarkAllAsReadByUserID(ctx context.Context, userID int64) (bool, error) {
	unread, err := r.GetUnreadByUserID(ctx, userID)
	if err != nil {
		return false, err
	}

	changed := 0
	for _, n := range unread {
		flipped := false
		_, err := r.records.Update(ctx, n.ID, func(cur *models.Notification) {
			// запись могла перейти к другому пользователю после выборки
			if cur.UserID != userID {
				return
			}
			flipped = !cur.IsRead
			cur.IsRead = true
		})
		if err != nil {
			return changed > 0, err
		}
		if flipped {
			changed++
		}
	}
	return changed > 0, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.records.Delete(ctx, id)
}
