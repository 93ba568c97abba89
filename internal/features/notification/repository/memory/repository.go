package memory

import (
	"context"
	"time"

	"trading-platform-backend/internal/features/notification/models"
	"trading-platform-backend/internal/features/notification/repository"
	"trading-platform-backend/internal/platform/memory"
)

type notificationRepository struct {
	notifications *memory.Collection[models.Notification]
}

func NewNotificationRepository() repository.NotificationRepository {
	return &notificationRepository{notifications: memory.NewCollection[models.Notification]()}
}

func (r *notificationRepository) GetByID(_ context.Context, id int64) (*models.Notification, error) {
	n, ok := r.notifications.Get(id)
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (r *notificationRepository) GetByUserID(_ context.Context, userID int64) ([]*models.Notification, error) {
	return r.notifications.Select(func(n models.Notification) bool {
		return n.UserID == userID
	}, models.NewestFirst), nil
}

func (r *notificationRepository) GetUnreadByUserID(_ context.Context, userID int64) ([]*models.Notification, error) {
	return r.notifications.Select(func(n models.Notification) bool {
		return n.UserID == userID && !n.IsRead
	}, models.NewestFirst), nil
}

func (r *notificationRepository) Create(_ context.Context, req models.CreateNotificationRequest) (*models.Notification, error) {
	now := time.Now().UTC()
	n := r.notifications.Insert(func(id int64) models.Notification {
		return models.NewNotification(req, id, now)
	})
	return &n, nil
}

func (r *notificationRepository) Update(_ context.Context, id int64, req models.UpdateNotificationRequest) (*models.Notification, error) {
	n, ok := r.notifications.Update(id, req.ApplyTo)
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (r *notificationRepository) MarkAsRead(_ context.Context, id int64) (bool, error) {
	_, ok := r.notifications.Update(id, func(n *models.Notification) {
		n.IsRead = true
	})
	return ok, nil
}

func (r *notificationRepository) MarkAllAsReadByUserID(_ context.Context, userID int64) (bool, error) {
	changed := r.notifications.UpdateWhere(func(n *models.Notification) bool {
		if n.UserID != userID || n.IsRead {
			return false
		}
		n.IsRead = true
		return true
	})
	return changed > 0, nil
}

func (r *notificationRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.notifications.Delete(id), nil
}
