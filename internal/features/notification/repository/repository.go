package repository

import (
	"context"

	"trading-platform-backend/internal/features/notification/models"
)

// NotificationRepository returns nil, nil for a missing id. List queries are
// ordered newest first and never return nil.
type NotificationRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Notification, error)
	GetByUserID(ctx context.Context, userID int64) ([]*models.Notification, error)
	GetUnreadByUserID(ctx context.Context, userID int64) ([]*models.Notification, error)
	Create(ctx context.Context, req models.CreateNotificationRequest) (*models.Notification, error)
	Update(ctx context.Context, id int64, req models.UpdateNotificationRequest) (*models.Notification, error)
	// MarkAsRead reports whether the notification exists.
	MarkAsRead(ctx context.Context, id int64) (bool, error)
	// MarkAllAsReadByUserID reports whether at least one notification changed.
	MarkAllAsReadByUserID(ctx context.Context, userID int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
