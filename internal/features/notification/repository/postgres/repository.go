package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"trading-platform-backend/internal/features/notification/models"
	"trading-platform-backend/internal/features/notification/repository"
	"trading-platform-backend/internal/platform/postgres"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) repository.NotificationRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	var n models.Notification
	found, err := postgres.First(ctx, r.db, &n, "id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &n, nil
}

func (r *postgresRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Notification, error) {
	return r.list(ctx, r.db.Where("user_id = ?", userID))
}

func (r *postgresRepository) GetUnreadByUserID(ctx context.Context, userID int64) ([]*models.Notification, error) {
	return r.list(ctx, r.db.Where("user_id = ? AND is_read = ?", userID, false))
}

func (r *postgresRepository) list(ctx context.Context, query *gorm.DB) ([]*models.Notification, error) {
	items := make([]*models.Notification, 0)
	if err := query.WithContext(ctx).Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return items, nil
}

func (r *postgresRepository) Create(ctx context.Context, req models.CreateNotificationRequest) (*models.Notification, error) {
	n := models.NewNotification(req, 0, time.Now().UTC())
	if err := r.db.WithContext(ctx).Create(&n).Error; err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return &n, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req models.UpdateNotificationRequest) (*models.Notification, error) {
	var n models.Notification
	found, err := postgres.UpdateColumns(ctx, r.db, &n, id, req.Columns())
	if err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &n, nil
}

// MarkAsRead отмечает уведомление прочитанным
func (r *postgresRepository) MarkAsRead(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return false, fmt.Errorf("failed to mark notification as read: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// MarkAllAsReadByUserID отмечает все непрочитанные уведомления пользователя
func (r *postgresRepository) MarkAllAsReadByUserID(ctx context.Context, userID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if res.Error != nil {
		return false, fmt.Errorf("failed to mark notifications as read: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := postgres.DeleteByID(ctx, r.db, &models.Notification{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete notification: %w", err)
	}
	return deleted, nil
}
