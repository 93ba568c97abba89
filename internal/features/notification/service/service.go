package service

import (
	"context"

	"go.uber.org/zap"

	"trading-platform-backend/internal/common/errors"
	"trading-platform-backend/internal/features/notification/models"
	"trading-platform-backend/internal/features/notification/repository"
)

type NotificationService interface {
	GetNotification(ctx context.Context, id int64) (*models.Notification, error)
	GetUserNotifications(ctx context.Context, userID int64) ([]*models.Notification, error)
	GetUnreadNotifications(ctx context.Context, userID int64) ([]*models.Notification, error)
	CreateNotification(ctx context.Context, req models.CreateNotificationRequest) (*models.Notification, error)
	UpdateNotification(ctx context.Context, id int64, req models.UpdateNotificationRequest) (*models.Notification, error)
	MarkAsRead(ctx context.Context, id int64) error
	// MarkAllAsRead reports whether any notification changed.
	MarkAllAsRead(ctx context.Context, userID int64) (bool, error)
	DeleteNotification(ctx context.Context, id int64) error
}

type notificationService struct {
	repo   repository.NotificationRepository
	logger *zap.Logger
}

func NewNotificationService(repo repository.NotificationRepository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

func (s *notificationService) GetNotification(ctx context.Context, id int64) (*models.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("get notification", err)
	}
	if n == nil {
		return nil, errors.NewNotificationNotFoundError(id)
	}
	return n, nil
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID int64) ([]*models.Notification, error) {
	items, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list notifications", err)
	}
	return items, nil
}

func (s *notificationService) GetUnreadNotifications(ctx context.Context, userID int64) ([]*models.Notification, error) {
	items, err := s.repo.GetUnreadByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list unread notifications", err)
	}
	return items, nil
}

func (s *notificationService) CreateNotification(ctx context.Context, req models.CreateNotificationRequest) (*models.Notification, error) {
	n, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, errors.NewDatabaseError("create notification", err)
	}

	s.logger.Debug("Notification created",
		zap.Int64("notification_id", n.ID),
		zap.Int64("user_id", n.UserID),
		zap.String("type", n.Type),
	)
	return n, nil
}

func (s *notificationService) UpdateNotification(ctx context.Context, id int64, req models.UpdateNotificationRequest) (*models.Notification, error) {
	n, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, errors.NewDatabaseError("update notification", err)
	}
	if n == nil {
		return nil, errors.NewNotificationNotFoundError(id)
	}
	return n, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id int64) error {
	found, err := s.repo.MarkAsRead(ctx, id)
	if err != nil {
		return errors.NewDatabaseError("mark notification as read", err)
	}
	if !found {
		return errors.NewNotificationNotFoundError(id)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID int64) (bool, error) {
	updated, err := s.repo.MarkAllAsReadByUserID(ctx, userID)
	if err != nil {
		return false, errors.NewDatabaseError("mark all notifications as read", err)
	}
	return updated, nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewDatabaseError("delete notification", err)
	}
	if !deleted {
		return errors.NewNotificationNotFoundError(id)
	}
	return nil
}
