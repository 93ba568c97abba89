package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"trading-platform-backend/internal/features/payment/models"
	"trading-platform-backend/internal/features/payment/repository"
	"trading-platform-backend/internal/platform/postgres"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) repository.PaymentRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*models.PaymentSubmission, error) {
	var p models.PaymentSubmission
	found, err := postgres.First(ctx, r.db, &p, "id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment submission: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

func (r *postgresRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.PaymentSubmission, error) {
	items := make([]*models.PaymentSubmission, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payment submissions: %w", err)
	}
	return items, nil
}

func (r *postgresRepository) Create(ctx context.Context, req models.CreatePaymentRequest) (*models.PaymentSubmission, error) {
	p := models.NewPaymentSubmission(req, 0, time.Now().UTC())
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment submission: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req models.UpdatePaymentRequest) (*models.PaymentSubmission, error) {
	var p models.PaymentSubmission
	found, err := postgres.UpdateColumns(ctx, r.db, &p, id, req.Columns())
	if err != nil {
		return nil, fmt.Errorf("failed to update payment submission: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := postgres.DeleteByID(ctx, r.db, &models.PaymentSubmission{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete payment submission: %w", err)
	}
	return deleted, nil
}
