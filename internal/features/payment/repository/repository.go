package repository

import (
	"context"

	"trading-platform-backend/internal/features/payment/models"
)

// PaymentRepository returns nil, nil for a missing id.
type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*models.PaymentSubmission, error)
	// GetByUserID returns the user's submissions, most recent first.
	GetByUserID(ctx context.Context, userID int64) ([]*models.PaymentSubmission, error)
	Create(ctx context.Context, req models.CreatePaymentRequest) (*models.PaymentSubmission, error)
	Update(ctx context.Context, id int64, req models.UpdatePaymentRequest) (*models.PaymentSubmission, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
