package memory

import (
	"context"
	"time"

	"trading-platform-backend/internal/features/payment/models"
	"trading-platform-backend/internal/features/payment/repository"
	"trading-platform-backend/internal/platform/memory"
)

type paymentRepository struct {
	payments *memory.Collection[models.PaymentSubmission]
}

func NewPaymentRepository() repository.PaymentRepository {
	return &paymentRepository{payments: memory.NewCollection[models.PaymentSubmission]()}
}

func (r *paymentRepository) GetByID(_ context.Context, id int64) (*models.PaymentSubmission, error) {
	p, ok := r.payments.Get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *paymentRepository) GetByUserID(_ context.Context, userID int64) ([]*models.PaymentSubmission, error) {
	return r.payments.Select(func(p models.PaymentSubmission) bool {
		return p.UserID == userID
	}, models.NewestFirst), nil
}

func (r *paymentRepository) Create(_ context.Context, req models.CreatePaymentRequest) (*models.PaymentSubmission, error) {
	now := time.Now().UTC()
	p := r.payments.Insert(func(id int64) models.PaymentSubmission {
		return models.NewPaymentSubmission(req, id, now)
	})
	return &p, nil
}

func (r *paymentRepository) Update(_ context.Context, id int64, req models.UpdatePaymentRequest) (*models.PaymentSubmission, error) {
	p, ok := r.payments.Update(id, func(p *models.PaymentSubmission) {
		req.ApplyTo(p)
	})
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *paymentRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.payments.Delete(id), nil
}
