package service

import (
	"context"

	"go.uber.org/zap"

	"trading-platform-backend/internal/common/errors"
	"trading-platform-backend/internal/features/payment/models"
	"trading-platform-backend/internal/features/payment/repository"
)

type PaymentService interface {
	GetPayment(ctx context.Context, id int64) (*models.PaymentSubmission, error)
	GetUserPayments(ctx context.Context, userID int64) ([]*models.PaymentSubmission, error)
	SubmitPayment(ctx context.Context, req models.CreatePaymentRequest) (*models.PaymentSubmission, error)
	UpdatePayment(ctx context.Context, id int64, req models.UpdatePaymentRequest) (*models.PaymentSubmission, error)
	DeletePayment(ctx context.Context, id int64) error
}

type paymentService struct {
	repo   repository.PaymentRepository
	logger *zap.Logger
}

func NewPaymentService(repo repository.PaymentRepository, logger *zap.Logger) PaymentService {
	return &paymentService{repo: repo, logger: logger}
}

func (s *paymentService) GetPayment(ctx context.Context, id int64) (*models.PaymentSubmission, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("get payment submission", err)
	}
	if p == nil {
		return nil, errors.NewPaymentNotFoundError(id)
	}
	return p, nil
}

func (s *paymentService) GetUserPayments(ctx context.Context, userID int64) ([]*models.PaymentSubmission, error) {
	items, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list payment submissions", err)
	}
	return items, nil
}

func (s *paymentService) SubmitPayment(ctx context.Context, req models.CreatePaymentRequest) (*models.PaymentSubmission, error) {
	p, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, errors.NewDatabaseError("create payment submission", err)
	}

	s.logger.Info("Payment submitted",
		zap.Int64("payment_id", p.ID),
		zap.Int64("user_id", p.UserID),
		zap.String("amount", p.Amount),
	)
	return p, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, id int64, req models.UpdatePaymentRequest) (*models.PaymentSubmission, error) {
	p, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, errors.NewDatabaseError("update payment submission", err)
	}
	if p == nil {
		return nil, errors.NewPaymentNotFoundError(id)
	}

	if req.Status.Present() {
		s.logger.Info("Payment processed",
			zap.Int64("payment_id", id),
			zap.String("status", p.Status),
		)
	}
	return p, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewDatabaseError("delete payment submission", err)
	}
	if !deleted {
		return errors.NewPaymentNotFoundError(id)
	}
	return nil
}
