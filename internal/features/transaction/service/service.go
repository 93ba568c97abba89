package service

import (
	"context"

	"go.uber.org/zap"

	"trading-platform-backend/internal/common/errors"
	"trading-platform-backend/internal/features/transaction/models"
	"trading-platform-backend/internal/features/transaction/repository"
)

type TransactionService interface {
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	GetUserTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error)
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

type transactionService struct {
	repo   repository.TransactionRepository
	logger *zap.Logger
}

func NewTransactionService(repo repository.TransactionRepository, logger *zap.Logger) TransactionService {
	return &transactionService{repo: repo, logger: logger}
}

func (s *transactionService) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("get transaction", err)
	}
	if t == nil {
		return nil, errors.NewTransactionNotFoundError(id)
	}
	return t, nil
}

func (s *transactionService) GetUserTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	items, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list transactions", err)
	}
	return items, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	t, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, errors.NewDatabaseError("create transaction", err)
	}

	s.logger.Info("Transaction created",
		zap.Int64("transaction_id", t.ID),
		zap.Int64("user_id", t.UserID),
		zap.String("type", t.Type),
		zap.String("amount", t.Amount),
	)
	return t, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	t, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, errors.NewDatabaseError("update transaction", err)
	}
	if t == nil {
		return nil, errors.NewTransactionNotFoundError(id)
	}

	if req.Status.Present() {
		s.logger.Info("Transaction status changed",
			zap.Int64("transaction_id", id),
			zap.String("status", t.Status),
		)
	}
	return t, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewDatabaseError("delete transaction", err)
	}
	if !deleted {
		return errors.NewTransactionNotFoundError(id)
	}
	return nil
}
