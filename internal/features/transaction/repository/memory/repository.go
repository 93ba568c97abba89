package memory

import (
	"context"
	"time"

	"trading-platform-backend/internal/features/transaction/models"
	"trading-platform-backend/internal/features/transaction/repository"
	"trading-platform-backend/internal/platform/memory"
)

type transactionRepository struct {
	transactions *memory.Collection[models.Transaction]
}

func NewTransactionRepository() repository.TransactionRepository {
	return &transactionRepository{transactions: memory.NewCollection[models.Transaction]()}
}

func (r *transactionRepository) GetByID(_ context.Context, id int64) (*models.Transaction, error) {
	t, ok := r.transactions.Get(id)
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *transactionRepository) GetByUserID(_ context.Context, userID int64) ([]*models.Transaction, error) {
	return r.transactions.Select(func(t models.Transaction) bool {
		return t.UserID == userID
	}, models.NewestFirst), nil
}

func (r *transactionRepository) Create(_ context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	now := time.Now().UTC()
	t := r.transactions.Insert(func(id int64) models.Transaction {
		return models.NewTransaction(req, id, now)
	})
	return &t, nil
}

func (r *transactionRepository) Update(_ context.Context, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	t, ok := r.transactions.Update(id, func(t *models.Transaction) {
		req.ApplyTo(t, time.Now().UTC())
	})
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *transactionRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.transactions.Delete(id), nil
}
