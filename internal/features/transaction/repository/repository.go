package repository

import (
	"context"

	"trading-platform-backend/internal/features/transaction/models"
)

// TransactionRepository returns nil, nil for a missing id.
type TransactionRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	// GetByUserID returns the user's transactions newest first, never nil.
	GetByUserID(ctx context.Context, userID int64) ([]*models.Transaction, error)
	Create(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error)
	Update(ctx context.Context, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
