package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"trading-platform-backend/internal/features/transaction/models"
	"trading-platform-backend/internal/features/transaction/repository"
	"trading-platform-backend/internal/platform/postgres"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) repository.TransactionRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	var t models.Transaction
	found, err := postgres.First(ctx, r.db, &t, "id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &t, nil
}

// GetByUserID получает транзакции пользователя, новые первыми
func (r *postgresRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	items := make([]*models.Transaction, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return items, nil
}

func (r *postgresRepository) Create(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	t := models.NewTransaction(req, 0, time.Now().UTC())
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &t, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	var t models.Transaction
	found, err := postgres.UpdateColumns(ctx, r.db, &t, id, req.Columns(time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &t, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := postgres.DeleteByID(ctx, r.db, &models.Transaction{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}
	return deleted, nil
}
