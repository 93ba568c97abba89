package redis

import (
	"context"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"trading-platform-backend/internal/features/transaction/models"
	"trading-platform-backend/internal/features/transaction/repository"
	platformredis "trading-platform-backend/internal/platform/redis"
)

type transactionRepository struct {
	records *platformredis.Records[models.Transaction]
}

func NewTransactionRepository(client *redis.Client, ks platformredis.Keyspace) repository.TransactionRepository {
	return &transactionRepository{
		records: platformredis.NewRecords(client, platformredis.Keyspace(ks.Key("transaction")),
			func(t *models.Transaction) int64 { return t.UserID }),
	}
}

func (r *transactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	return r.records.Get(ctx, id)
}

func (r *transactionRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	items, err := r.records.ByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(items, models.NewestFirst)
	return items, nil
}

func (r *transactionRepository) Create(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	now := time.Now().UTC()
	return r.records.Insert(ctx, now, func(id int64) models.Transaction {
		return models.NewTransaction(req, id, now)
	})
}

func (r *transactionRepository) Update(ctx context.Context, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	return r.records.Update(ctx, id, func(t *models.Transaction) {
		req.ApplyTo(t, time.Now().UTC())
	})
}

func (r *transactionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.records.Delete(ctx, id)
}
