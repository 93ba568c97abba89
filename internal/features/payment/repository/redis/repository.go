package redis

import (
	"context"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"trading-platform-backend/internal/features/payment/models"
	"trading-platform-backend/internal/features/payment/repository"
	platformredis "trading-platform-backend/internal/platform/redis"
)

type paymentRepository struct {
	records *platformredis.Records[models.PaymentSubmission]
}

func NewPaymentRepository(client *redis.Client, ks platformredis.Keyspace) repository.PaymentRepository {
	return &paymentRepository{
		records: platformredis.NewRecords(client, platformredis.Keyspace(ks.Key("payment")),
			func(p *models.PaymentSubmission) int64 { return p.UserID }),
	}
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*models.PaymentSubmission, error) {
	return r.records.Get(ctx, id)
}

func (r *paymentRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.PaymentSubmission, error) {
	items, err := r.records.ByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(items, models.NewestFirst)
	return items, nil
}

func (r *paymentRepository) Create(ctx context.Context, req models.CreatePaymentRequest) (*models.PaymentSubmission, error) {
	now := time.Now().UTC()
	return r.records.Insert(ctx, now, func(id int64) models.PaymentSubmission {
		return models.NewPaymentSubmission(req, id, now)
	})
}

func (r *paymentRepository) Update(ctx context.Context, id int64, req models.UpdatePaymentRequest) (*models.PaymentSubmission, error) {
	return r.records.Update(ctx, id, func(p *models.PaymentSubmission) {
		req.ApplyTo(p)
	})
}

func (r *paymentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.records.Delete(ctx, id)
}
