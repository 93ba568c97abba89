package redis

import (
	"context"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"trading-platform-backend/internal/features/document/models"
	"trading-platform-backend/internal/features/document/repository"
	platformredis "trading-platform-backend/internal/platform/redis"
)

type documentRepository struct {
	records *platformredis.Records[models.DocumentVerification]
}

func NewDocumentRepository(client *redis.Client, ks platformredis.Keyspace) repository.DocumentRepository {
	return &documentRepository{
		records: platformredis.NewRecords(client, platformredis.Keyspace(ks.Key("document")),
			func(d *models.DocumentVerification) int64 { return d.UserID }),
	}
}

func (r *documentRepository) GetByID(ctx context.Context, id int64) (*models.DocumentVerification, error) {
	return r.records.Get(ctx, id)
}

func (r *documentRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.DocumentVerification, error) {
	items, err := r.records.ByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(items, models.NewestFirst)
	return items, nil
}

func (r *documentRepository) Create(ctx context.Context, req models.CreateDocumentRequest) (*models.DocumentVerification, error) {
	now := time.Now().UTC()
	return r.records.Insert(ctx, now, func(id int64) models.DocumentVerification {
		return models.NewDocumentVerification(req, id, now)
	})
}

func (r *documentRepository) Update(ctx context.Context, id int64, req models.UpdateDocumentRequest) (*models.DocumentVerification, error) {
	return r.records.Update(ctx, id, func(d *models.DocumentVerification) {
		req.ApplyTo(d)
	})
}

func (r *documentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.records.Delete(ctx, id)
}
