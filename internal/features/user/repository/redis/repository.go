package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"trading-platform-backend/internal/features/user/models"
	"trading-platform-backend/internal/features/user/repository"
	platformredis "trading-platform-backend/internal/platform/redis"
)

type userRepository struct {
	records *platformredis.Records[models.User]
}

func NewUserRepository(client *redis.Client, ks platformredis.Keyspace) repository.UserRepository {
	return &userRepository{
		records: platformredis.NewRecords[models.User](client, platformredis.Keyspace(ks.Key("user")), nil),
	}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.records.Get(ctx, id)
}

// GetByEmail is a linear scan over all users.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.records.All(ctx)
	if err != nil {
		return nil, err
	}

	var found *models.User
	for _, u := range users {
		if u.Email == email && (found == nil || u.ID < found.ID) {
			found = u
		}
	}
	return found, nil
}

func (r *userRepository) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	now := time.Now().UTC()
	return r.records.Insert(ctx, now, func(id int64) models.User {
		return models.NewUser(req, id, now)
	})
}

func (r *userRepository) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	return r.records.Update(ctx, id, func(u *models.User) {
		req.ApplyTo(u, time.Now().UTC())
	})
}

func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.records.Delete(ctx, id)
}
