package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"trading-platform-backend/internal/features/user/models"
	"trading-platform-backend/internal/features/user/repository"
	"trading-platform-backend/internal/platform/postgres"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) repository.UserRepository {
	return &postgresRepository{db: db}
}

// GetByID получает пользователя по ID
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	found, err := postgres.First(ctx, r.db, &user, "id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// GetByEmail получает пользователя по точному совпадению email
func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	found, err := postgres.First(ctx, r.db, &user, "email = ?", email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// Create создает нового пользователя
func (r *postgresRepository) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	user := models.NewUser(req, 0, time.Now().UTC())
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repository.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Update частично обновляет пользователя
func (r *postgresRepository) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	var user models.User
	found, err := postgres.UpdateColumns(ctx, r.db, &user, id, req.Columns(time.Now().UTC()))
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repository.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// Delete удаляет пользователя
func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := postgres.DeleteByID(ctx, r.db, &models.User{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	return deleted, nil
}
