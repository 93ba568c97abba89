package repository

import (
	"context"
	"errors"

	"trading-platform-backend/internal/features/user/models"
)

// ErrEmailTaken is reported by drivers that enforce the unique email column.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository hides the storage driver. Lookups of a missing record return
// nil, nil; Delete reports whether a record was removed.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// GetByEmail matches the address exactly and returns the lowest id on duplicates.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
