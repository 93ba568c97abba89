package memory

import (
	"context"
	"time"

	"trading-platform-backend/internal/features/user/models"
	"trading-platform-backend/internal/features/user/repository"
	"trading-platform-backend/internal/platform/memory"
)

type userRepository struct {
	users *memory.Collection[models.User]
}

func NewUserRepository() repository.UserRepository {
	return &userRepository{users: memory.NewCollection[models.User]()}
}

func (r *userRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users.Get(id)
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	var found *models.User
	for _, u := range r.users.Filter(func(u models.User) bool { return u.Email == email }) {
		if found == nil || u.ID < found.ID {
			u := u
			found = &u
		}
	}
	return found, nil
}

func (r *userRepository) Create(_ context.Context, req models.CreateUserRequest) (*models.User, error) {
	now := time.Now().UTC()
	user := r.users.Insert(func(id int64) models.User {
		return models.NewUser(req, id, now)
	})
	return &user, nil
}

func (r *userRepository) Update(_ context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	user, ok := r.users.Update(id, func(u *models.User) {
		req.ApplyTo(u, time.Now().UTC())
	})
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.users.Delete(id), nil
}
