package service

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"trading-platform-backend/internal/common/errors"
	"trading-platform-backend/internal/features/user/models"
	"trading-platform-backend/internal/features/user/repository"
)

type UserService interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("get user", err)
	}
	if user == nil {
		return nil, errors.NewUserNotFoundError(id)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewDatabaseError("get user by email", err)
	}
	if user == nil {
		return nil, errors.NewUserNotFoundError(email)
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewDatabaseError("get user by email", err)
	}
	if existing != nil {
		return nil, errors.NewEmailTakenError(req.Email)
	}

	user, err := s.repo.Create(ctx, req)
	if err != nil {
		if stderrors.Is(err, repository.ErrEmailTaken) {
			return nil, errors.NewEmailTakenError(req.Email)
		}
		return nil, errors.NewDatabaseError("create user", err)
	}

	s.logger.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("account_tier", user.AccountTier),
	)
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	if req.Email.Present() {
		other, err := s.repo.GetByEmail(ctx, req.Email.Value)
		if err != nil {
			return nil, errors.NewDatabaseError("get user by email", err)
		}
		if other != nil && other.ID != id {
			return nil, errors.NewEmailTakenError(req.Email.Value)
		}
	}

	user, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if stderrors.Is(err, repository.ErrEmailTaken) {
			return nil, errors.NewEmailTakenError(req.Email.Value)
		}
		return nil, errors.NewDatabaseError("update user", err)
	}
	if user == nil {
		return nil, errors.NewUserNotFoundError(id)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewDatabaseError("delete user", err)
	}
	if !deleted {
		return errors.NewUserNotFoundError(id)
	}

	s.logger.Info("User deleted", zap.Int64("user_id", id))
	return nil
}
