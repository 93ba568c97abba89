package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"trading-platform-backend/internal/features/document/models"
	"trading-platform-backend/internal/features/document/repository"
	"trading-platform-backend/internal/platform/postgres"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) repository.DocumentRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*models.DocumentVerification, error) {
	var d models.DocumentVerification
	found, err := postgres.First(ctx, r.db, &d, "id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get document verification: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &d, nil
}

func (r *postgresRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.DocumentVerification, error) {
	items := make([]*models.DocumentVerification, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list document verifications: %w", err)
	}
	return items, nil
}

func (r *postgresRepository) Create(ctx context.Context, req models.CreateDocumentRequest) (*models.DocumentVerification, error) {
	d := models.NewDocumentVerification(req, 0, time.Now().UTC())
	if err := r.db.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, fmt.Errorf("failed to create document verification: %w", err)
	}
	return &d, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req models.UpdateDocumentRequest) (*models.DocumentVerification, error) {
	var d models.DocumentVerification
	found, err := postgres.UpdateColumns(ctx, r.db, &d, id, req.Columns())
	if err != nil {
		return nil, fmt.Errorf("failed to update document verification: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &d, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := postgres.DeleteByID(ctx, r.db, &models.DocumentVerification{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete document verification: %w", err)
	}
	return deleted, nil
}
