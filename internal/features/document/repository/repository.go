package repository

import (
	"context"

	"trading-platform-backend/internal/features/document/models"
)

// DocumentRepository returns nil, nil for a missing id.
type DocumentRepository interface {
	GetByID(ctx context.Context, id int64) (*models.DocumentVerification, error)
	// GetByUserID returns the user's submissions, most recent first.
	GetByUserID(ctx context.Context, userID int64) ([]*models.DocumentVerification, error)
	Create(ctx context.Context, req models.CreateDocumentRequest) (*models.DocumentVerification, error)
	Update(ctx context.Context, id int64, req models.UpdateDocumentRequest) (*models.DocumentVerification, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
