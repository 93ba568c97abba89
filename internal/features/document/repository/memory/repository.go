package memory

import (
	"context"
	"time"

	"trading-platform-backend/internal/features/document/models"
	"trading-platform-backend/internal/features/document/repository"
	"trading-platform-backend/internal/platform/memory"
)

type documentRepository struct {
	documents *memory.Collection[models.DocumentVerification]
}

func NewDocumentRepository() repository.DocumentRepository {
	return &documentRepository{documents: memory.NewCollection[models.DocumentVerification]()}
}

func (r *documentRepository) GetByID(_ context.Context, id int64) (*models.DocumentVerification, error) {
	d, ok := r.documents.Get(id)
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *documentRepository) GetByUserID(_ context.Context, userID int64) ([]*models.DocumentVerification, error) {
	return r.documents.Select(func(d models.DocumentVerification) bool {
		return d.UserID == userID
	}, models.NewestFirst), nil
}

func (r *documentRepository) Create(_ context.Context, req models.CreateDocumentRequest) (*models.DocumentVerification, error) {
	now := time.Now().UTC()
	d := r.documents.Insert(func(id int64) models.DocumentVerification {
		return models.NewDocumentVerification(req, id, now)
	})
	return &d, nil
}

func (r *documentRepository) Update(_ context.Context, id int64, req models.UpdateDocumentRequest) (*models.DocumentVerification, error) {
	d, ok := r.documents.Update(id, func(d *models.DocumentVerification) {
		req.ApplyTo(d)
	})
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *documentRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.documents.Delete(id), nil
}
