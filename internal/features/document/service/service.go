package service

import (
	"context"

	"go.uber.org/zap"

	"trading-platform-backend/internal/common/errors"
	"trading-platform-backend/internal/features/document/models"
	"trading-platform-backend/internal/features/document/repository"
)

type DocumentService interface {
	GetDocument(ctx context.Context, id int64) (*models.DocumentVerification, error)
	GetUserDocuments(ctx context.Context, userID int64) ([]*models.DocumentVerification, error)
	SubmitDocument(ctx context.Context, req models.CreateDocumentRequest) (*models.DocumentVerification, error)
	UpdateDocument(ctx context.Context, id int64, req models.UpdateDocumentRequest) (*models.DocumentVerification, error)
	DeleteDocument(ctx context.Context, id int64) error
}

type documentService struct {
	repo   repository.DocumentRepository
	logger *zap.Logger
}

func NewDocumentService(repo repository.DocumentRepository, logger *zap.Logger) DocumentService {
	return &documentService{repo: repo, logger: logger}
}

func (s *documentService) GetDocument(ctx context.Context, id int64) (*models.DocumentVerification, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("get document verification", err)
	}
	if d == nil {
		return nil, errors.NewDocumentNotFoundError(id)
	}
	return d, nil
}

func (s *documentService) GetUserDocuments(ctx context.Context, userID int64) ([]*models.DocumentVerification, error) {
	items, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list document verifications", err)
	}
	return items, nil
}

func (s *documentService) SubmitDocument(ctx context.Context, req models.CreateDocumentRequest) (*models.DocumentVerification, error) {
	d, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, errors.NewDatabaseError("create document verification", err)
	}

	s.logger.Info("Document submitted for verification",
		zap.Int64("document_id", d.ID),
		zap.Int64("user_id", d.UserID),
		zap.String("document_type", d.DocumentType),
	)
	return d, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, id int64, req models.UpdateDocumentRequest) (*models.DocumentVerification, error) {
	d, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, errors.NewDatabaseError("update document verification", err)
	}
	if d == nil {
		return nil, errors.NewDocumentNotFoundError(id)
	}

	if req.Status.Present() {
		s.logger.Info("Document verification reviewed",
			zap.Int64("document_id", id),
			zap.String("status", d.Status),
		)
	}
	return d, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewDatabaseError("delete document verification", err)
	}
	if !deleted {
		return errors.NewDocumentNotFoundError(id)
	}
	return nil
}
