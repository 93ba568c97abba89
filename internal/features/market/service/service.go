package service

import (
	"context"

	"go.uber.org/zap"

	"trading-platform-backend/internal/common/errors"
	"trading-platform-backend/internal/features/market/models"
	"trading-platform-backend/internal/features/market/repository"
)

type MarketService interface {
	GetQuote(ctx context.Context, symbol string) (*models.MarketQuote, error)
	GetAllQuotes(ctx context.Context) ([]*models.MarketQuote, error)
	UpsertQuote(ctx context.Context, req models.UpsertQuoteRequest) (*models.MarketQuote, error)
	DeleteQuote(ctx context.Context, symbol string) error
	// Seed upserts the default quote list.
	Seed(ctx context.Context) error
}

type marketService struct {
	repo   repository.MarketRepository
	logger *zap.Logger
}

func NewMarketService(repo repository.MarketRepository, logger *zap.Logger) MarketService {
	return &marketService{repo: repo, logger: logger}
}

func (s *marketService) GetQuote(ctx context.Context, symbol string) (*models.MarketQuote, error) {
	q, err := s.repo.Get(ctx, symbol)
	if err != nil {
		return nil, errors.NewDatabaseError("get market data", err)
	}
	if q == nil {
		return nil, errors.NewMarketDataNotFoundError(symbol)
	}
	return q, nil
}

func (s *marketService) GetAllQuotes(ctx context.Context) ([]*models.MarketQuote, error) {
	quotes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list market data", err)
	}
	return quotes, nil
}

func (s *marketService) UpsertQuote(ctx context.Context, req models.UpsertQuoteRequest) (*models.MarketQuote, error) {
	q, err := s.repo.Upsert(ctx, req)
	if err != nil {
		return nil, errors.NewDatabaseError("upsert market data", err)
	}

	s.logger.Debug("Market quote updated",
		zap.String("symbol", q.Symbol),
		zap.String("price", q.Price),
	)
	return q, nil
}

func (s *marketService) DeleteQuote(ctx context.Context, symbol string) error {
	deleted, err := s.repo.Delete(ctx, symbol)
	if err != nil {
		return errors.NewDatabaseError("delete market data", err)
	}
	if !deleted {
		return errors.NewMarketDataNotFoundError(symbol)
	}
	return nil
}

func (s *marketService) Seed(ctx context.Context) error {
	for _, req := range models.DefaultQuotes {
		if _, err := s.repo.Upsert(ctx, req); err != nil {
			return errors.NewDatabaseError("seed market data", err).WithDetail("symbol", req.Symbol)
		}
	}

	s.logger.Info("Market data seeded", zap.Int("symbols", len(models.DefaultQuotes)))
	return nil
}
