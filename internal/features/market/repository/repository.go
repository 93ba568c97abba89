package repository

import (
	"context"

	"trading-platform-backend/internal/features/market/models"
)

// MarketRepository is keyed by symbol. Get returns nil, nil for an unknown symbol.
type MarketRepository interface {
	Get(ctx context.Context, symbol string) (*models.MarketQuote, error)
	// GetAll returns every quote ordered by id.
	GetAll(ctx context.Context) ([]*models.MarketQuote, error)
	// Upsert keeps the id of an existing symbol, otherwise takes the next one
	// from a counter that never reuses ids.
	Upsert(ctx context.Context, req models.UpsertQuoteRequest) (*models.MarketQuote, error)
	Delete(ctx context.Context, symbol string) (bool, error)
}
