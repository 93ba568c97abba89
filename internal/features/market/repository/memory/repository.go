package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"trading-platform-backend/internal/features/market/models"
	"trading-platform-backend/internal/features/market/repository"
)

type marketRepository struct {
	mu     sync.RWMutex
	quotes map[string]models.MarketQuote
	seq    int64
}

func NewMarketRepository() repository.MarketRepository {
	return &marketRepository{quotes: make(map[string]models.MarketQuote)}
}

func (r *marketRepository) Get(_ context.Context, symbol string) (*models.MarketQuote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.quotes[symbol]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (r *marketRepository) GetAll(_ context.Context) ([]*models.MarketQuote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.MarketQuote, 0, len(r.quotes))
	for _, q := range r.quotes {
		q := q
		out = append(out, &q)
	}
	slices.SortFunc(out, func(a, b *models.MarketQuote) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *marketRepository) Upsert(_ context.Context, req models.UpsertQuoteRequest) (*models.MarketQuote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := int64(0)
	if existing, ok := r.quotes[req.Symbol]; ok {
		id = existing.ID
	} else {
		r.seq++
		id = r.seq
	}

	q := req.Quote(id, time.Now().UTC())
	r.quotes[req.Symbol] = q
	return &q, nil
}

func (r *marketRepository) Delete(_ context.Context, symbol string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.quotes[symbol]; !ok {
		return false, nil
	}
	delete(r.quotes, symbol)
	return true, nil
}
