package redis

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"trading-platform-backend/internal/features/market/models"
	"trading-platform-backend/internal/features/market/repository"
	platformredis "trading-platform-backend/internal/platform/redis"
)

const maxUpsertRetries = 5

// Quotes live at <ks>:market:quote:<symbol>; <ks>:market:symbols lists them
// and <ks>:market:seq allocates ids.
type marketRepository struct {
	client *redis.Client
	ks     platformredis.Keyspace
}

func NewMarketRepository(client *redis.Client, ks platformredis.Keyspace) repository.MarketRepository {
	return &marketRepository{client: client, ks: platformredis.Keyspace(ks.Key("market"))}
}

func (r *marketRepository) quoteKey(symbol string) string {
	return r.ks.Key("quote", symbol)
}

func (r *marketRepository) Get(ctx context.Context, symbol string) (*models.MarketQuote, error) {
	var q models.MarketQuote
	found, err := platformredis.GetJSON(ctx, r.client, r.quoteKey(symbol), &q)
	if err != nil || !found {
		return nil, err
	}
	return &q, nil
}

func (r *marketRepository) GetAll(ctx context.Context) ([]*models.MarketQuote, error) {
	symbols, err := r.client.SMembers(ctx, r.ks.Key("symbols")).Result()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(symbols))
	for i, s := range symbols {
		keys[i] = r.quoteKey(s)
	}

	quotes, err := platformredis.MGetJSON[models.MarketQuote](ctx, r.client, keys)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(quotes, func(a, b *models.MarketQuote) int { return cmp.Compare(a.ID, b.ID) })
	return quotes, nil
}

// Upsert watches the quote key so two writers racing on a new symbol cannot
// both assign it an id.
func (r *marketRepository) Upsert(ctx context.Context, req models.UpsertQuoteRequest) (*models.MarketQuote, error) {
	key := r.quoteKey(req.Symbol)

	for i := 0; i < maxUpsertRetries; i++ {
		var result models.MarketQuote
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			var existing models.MarketQuote
			found, err := platformredis.GetJSON(ctx, tx, key, &existing)
			if err != nil {
				return err
			}

			id := existing.ID
			if !found {
				if id, err = r.client.Incr(ctx, r.ks.Key("seq")).Result(); err != nil {
					return err
				}
			}

			result = req.Quote(id, time.Now().UTC())
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				if err := platformredis.SetJSON(ctx, pipe, key, &result); err != nil {
					return err
				}
				pipe.SAdd(ctx, r.ks.Key("symbols"), req.Symbol)
				return nil
			})
			return err
		}, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &result, nil
	}
	return nil, platformredis.ErrTooManyRetries
}

func (r *marketRepository) Delete(ctx context.Context, symbol string) (bool, error) {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.quoteKey(symbol))
		pipe.SRem(ctx, r.ks.Key("symbols"), symbol)
		return nil
	})
	if err != nil {
		return false, err
	}
	return del.Val() > 0, nil
}
