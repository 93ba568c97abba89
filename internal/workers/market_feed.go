package workers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"trading-platform-backend/internal/common/validation"
	"trading-platform-backend/internal/features/market/models"
	"trading-platform-backend/internal/features/market/service"
)

const (
	marketFeedGroup = "trading_backend_consumers"
	feedBatchSize   = 10
)

// MarketFeedWorker consumes quote updates published to a redis stream and
// upserts them into the market cache. Each message carries the fields of an
// UpsertQuoteRequest: symbol, price, change24h, changePercent24h and an
// optional volume24h.
type MarketFeedWorker struct {
	rdb      *redis.Client
	market   service.MarketService
	stream   string
	consumer string
	block    time.Duration
	logger   *zap.Logger
}

func NewMarketFeedWorker(rdb *redis.Client, market service.MarketService, stream, consumer string, logger *zap.Logger) *MarketFeedWorker {
	return &MarketFeedWorker{
		rdb:      rdb,
		market:   market,
		stream:   stream,
		consumer: consumer,
		block:    5 * time.Second,
		logger:   logger.With(zap.String("stream", stream), zap.String("consumer", consumer)),
	}
}

// EnsureGroup creates the stream and consumer group when missing.
func (w *MarketFeedWorker) EnsureGroup(ctx context.Context) error {
	err := w.rdb.XGroupCreateMkStream(ctx, w.stream, marketFeedGroup, "$").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

// Start blocks until ctx is cancelled.
func (w *MarketFeedWorker) Start(ctx context.Context) {
	if err := w.EnsureGroup(ctx); err != nil {
		w.logger.Error("Failed to create consumer group", zap.Error(err))
	}

	w.logger.Info("Starting market feed worker")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping market feed worker")
			return
		default:
			if _, err := w.Poll(ctx); err != nil {
				if ctx.Err() != nil {
					continue
				}
				w.logger.Warn("Failed to read market feed", zap.Error(err))
				time.Sleep(time.Second)
			}
		}
	}
}

// Poll reads one batch, applies it and acknowledges every message, including
// malformed ones, so a bad payload is not redelivered forever.
func (w *MarketFeedWorker) Poll(ctx context.Context) (int, error) {
	entries, err := w.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    marketFeedGroup,
		Consumer: w.consumer,
		Streams:  []string{w.stream, ">"},
		Count:    feedBatchSize,
		Block:    w.block,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, stream := range entries {
		for _, msg := range stream.Messages {
			if err := w.apply(ctx, msg.Values); err != nil {
				w.logger.Warn("Skipping market feed message",
					zap.String("message_id", msg.ID),
					zap.Error(err),
				)
			} else {
				applied++
			}
			if err := w.rdb.XAck(ctx, w.stream, marketFeedGroup, msg.ID).Err(); err != nil {
				return applied, err
			}
		}
	}
	return applied, nil
}

func (w *MarketFeedWorker) apply(ctx context.Context, values map[string]interface{}) error {
	req, err := ParseQuoteMessage(values)
	if err != nil {
		return err
	}
	_, err = w.market.UpsertQuote(ctx, req)
	return err
}

// ParseQuoteMessage validates a stream entry the same way POST /market
// validates its body.
func ParseQuoteMessage(values map[string]interface{}) (models.UpsertQuoteRequest, error) {
	field := func(name string) string {
		s, _ := values[name].(string)
		return strings.TrimSpace(s)
	}

	req := models.UpsertQuoteRequest{
		Symbol:           field("symbol"),
		Price:            field("price"),
		Change24h:        field("change24h"),
		ChangePercent24h: field("changePercent24h"),
	}
	if err := validation.ValidateRequiredString(req.Symbol, validation.MaxSymbolLength); err != nil {
		return req, fmt.Errorf("symbol %w", err)
	}

	decimals := []struct {
		name  string
		value string
		spec  validation.DecimalSpec
	}{
		{"price", req.Price, validation.Price},
		{"change24h", req.Change24h, validation.Percent},
		{"changePercent24h", req.ChangePercent24h, validation.Percent},
	}
	for _, d := range decimals {
		if _, err := validation.ParseDecimal(d.value, d.spec); err != nil {
			return req, fmt.Errorf("%s %w", d.name, err)
		}
	}

	if v := field("volume24h"); v != "" {
		if _, err := validation.ParseDecimal(v, validation.Volume); err != nil {
			return req, fmt.Errorf("volume24h %w", err)
		}
		req.Volume24h = &v
	}
	return req, nil
}
