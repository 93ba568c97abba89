// Package storage wires one repository per entity kind for the configured driver.
package storage

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"trading-platform-backend/internal/common/config"
	documentModels "trading-platform-backend/internal/features/document/models"
	documentRepo "trading-platform-backend/internal/features/document/repository"
	documentMemory "trading-platform-backend/internal/features/document/repository/memory"
	documentPostgres "trading-platform-backend/internal/features/document/repository/postgres"
	documentRedis "trading-platform-backend/internal/features/document/repository/redis"
	marketModels "trading-platform-backend/internal/features/market/models"
	marketRepo "trading-platform-backend/internal/features/market/repository"
	marketMemory "trading-platform-backend/internal/features/market/repository/memory"
	marketPostgres "trading-platform-backend/internal/features/market/repository/postgres"
	marketRedis "trading-platform-backend/internal/features/market/repository/redis"
	notificationModels "trading-platform-backend/internal/features/notification/models"
	notificationRepo "trading-platform-backend/internal/features/notification/repository"
	notificationMemory "trading-platform-backend/internal/features/notification/repository/memory"
	notificationPostgres "trading-platform-backend/internal/features/notification/repository/postgres"
	notificationRedis "trading-platform-backend/internal/features/notification/repository/redis"
	paymentModels "trading-platform-backend/internal/features/payment/models"
	paymentRepo "trading-platform-backend/internal/features/payment/repository"
	paymentMemory "trading-platform-backend/internal/features/payment/repository/memory"
	paymentPostgres "trading-platform-backend/internal/features/payment/repository/postgres"
	paymentRedis "trading-platform-backend/internal/features/payment/repository/redis"
	transactionModels "trading-platform-backend/internal/features/transaction/models"
	transactionRepo "trading-platform-backend/internal/features/transaction/repository"
	transactionMemory "trading-platform-backend/internal/features/transaction/repository/memory"
	transactionPostgres "trading-platform-backend/internal/features/transaction/repository/postgres"
	transactionRedis "trading-platform-backend/internal/features/transaction/repository/redis"
	userModels "trading-platform-backend/internal/features/user/models"
	userRepo "trading-platform-backend/internal/features/user/repository"
	userMemory "trading-platform-backend/internal/features/user/repository/memory"
	userPostgres "trading-platform-backend/internal/features/user/repository/postgres"
	userRedis "trading-platform-backend/internal/features/user/repository/redis"
	"trading-platform-backend/internal/platform/postgres"
	"trading-platform-backend/internal/platform/redis"
)

// Store owns every entity collection for the lifetime of the process.
type Store struct {
	Users         userRepo.UserRepository
	Transactions  transactionRepo.TransactionRepository
	Notifications notificationRepo.NotificationRepository
	Documents     documentRepo.DocumentRepository
	Payments      paymentRepo.PaymentRepository
	Market        marketRepo.MarketRepository

	driver string
	ping   func(ctx context.Context) error
	close  func() error
}

// Models lists the tables managed by the postgres driver.
func Models() []interface{} {
	return []interface{}{
		&userModels.User{},
		&transactionModels.Transaction{},
		&notificationModels.Notification{},
		&documentModels.DocumentVerification{},
		&paymentModels.PaymentSubmission{},
		&marketModels.MarketQuote{},
	}
}

// NewMemory returns an empty in-process store.
func NewMemory() *Store {
	return &Store{
		Users:         userMemory.NewUserRepository(),
		Transactions:  transactionMemory.NewTransactionRepository(),
		Notifications: notificationMemory.NewNotificationRepository(),
		Documents:     documentMemory.NewDocumentRepository(),
		Payments:      paymentMemory.NewPaymentRepository(),
		Market:        marketMemory.NewMarketRepository(),
		driver:        config.StorageMemory,
		ping:          func(context.Context) error { return nil },
		close:         func() error { return nil },
	}
}

// NewRedis keeps every key under prefix.
func NewRedis(client *goredis.Client, prefix string) *Store {
	ks := redis.Keyspace(prefix)
	return &Store{
		Users:         userRedis.NewUserRepository(client, ks),
		Transactions:  transactionRedis.NewTransactionRepository(client, ks),
		Notifications: notificationRedis.NewNotificationRepository(client, ks),
		Documents:     documentRedis.NewDocumentRepository(client, ks),
		Payments:      paymentRedis.NewPaymentRepository(client, ks),
		Market:        marketRedis.NewMarketRepository(client, ks),
		driver:        config.StorageRedis,
		ping:          func(ctx context.Context) error { return client.Ping(ctx).Err() },
		close:         client.Close,
	}
}

func NewPostgres(client *postgres.Client) *Store {
	db := client.GetDB()
	return &Store{
		Users:         userPostgres.NewPostgresRepository(db),
		Transactions:  transactionPostgres.NewPostgresRepository(db),
		Notifications: notificationPostgres.NewPostgresRepository(db),
		Documents:     documentPostgres.NewPostgresRepository(db),
		Payments:      paymentPostgres.NewPostgresRepository(db),
		Market:        marketPostgres.NewPostgresRepository(db),
		driver:        config.StoragePostgres,
		ping:          client.HealthCheck,
		close:         client.Close,
	}
}

// New opens the driver selected by cfg.Storage.Driver.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		logger.Info("Using in-memory storage")
		return NewMemory(), nil

	case config.StorageRedis:
		client, err := redis.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Using redis storage",
			zap.String("addr", cfg.RedisAddr()),
			zap.String("key_prefix", cfg.Redis.KeyPrefix),
		)
		return NewRedis(client.Client, cfg.Redis.KeyPrefix), nil

	case config.StoragePostgres:
		client, err := postgres.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.AutoMigrate {
			if err := client.Migrate(Models()...); err != nil {
				_ = client.Close()
				return nil, err
			}
			logger.Info("Database schema migrated")
		}
		logger.Info("Using postgres storage",
			zap.String("host", cfg.Postgres.Host),
			zap.String("database", cfg.Postgres.Database),
		)
		return NewPostgres(client), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func (s *Store) Driver() string {
	return s.driver
}

// Ping reports whether the backing store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Store) Close() error {
	return s.close()
}
