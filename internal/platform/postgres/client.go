package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"trading-platform-backend/internal/common/config"
	"trading-platform-backend/internal/common/logger"
)

type Client struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewClient(cfg *config.Config) (*Client, error) {
	logLevel := gormLogger.Error
	if cfg.Debug {
		logLevel = gormLogger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.GetDSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Настройка пула соединений
	sqlDB.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("host", cfg.Postgres.Host).
		Int("port", cfg.Postgres.Port).
		Str("database", cfg.Postgres.Database).
		Msg("PostgreSQL client initialized")

	return &Client{db: db, sqlDB: sqlDB}, nil
}

// GetDB возвращает экземпляр gorm
func (c *Client) GetDB() *gorm.DB {
	return c.db
}

// Migrate создает таблицы для переданных моделей
func (c *Client) Migrate(models ...interface{}) error {
	if err := c.db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close закрывает соединение с базой данных
func (c *Client) Close() error {
	return c.sqlDB.Close()
}

// HealthCheck проверяет здоровье базы данных
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.sqlDB.PingContext(ctx)
}
