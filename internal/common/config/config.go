package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Драйверы хранилища
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port            int           `env:"PORT" envDefault:"8080"`
		Origins         []string      `env:"ORIGIN" envDefault:"http://localhost:3000" envSeparator:","`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
		IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
		SwaggerEnabled  bool          `env:"SWAGGER_ENABLED" envDefault:"true"`
	}

	Storage struct {
		// memory, redis, postgres
		Driver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	}

	Redis struct {
		Host      string `env:"REDIS_HOST" envDefault:"localhost"`
		Port      int    `env:"REDIS_PORT" envDefault:"6379"`
		Password  string `env:"REDIS_PASSWORD" envDefault:""`
		DB        int    `env:"REDIS_DB" envDefault:"0"`
		KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"trade"`
	}

	Postgres struct {
		Host            string        `env:"POSTGRES_HOST" envDefault:"localhost"`
		Port            int           `env:"POSTGRES_PORT" envDefault:"5432"`
		User            string        `env:"POSTGRES_USER" envDefault:"postgres"`
		Password        string        `env:"POSTGRES_PASSWORD" envDefault:""`
		Database        string        `env:"POSTGRES_DB" envDefault:"trading"`
		SSLMode         string        `env:"POSTGRES_SSLMODE" envDefault:"disable"`
		MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"25"`
		MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"5"`
		ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"1h"`
		AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"false"`
	}

	Market struct {
		// Заполнять котировки по умолчанию при старте
		Seed bool `env:"MARKET_SEED" envDefault:"true"`
		// Читать котировки из redis stream <REDIS_KEY_PREFIX>:market:feed
		FeedEnabled  bool   `env:"MARKET_FEED_ENABLED" envDefault:"false"`
		FeedConsumer string `env:"MARKET_FEED_CONSUMER" envDefault:"trading_worker_1"`
	}
}

// GetDSN собирает строку подключения к PostgreSQL
func (c *Config) GetDSN() string {
	p := c.Postgres
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// RedisAddr возвращает адрес redis в формате host:port
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	// .env может отсутствовать, в production переменные задаются напрямую
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (expected memory, redis or postgres)", c.Storage.Driver)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Server.Port)
	}
	return nil
}
