package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trading-platform-backend/internal/common/config"
	"trading-platform-backend/internal/common/logger"
)

// Client wraps go-redis client to allow future extensions.
type Client struct {
	*redis.Client
}

// Open creates a new Redis client and pings it to validate the connection.
func Open(ctx context.Context, addr, password string, db int) (*Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("empty redis addr")
	}
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return &Client{Client: c}, nil
}

// NewClient opens the client described by cfg.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	c, err := Open(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr(), err)
	}

	logger.Info().
		Str("addr", cfg.RedisAddr()).
		Int("db", cfg.Redis.DB).
		Msg("Redis client initialized")

	return c, nil
}

// Keyspace builds namespaced keys: "<prefix>:<part>:<part>".
type Keyspace string

func (k Keyspace) Key(parts ...interface{}) string {
	b := strings.Builder{}
	b.WriteString(string(k))
	for _, p := range parts {
		b.WriteByte(':')
		b.WriteString(fmt.Sprint(p))
	}
	return b.String()
}

const maxWatchRetries = 5

// ErrTooManyRetries is returned when optimistic updates keep colliding.
var ErrTooManyRetries = errors.New("redis: too many concurrent modifications")

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type setter interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type multiGetter interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

// GetJSON loads key into dest. Missing keys report found == false.
func GetJSON(ctx context.Context, c getter, key string, dest interface{}) (bool, error) {
	data, err := c.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value at key without expiry.
func SetJSON(ctx context.Context, c setter, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return c.Set(ctx, key, data, 0).Err()
}

// MGetJSON loads every existing key into a fresh T; missing keys are skipped.
func MGetJSON[T any](ctx context.Context, c multiGetter, keys []string) ([]*T, error) {
	if len(keys) == 0 {
		return []*T{}, nil
	}
	vals, err := c.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(vals))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var item T
		if err := json.Unmarshal([]byte(s), &item); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", keys[i], err)
		}
		out = append(out, &item)
	}
	return out, nil
}

// UpdateJSON applies mutate to the record at key under WATCH, retrying when
// another writer touched the key in between. A missing key returns nil, nil.
func UpdateJSON[T any](ctx context.Context, c *redis.Client, key string, mutate func(*T)) (*T, error) {
	for i := 0; i < maxWatchRetries; i++ {
		var result *T
		err := c.Watch(ctx, func(tx *redis.Tx) error {
			var item T
			found, err := GetJSON(ctx, tx, key, &item)
			if err != nil || !found {
				return err
			}
			mutate(&item)
			data, err := json.Marshal(&item)
			if err != nil {
				return fmt.Errorf("failed to marshal value: %w", err)
			}
			if _, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, data, 0)
				return nil
			}); err != nil {
				return err
			}
			result = &item
			return nil
		}, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, ErrTooManyRetries
}
