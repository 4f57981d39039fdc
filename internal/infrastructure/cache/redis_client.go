// Package cache provides the Redis connection layer used by the
// guest session store and the plan preview cache.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/infrastructure/config"
)

// ErrKeyNotFound is returned when a key does not exist in Redis
var ErrKeyNotFound = fmt.Errorf("key not found in cache")

// RedisClient wraps the go-redis client with connection management
type RedisClient struct {
	client redis.UniversalClient
	config *config.RedisConfig
	logger *zap.Logger
}

// NewRedisClient creates a Redis client and verifies connectivity
func NewRedisClient(cfg *config.RedisConfig, logger *zap.Logger) (*RedisClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}

	opts := &redis.UniversalOptions{
		Addrs:      []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Password:   cfg.Password,
		DB:         cfg.Database,
		MaxRetries: cfg.MaxRetries,
		PoolSize:   cfg.PoolSize,

		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	client := redis.NewUniversalClient(opts)

	redisClient := &RedisClient{
		client: client,
		config: cfg,
		logger: logger.Named("redis"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis client initialized",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.Int("database", cfg.Database))

	return redisClient, nil
}

// Ping tests the Redis connection
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		r.logger.Error("Redis ping failed", zap.Error(err))
		return err
	}
	return nil
}

// Get retrieves a value. Returns ErrKeyNotFound when the key is absent.
func (r *RedisClient) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		r.logger.Error("Redis GET failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// Set stores a value with a TTL
func (r *RedisClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Redis SET failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes keys
func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("Redis DEL failed", zap.Strings("keys", keys), zap.Error(err))
		return err
	}
	return nil
}

// Expire refreshes the TTL on a key
func (r *RedisClient) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
		r.logger.Error("Redis EXPIRE failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}
