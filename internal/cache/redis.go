package cache

import (
	"context"
	"errors"
	"time"

	"github.com/itsDrac/bidhub/pkg/config"
	"github.com/redis/go-redis/v9"
)

var (
	ErrInvalidTimeout = errors.New("cache: timeout must be > 0")
)

// Cacher is the subset of redis used by the notification queue.
type Cacher interface {
	Push(ctx context.Context, key, val string) error
	Pop(ctx context.Context, key string, timeout time.Duration) (string, bool, error)
	Len(ctx context.Context, key string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Addr == "" {
		return nil, errors.New("REDIS_ADDR is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewFromClient(client), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Push appends val to the head of the list stored at key.
func (r *RedisCache) Push(ctx context.Context, key, val string) error {
	return r.client.LPush(ctx, key, val).Err()
}

// Pop removes and returns the tail of the list at key, waiting up to timeout.
// It reports false when nothing arrived in time.
func (r *RedisCache) Pop(ctx context.Context, key string, timeout time.Duration) (string, bool, error) {
	if timeout <= 0 {
		return "", false, ErrInvalidTimeout
	}
	res, err := r.client.BRPop(ctx, timeout, key).Result()
	if errors.Is(err, redis.Nil) {
		// timed out - not an error
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	// BRPOP replies with [key, value]
	if len(res) != 2 {
		return "", false, nil
	}
	return res[1], true, nil
}

func (r *RedisCache) Len(ctx context.Context, key string) (int64, error) {
	return r.client.LLen(ctx, key).Result()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
