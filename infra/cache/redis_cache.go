package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/causehive/pkg/cache"
	"github.com/redis/go-redis/v9"
)

// RedisCache implements cache.Cache using Redis.
type RedisCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisCache creates a RedisCache from a redis:// URL.
func NewRedisCache(url, prefix string, logger *slog.Logger) (*RedisCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisCacheWithOptions(opt, prefix, logger), nil
}

// NewRedisCacheWithOptions creates a RedisCache from redis.Options.
func NewRedisCacheWithOptions(opt *redis.Options, prefix string, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(opt),
		prefix: prefix,
		logger: logger.With("cache", "redis"),
	}
}

func (r *RedisCache) key(key string) string {
	return r.prefix + key
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "key", key)
		return nil, cache.ErrCacheMiss
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "key", key, "error", err)
		return nil, err
	}
	r.logger.Debug("Redis cache hit", "key", key)
	return val, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		r.logger.Error("Redis cache set error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("Redis cache set", "key", key, "ttl", ttl)
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("Redis cache delete error", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping checks connectivity.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

var _ cache.Cache = (*RedisCache)(nil)
