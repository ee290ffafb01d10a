package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shortly/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	urlKeyPrefix    = "url:"
	seenKeyPrefix   = "seen:"
	rateKeyPrefix   = "rate:"
	configKeyPrefix = "config:"
)

// RedisCache handles Redis operations. Everything stored here is advisory:
// the URL cache is reconstructible from MySQL, dedupe markers and rate
// counters expire on their own. Callers treat any failure as a miss.
type RedisCache struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(cfg *config.RedisConfig) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisCache{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (c *RedisCache) GetClient() *redis.Client {
	return c.client
}

// GetURL retrieves a cached code -> target URL mapping. Returns ErrCacheMiss
// when the key is absent.
func (c *RedisCache) GetURL(ctx context.Context, code string) (string, error) {
	val, err := c.client.Get(ctx, urlKeyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

// PutURL caches a code -> target URL mapping with the given TTL.
// Unconditional overwrite.
func (c *RedisCache) PutURL(ctx context.Context, code, targetURL string, ttl time.Duration) error {
	return c.client.Set(ctx, urlKeyPrefix+code, targetURL, ttl).Err()
}

// DeleteURL evicts a cached mapping, used when a link is deactivated so the
// cache cannot keep serving it for the rest of its TTL
func (c *RedisCache) DeleteURL(ctx context.Context, code string) error {
	return c.client.Del(ctx, urlKeyPrefix+code).Err()
}

// MarkSeen sets a dedupe marker for (code, client, time bucket) if absent.
// Returns true when the marker was newly created, false when a duplicate
// signal arrived inside the same bucket.
func (c *RedisCache) MarkSeen(ctx context.Context, code, clientID string, bucket int64, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("%s%s:%s:%d", seenKeyPrefix, code, clientID, bucket)
	return c.client.SetNX(ctx, key, 1, ttl).Result()
}

// CountRequest bumps the fixed-window request counter for a client IP and
// returns the running count. The window starts on the first request. The
// deadline rides along as EXPIRE NX on every call, so a counter that lost
// its TTL picks one up on the next request instead of sticking forever.
func (c *RedisCache) CountRequest(ctx context.Context, clientIP string, window time.Duration) (int64, error) {
	key := rateKeyPrefix + clientIP
	pipe := c.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return count.Val(), nil
}

// SetConfig mirrors a dynamic config value into Redis for fast reads
func (c *RedisCache) SetConfig(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, configKeyPrefix+key, value, 0).Err()
}

// GetConfig reads a dynamic config value. Returns ErrCacheMiss when unset.
func (c *RedisCache) GetConfig(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, configKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

// Info returns the raw server INFO payload for the admin metrics endpoint
func (c *RedisCache) Info(ctx context.Context) (string, error) {
	return c.client.Info(ctx).Result()
}

// Ping checks Redis connectivity
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
