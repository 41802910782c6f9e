package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis, letting several preview server
// instances share one render cache.
type RedisCache struct {
	client *redis.Client
}

// Connection probing on startup. The first ping often races a Redis
// container coming up, so transient failures are retried with backoff.
const (
	pingAttempts = 3
	pingBackoff  = 250 * time.Millisecond
)

// NewRedisCache connects to Redis using a URL of the form
// redis://[user:pass@]host:port[/db] and verifies the connection.
func NewRedisCache(ctx context.Context, url string) (Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := pingWithRetry(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisCache{client: client}, nil
}

// pingWithRetry verifies the connection, doubling the delay after each
// failed attempt.
func pingWithRetry(ctx context.Context, client *redis.Client) error {
	delay := pingBackoff
	var lastErr error

	for i := 0; i < pingAttempts; i++ {
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return nil
		}
		if i < pingAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value. Redis treats a zero expiration as "no expiration",
// matching the Cache contract.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes a value; missing keys are not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close releases the client's connections.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
