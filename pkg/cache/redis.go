package cache

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/windowgram/pkg/errors"
)

// DefaultRedisPrefix namespaces keys written by RedisCache.
const DefaultRedisPrefix = "windowgram:"

// RedisCache stores entries in Redis. Transient failures are retried with
// DefaultBackoff.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisCache connects to the Redis server at addr and verifies the
// connection with PING.
func NewRedisCache(ctx context.Context, addr string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeCache, err, "connect to redis at %s", addr)
	}
	return NewRedisCacheFromClient(client, DefaultRedisPrefix), nil
}

// NewRedisCacheFromClient wraps an existing client. Every key is prefixed
// with prefix.
func NewRedisCacheFromClient(client redis.UniversalClient, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	hit := false
	err := RetryWithBackoff(ctx, DefaultBackoff, func() error {
		b, err := c.client.Get(ctx, c.prefix+key).Bytes()
		switch {
		case stderrors.Is(err, redis.Nil):
			return nil
		case err != nil:
			return transient(err)
		}
		data, hit = b, true
		return nil
	})
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeCache, err, "redis get")
	}
	return data, hit, nil
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := RetryWithBackoff(ctx, DefaultBackoff, func() error {
		return transient(c.client.Set(ctx, c.prefix+key, data, ttl).Err())
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeCache, err, "redis set")
	}
	return nil
}

// Delete implements Cache.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeCache, err, "redis delete")
	}
	return nil
}

// Clear deletes every key under the cache prefix.
func (c *RedisCache) Clear(ctx context.Context) (int, error) {
	count := 0
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 256).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return count, errors.Wrap(errors.ErrCodeCache, err, "redis clear")
		}
		count++
	}
	if err := iter.Err(); err != nil {
		return count, errors.Wrap(errors.ErrCodeCache, err, "redis clear")
	}
	return count, nil
}

// Close implements Cache.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// transient marks connection-level failures as retryable. Context errors
// and server replies are final.
func transient(err error) error {
	if err == nil || stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var rerr redis.Error
	if stderrors.As(err, &rerr) {
		return err
	}
	return Retryable(err)
}

var (
	_ Cache   = (*RedisCache)(nil)
	_ Clearer = (*RedisCache)(nil)
)
