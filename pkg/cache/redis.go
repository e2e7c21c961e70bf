package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a cache backed by a Redis server, for deployments running more
// than one instance of the HTTP service.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to the Redis server at addr (host:port) and verifies
// the connection with a ping.
func NewRedis(ctx context.Context, addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &Redis{client: client}, nil
}

// Get fetches the entry for key. Redis handles expiry server-side.
func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores the entry for key with a server-side TTL.
func (c *Redis) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, data, effectiveTTL(ttl)).Err()
}

// Delete removes the entry for key.
func (c *Redis) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close closes the client connection pool.
func (c *Redis) Close() error {
	return c.client.Close()
}

var _ Cache = (*Redis)(nil)
