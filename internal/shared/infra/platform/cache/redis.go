package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache antepone namespace a todas las claves para poder compartir la
// instancia de Redis con otros servicios.
type RedisCache struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

var _ Cache = (*RedisCache)(nil)

func NewRedisCache(client *redis.Client, namespace string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, namespace: namespace, ttl: ttl}
}

func (c *RedisCache) key(k string) string {
	if c.namespace == "" {
		return k
	}
	return c.namespace + ":" + k
}

func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return decode(data, dest)
}

func (c *RedisCache) Set(ctx context.Context, key string, val interface{}, ttlSecs int) error {
	data, err := encode(val)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), data, ttlOrDefault(ttlSecs, c.ttl)).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}
