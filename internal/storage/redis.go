package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores query results as JSON blobs with a short TTL. It backs
// the search and stats endpoints; a miss or any Redis failure falls through
// to the database.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}

// Invalidate removes every key matching the given patterns.
func (c *RedisCache) Invalidate(ctx context.Context, patterns ...string) error {
	for _, pattern := range patterns {
		keys, err := c.Client.Keys(ctx, pattern).Result()
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			continue
		}
		if err := c.Client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return nil
}
