package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "picnic:city_exists:"

// RedisStore shares cached answers between instances. Expiry uses Redis TTLs.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (bool, bool, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return val == "1", true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, exists bool, ttl time.Duration) error {
	val := "0"
	if exists {
		val = "1"
	}
	return s.client.Set(ctx, keyPrefix+key, val, ttl).Err()
}
