package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the small key/value surface the order service needs. Get returns
// an empty string and no error on a miss.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

type redisCache struct {
	client      *redis.Client
	serviceName string
}

// NewRedisCache returns a Cache backed by the Redis server at addr. Keys are
// namespaced with serviceName.
func NewRedisCache(addr, serviceName string) (Cache, func() error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &redisCache{
		client:      client,
		serviceName: serviceName,
	}, client.Close
}

func (r redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %q: %w", key, err)
	}
	return nil
}

func (r redisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis: get %q: %w", key, err)
	}
	return val, nil
}

func (r redisCache) GenerateKey(operation, key string) string {
	return GenerateKey(r.serviceName, operation, key)
}

// GenerateKey builds the "<service>:<operation>:<key>" layout shared by every
// Cache implementation.
func GenerateKey(service, operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", service, operation, key)
}
