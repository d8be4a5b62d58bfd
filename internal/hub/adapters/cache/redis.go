// Package cache implements the Redis-backed sensor reading cache.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"agrohub/internal/hub/config"
	svc "agrohub/internal/hub/ports/services"
	"agrohub/pkg/logger"
)

// sensorKey holds the last moisture reading. The TTL is the staleness bound:
// a cached value is served for at most that long before the device is polled
// again.
const sensorKey = "sensor:moisture"

// Error messages.
const (
	ErrorFailedToGet   = "failed to get value from redis"
	ErrorFailedToSet   = "failed to set value in redis"
	ErrorFailedToClose = "failed to close redis connection"
)

// SensorCache implements the SensorCache interface on Redis.
type SensorCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSensorCache creates the cache and verifies the Redis connection.
func NewSensorCache(ctx context.Context, cfg *config.RedisConfig) (*SensorCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddress(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &SensorCache{client: client, ttl: cfg.SensorTTL}, nil
}

// NewSensorCacheWithClient wires an existing client, used in tests.
func NewSensorCacheWithClient(client *redis.Client, ttl time.Duration) svc.SensorCache {
	return &SensorCache{client: client, ttl: ttl}
}

// Get returns the cached reading, or an empty string on a miss.
func (c *SensorCache) Get(ctx context.Context) (string, error) {
	log := logger.Log(ctx).With(zap.String("cache", "sensor"))

	value, err := c.client.Get(ctx, sensorKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return value, nil
}

// Set stores a reading under the configured TTL.
func (c *SensorCache) Set(ctx context.Context, value string) error {
	log := logger.Log(ctx).With(zap.String("cache", "sensor"))

	if err := c.client.Set(ctx, sensorKey, value, c.ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Close closes the Redis connection.
func (c *SensorCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
