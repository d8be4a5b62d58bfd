package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrohub/internal/hub/adapters/cache"
	svc "agrohub/internal/hub/ports/services"
)

func newTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, svc.SensorCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return mr, cache.NewSensorCacheWithClient(client, ttl)
}

func TestSensorCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns an empty string", func(t *testing.T) {
		_, sensorCache := newTestCache(t, 10*time.Second)

		value, err := sensorCache.Get(ctx)

		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("set then get returns the reading", func(t *testing.T) {
		_, sensorCache := newTestCache(t, 10*time.Second)

		require.NoError(t, sensorCache.Set(ctx, "512"))

		value, err := sensorCache.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "512", value)
	})

	t.Run("reading expires after the ttl", func(t *testing.T) {
		mr, sensorCache := newTestCache(t, 10*time.Second)

		require.NoError(t, sensorCache.Set(ctx, "512"))
		mr.FastForward(11 * time.Second)

		value, err := sensorCache.Get(ctx)
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}
