package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/caching"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	return NewRedisStore(client), server
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	newEntry := func(total float64) *caching.Entry {
		raw, _ := json.Marshal(map[string]float64{"total": total})
		return &caching.Entry{Payload: raw, ComputedAt: time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)}
	}

	t.Run("chave inexistente retorna nil sem erro", func(t *testing.T) {
		store, _ := newTestStore(t)

		entry, err := store.Get(ctx, "nada")

		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("set seguido de get preserva payload e computed_at", func(t *testing.T) {
		store, _ := newTestStore(t)
		original := newEntry(1500.0)

		require.NoError(t, store.Set(ctx, "k1", original, time.Minute))

		entry, err := store.Get(ctx, "k1")

		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.JSONEq(t, string(original.Payload), string(entry.Payload))
		assert.True(t, original.ComputedAt.Equal(entry.ComputedAt))
	})

	t.Run("entrada expira pelo TTL do Redis", func(t *testing.T) {
		store, server := newTestStore(t)

		require.NoError(t, store.Set(ctx, "k1", newEntry(1.0), time.Minute))

		server.FastForward(2 * time.Minute)

		entry, err := store.Get(ctx, "k1")

		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("payload corrompido devolve erro", func(t *testing.T) {
		store, server := newTestStore(t)

		require.NoError(t, server.Set("k1", "não é json"))

		_, err := store.Get(ctx, "k1")

		assert.Error(t, err)
	})
}
