package caching

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Total float64 `json:"total"`
}

// failingStore simula um backend indisponível
type failingStore struct {
	getCalls int
	setCalls int
}

func (s *failingStore) Get(context.Context, string) (*Entry, error) {
	s.getCalls++
	return nil, errors.New("conexão recusada")
}

func (s *failingStore) Set(context.Context, string, *Entry, time.Duration) error {
	s.setCalls++
	return errors.New("conexão recusada")
}

func TestCacheGetOrCompute(t *testing.T) {
	ctx := context.Background()

	t.Run("falta computa, guarda e retorna computed_at", func(t *testing.T) {
		store := NewMemoryStore()
		cache := New(store)

		computeCalls := 0
		var dest payload

		computedAt, hit, err := cache.GetOrCompute(ctx, "k1", time.Minute, &dest, func(context.Context) (interface{}, error) {
			computeCalls++
			return payload{Total: 1500.0}, nil
		})

		require.NoError(t, err)
		assert.False(t, hit)
		assert.False(t, computedAt.IsZero())
		assert.Equal(t, 1500.0, dest.Total)
		assert.Equal(t, 1, computeCalls)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("acerto não recomputa e preserva o computed_at original", func(t *testing.T) {
		store := NewMemoryStore()
		cache := New(store)

		var first payload
		firstAt, _, err := cache.GetOrCompute(ctx, "k1", time.Minute, &first, func(context.Context) (interface{}, error) {
			return payload{Total: 800.0}, nil
		})
		require.NoError(t, err)

		var second payload
		secondAt, hit, err := cache.GetOrCompute(ctx, "k1", time.Minute, &second, func(context.Context) (interface{}, error) {
			t.Fatal("não deveria recomputar em acerto")
			return nil, nil
		})

		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, firstAt, secondAt)
		assert.Equal(t, 800.0, second.Total)
	})

	t.Run("erro de compute é propagado e não é cacheado", func(t *testing.T) {
		store := NewMemoryStore()
		cache := New(store)

		computeErr := errors.New("banco fora do ar")
		var dest payload

		_, _, err := cache.GetOrCompute(ctx, "k1", time.Minute, &dest, func(context.Context) (interface{}, error) {
			return nil, computeErr
		})

		assert.True(t, errors.Is(err, computeErr))
		assert.Zero(t, store.Len())

		// A próxima chamada computa de novo
		_, hit, err := cache.GetOrCompute(ctx, "k1", time.Minute, &dest, func(context.Context) (interface{}, error) {
			return payload{Total: 10.0}, nil
		})
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("backend indisponível rebaixa para computação direta", func(t *testing.T) {
		store := &failingStore{}
		cache := New(store)

		var dest payload
		computedAt, hit, err := cache.GetOrCompute(ctx, "k1", time.Minute, &dest, func(context.Context) (interface{}, error) {
			return payload{Total: 42.0}, nil
		})

		require.NoError(t, err)
		assert.False(t, hit)
		assert.False(t, computedAt.IsZero())
		assert.Equal(t, 42.0, dest.Total)
		assert.Equal(t, 1, store.getCalls)
		assert.Equal(t, 1, store.setCalls)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	newEntry := func(total float64) *Entry {
		raw, _ := json.Marshal(payload{Total: total})
		return &Entry{Payload: raw, ComputedAt: time.Now()}
	}

	t.Run("chave inexistente retorna nil sem erro", func(t *testing.T) {
		store := NewMemoryStore()

		entry, err := store.Get(ctx, "nada")

		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("entrada expirada se comporta como falta", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, "k1", newEntry(1.0), time.Minute))

		// Avança o relógio além do TTL
		store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

		entry, err := store.Get(ctx, "k1")

		require.NoError(t, err)
		assert.Nil(t, entry)
		assert.Zero(t, store.Len())
	})

	t.Run("sweep remove apenas as entradas expiradas", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, "curta", newEntry(1.0), time.Minute))
		require.NoError(t, store.Set(ctx, "longa", newEntry(2.0), time.Hour))

		store.now = func() time.Time { return time.Now().Add(10 * time.Minute) }

		removed := store.Sweep()

		assert.Equal(t, 1, removed)
		assert.Equal(t, 1, store.Len())

		entry, err := store.Get(ctx, "longa")
		require.NoError(t, err)
		assert.NotNil(t, entry)
	})
}
