// Package cache implementa o backend Redis da camada de cache
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/dealer-insights-api/internal/config"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/caching"
)

// NewClient cria e testa um cliente Redis
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao Redis")
	}

	return client, nil
}

// RedisStore adapta o cliente Redis à interface caching.Store. O próprio
// Redis cuida da expiração por TTL, então não há varredura do nosso lado.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*caching.Entry, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler chave do Redis")
	}

	entry := &caching.Entry{}
	if err := json.Unmarshal(payload, entry); err != nil {
		return nil, errors.Wrap(err, "erro ao desserializar entrada do Redis")
	}

	return entry, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, entry *caching.Entry, ttl time.Duration) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar entrada para o Redis")
	}

	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "erro ao gravar chave no Redis")
	}

	return nil
}
