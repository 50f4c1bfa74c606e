package caching

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/dealer-insights-api/pkg/log"
)

// Entry é o que fica guardado sob uma chave: o payload serializado e o
// instante em que foi computado. O computed_at original é devolvido em
// todos os acertos dentro do TTL.
type Entry struct {
	Payload    json.RawMessage `json:"payload"`
	ComputedAt time.Time       `json:"computed_at"`
}

// Store é o backend chave-valor com TTL. Get retorna (nil, nil) quando a
// chave não existe ou expirou.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error
}

// ComputeFunc computa o payload em caso de falta no cache
type ComputeFunc func(ctx context.Context) (interface{}, error)

// Cache é a camada de memoização do pipeline de relatórios. O backend é
// uma otimização de desempenho, não uma dependência de correção: qualquer
// falha do Store rebaixa a chamada para computação direta.
type Cache struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Cache {
	return &Cache{
		store: store,
		now:   time.Now,
	}
}

// GetOrCompute devolve o payload guardado sob a chave, desserializado em
// dest, ou invoca compute e guarda o resultado com o TTL dado. Retorna o
// computed_at do payload e se houve acerto. Erros de compute são propagados
// sem serem cacheados; não há retentativa interna.
func (c *Cache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, dest interface{}, compute ComputeFunc) (time.Time, bool, error) {
	if c.store != nil {
		entry, err := c.store.Get(ctx, key)
		if err != nil {
			// Backend indisponível: computa direto e segue a requisição
			log.L.WithContext(ctx).WithError(err).WithField("cache_key", key).
				Warn("Cache indisponível na leitura, computando diretamente")
		} else if entry != nil {
			if err := json.Unmarshal(entry.Payload, dest); err != nil {
				return time.Time{}, false, errors.Wrap(err, "erro ao desserializar payload do cache")
			}
			return entry.ComputedAt, true, nil
		}
	}

	value, err := compute(ctx)
	if err != nil {
		return time.Time{}, false, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "erro ao serializar payload para o cache")
	}

	entry := &Entry{
		Payload:    payload,
		ComputedAt: c.now(),
	}

	if c.store != nil {
		if err := c.store.Set(ctx, key, entry, ttl); err != nil {
			log.L.WithContext(ctx).WithError(err).WithField("cache_key", key).
				Warn("Cache indisponível na escrita, resultado não guardado")
		}
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return time.Time{}, false, errors.Wrap(err, "erro ao desserializar payload computado")
	}

	return entry.ComputedAt, false, nil
}
