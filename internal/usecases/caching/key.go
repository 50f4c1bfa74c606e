// Package caching memoiza o resultado do pipeline de relatórios atrás de
// chaves determinísticas por (identidade, consulta, balde de tempo)
package caching

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/dealer-insights-api/internal/domain"
)

// KeyBuilder monta chaves de cache determinísticas. O balde de tempo é o
// instante atual arredondado para baixo na grade de bucketWidth: requisições
// quase simultâneas caem no mesmo balde e compartilham o resultado, e a
// idade máxima de um payload fica limitada à largura do balde.
type KeyBuilder struct {
	bucketWidth time.Duration
}

func NewKeyBuilder(bucketWidth time.Duration) *KeyBuilder {
	if bucketWidth <= 0 {
		bucketWidth = 5 * time.Minute
	}

	return &KeyBuilder{bucketWidth: bucketWidth}
}

// Build compõe a chave a partir do papel e id do usuário, do nome lógico da
// consulta, dos parâmetros ordenados por nome e do balde de tempo. As chaves
// nunca vêm do cliente.
func (b *KeyBuilder) Build(identity domain.Identity, name string, params map[string]string, now time.Time) string {
	parts := []string{
		"dashboard",
		name,
		fmt.Sprintf("r%d", identity.Role),
		fmt.Sprintf("u%d", identity.UserID),
	}

	names := make([]string, 0, len(params))
	for param := range params {
		names = append(names, param)
	}
	sort.Strings(names)

	for _, param := range names {
		parts = append(parts, fmt.Sprintf("%s=%s", param, params[param]))
	}

	bucket := now.Truncate(b.bucketWidth)
	parts = append(parts, fmt.Sprintf("b%d", bucket.Unix()))

	return strings.Join(parts, ":")
}
