package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dealer-insights-api/internal/domain"
)

func TestTopN(t *testing.T) {
	rows := []domain.AggregateRow{
		{EntityID: 3, EntityLabel: "Loja C", Count: 4, TotalAmount: 900},
		{EntityID: 1, EntityLabel: "Loja A", Count: 10, TotalAmount: 2500},
		{EntityID: 2, EntityLabel: "Loja B", Count: 7, TotalAmount: 1800},
	}

	t.Run("ordena por valor liquidado decrescente com posições densas", func(t *testing.T) {
		ranked := TopN(rows, 10)

		assert.Len(t, ranked, 3)
		assert.Equal(t, 1, ranked[0].EntityID)
		assert.Equal(t, 1, ranked[0].Rank)
		assert.Equal(t, 2, ranked[1].EntityID)
		assert.Equal(t, 2, ranked[1].Rank)
		assert.Equal(t, 3, ranked[2].EntityID)
		assert.Equal(t, 3, ranked[2].Rank)
	})

	t.Run("corta no limite depois de ordenar", func(t *testing.T) {
		ranked := TopN(rows, 2)

		assert.Len(t, ranked, 2)
		assert.Equal(t, 1, ranked[0].EntityID)
		assert.Equal(t, 2, ranked[1].EntityID)
	})

	t.Run("empate em valor desempata por entity_id crescente", func(t *testing.T) {
		tied := []domain.AggregateRow{
			{EntityID: 2, EntityLabel: "Loja B", TotalAmount: 100},
			{EntityID: 1, EntityLabel: "Loja A", TotalAmount: 100},
		}

		ranked := TopN(tied, 10)

		assert.Equal(t, 1, ranked[0].EntityID)
		assert.Equal(t, 1, ranked[0].Rank)
		assert.Equal(t, 2, ranked[1].EntityID)
		assert.Equal(t, 2, ranked[1].Rank)
	})

	t.Run("agrupamento sem id numérico desempata pelo rótulo", func(t *testing.T) {
		tied := []domain.AggregateRow{
			{EntityID: 0, EntityLabel: "FinanMax", TotalAmount: 100},
			{EntityID: 0, EntityLabel: "Banco Azul", TotalAmount: 100},
		}

		ranked := TopN(tied, 10)

		assert.Equal(t, "Banco Azul", ranked[0].EntityLabel)
		assert.Equal(t, "FinanMax", ranked[1].EntityLabel)
	})

	t.Run("conjunto vazio produz lista vazia", func(t *testing.T) {
		ranked := TopN(nil, 10)

		assert.Empty(t, ranked)
	})

	t.Run("não altera a ordem do slice original", func(t *testing.T) {
		TopN(rows, 10)

		assert.Equal(t, 3, rows[0].EntityID)
		assert.Equal(t, 1, rows[1].EntityID)
	})
}

func TestRankOf(t *testing.T) {
	rows := []domain.AggregateRow{
		{EntityID: 3, TotalAmount: 900},
		{EntityID: 1, TotalAmount: 2500},
		{EntityID: 2, TotalAmount: 1800},
	}

	t.Run("retorna a posição com base 1", func(t *testing.T) {
		rank, ok := RankOf(rows, 2)

		assert.True(t, ok)
		assert.Equal(t, 2, rank)
	})

	t.Run("entidade sem movimento não é posição zero", func(t *testing.T) {
		rank, ok := RankOf(rows, 99)

		assert.False(t, ok)
		assert.Equal(t, 0, rank)
	})

	t.Run("último colocado continua ranqueado", func(t *testing.T) {
		rank, ok := RankOf(rows, 3)

		assert.True(t, ok)
		assert.Equal(t, 3, rank)
	})
}
