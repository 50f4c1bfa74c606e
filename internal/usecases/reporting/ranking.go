package reporting

import (
	"sort"

	"github.com/vfg2006/dealer-insights-api/internal/domain"
)

// TopN ordena as linhas agregadas por valor liquidado decrescente, corta no
// limite e anota posições densas com base 1. O desempate é determinístico:
// ordenação secundária por entity_id crescente e, para chaves sem id
// numérico (agrupamento por fornecedor), pelo rótulo.
func TopN(rows []domain.AggregateRow, limit int) []domain.RankedEntry {
	sorted := sortByTotalDesc(rows)

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	ranked := make([]domain.RankedEntry, 0, len(sorted))
	for i, row := range sorted {
		ranked = append(ranked, domain.RankedEntry{
			AggregateRow: row,
			Rank:         i + 1,
		})
	}

	return ranked
}

// RankOf retorna a posição (base 1) da entidade dentro do conjunto ordenado.
// O segundo retorno é falso quando a entidade não tem nenhuma linha na
// janela, um resultado distinto de "ficou em último" — nunca posição 0.
func RankOf(rows []domain.AggregateRow, entityID int) (int, bool) {
	sorted := sortByTotalDesc(rows)

	for i, row := range sorted {
		if row.EntityID == entityID {
			return i + 1, true
		}
	}

	return 0, false
}

func sortByTotalDesc(rows []domain.AggregateRow) []domain.AggregateRow {
	sorted := make([]domain.AggregateRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalAmount != sorted[j].TotalAmount {
			return sorted[i].TotalAmount > sorted[j].TotalAmount
		}
		if sorted[i].EntityID != sorted[j].EntityID {
			return sorted[i].EntityID < sorted[j].EntityID
		}
		return sorted[i].EntityLabel < sorted[j].EntityLabel
	})

	return sorted
}
