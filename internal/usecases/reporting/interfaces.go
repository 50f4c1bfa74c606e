// Package reporting compõe o pipeline de analytics: escopo, janela de
// tempo, agregação, ranking, série diária e taxa de atingimento, tudo
// atrás da camada de cache
package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/dealer-insights-api/internal/domain"
)

// Limites de parâmetros das facetas
const (
	MaxStoreRankingLimit     = 50
	DefaultStoreRankingLimit = 10
	MaxTopListLimit          = 20
	DefaultTopListLimit      = 5
	MaxTrendDays             = 90
	DefaultTrendDays         = 30
)

type StoreRankingParams struct {
	Period string
	Limit  int
}

type TopListParams struct {
	Type   string
	Period string
	Limit  int
}

type KPIParams struct {
	Days    int
	StoreID *int
}

// ResultMeta descreve de onde veio o payload: o computed_at original da
// entrada de cache e se a chamada foi um acerto
type ResultMeta struct {
	ComputedAt time.Time
	CacheHit   bool
	CacheKey   string
}

// Reporter é a fachada das facetas de analytics. Cada operação recebe a
// identidade do chamador e devolve um payload serializável em JSON.
type Reporter interface {
	Overview(ctx context.Context, identity domain.Identity) (*domain.OverviewData, *ResultMeta, error)
	StoreRanking(ctx context.Context, identity domain.Identity, params StoreRankingParams) (*domain.StoreRankingData, *ResultMeta, error)
	TopList(ctx context.Context, identity domain.Identity, params TopListParams) (*domain.TopListData, *ResultMeta, error)
	SelfRank(ctx context.Context, identity domain.Identity) (*domain.SelfRankData, *ResultMeta, error)
	SalesTrend(ctx context.Context, identity domain.Identity, days int) (*domain.SalesTrendData, *ResultMeta, error)
	KPI(ctx context.Context, identity domain.Identity, params KPIParams) (*domain.KPIData, *ResultMeta, error)
}
