package reporting

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/dealer-insights-api/infrastructure/repository"
	"github.com/vfg2006/dealer-insights-api/internal/config"
	"github.com/vfg2006/dealer-insights-api/internal/domain"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/caching"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/scoping"
	"github.com/vfg2006/dealer-insights-api/pkg/log"
)

// ErrInvalidParameter indica um parâmetro fora do intervalo permitido ou
// fora do escopo do chamador
var ErrInvalidParameter = errors.New("parâmetro inválido")

// Service implementa Reporter compondo os repositórios de leitura com a
// camada de cache. Cada faceta passa primeiro pelo resolvedor de escopo;
// nenhuma consulta chega ao banco sem o filtro do chamador.
type Service struct {
	cfg         *config.Config
	saleRepo    repository.SaleRepository
	goalRepo    repository.GoalRepository
	networkRepo repository.NetworkRepository
	cache       *caching.Cache
	keys        *caching.KeyBuilder
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	saleRepo repository.SaleRepository,
	goalRepo repository.GoalRepository,
	networkRepo repository.NetworkRepository,
	cache *caching.Cache,
	keys *caching.KeyBuilder,
) *Service {
	return &Service{
		cfg:         cfg,
		saleRepo:    saleRepo,
		goalRepo:    goalRepo,
		networkRepo: networkRepo,
		cache:       cache,
		keys:        keys,
		now:         time.Now,
	}
}

// Overview retorna os totais do escopo do chamador: tamanho da rede
// visível, movimento do mês e do dia e a taxa de atingimento da meta
func (s *Service) Overview(ctx context.Context, identity domain.Identity) (*domain.OverviewData, *ResultMeta, error) {
	scope, err := scoping.Resolve(identity)
	if err != nil {
		return nil, nil, err
	}

	key := s.keys.Build(identity, "overview", nil, s.now())
	data := &domain.OverviewData{}

	meta, err := s.through(ctx, key, data, func(ctx context.Context) (interface{}, error) {
		return s.computeOverview(ctx, identity, scope)
	})
	if err != nil {
		return nil, nil, err
	}

	return data, meta, nil
}

func (s *Service) computeOverview(ctx context.Context, identity domain.Identity, scope domain.ScopeFilter) (*domain.OverviewData, error) {
	overview := &domain.OverviewData{}

	var err error
	if overview.TotalStores, err = s.networkRepo.CountStores(ctx, scope); err != nil {
		return nil, errors.Wrap(err, "erro ao contar lojas")
	}
	if overview.TotalBranches, err = s.networkRepo.CountBranches(ctx, scope); err != nil {
		return nil, errors.Wrap(err, "erro ao contar regionais")
	}
	if overview.TotalUsers, err = s.networkRepo.CountUsers(ctx, scope); err != nil {
		return nil, errors.Wrap(err, "erro ao contar usuários")
	}

	now := s.now()

	monthWindow, err := ResolveWindow(PeriodThisMonth, now, now)
	if err != nil {
		return nil, err
	}

	month, err := s.aggregateWhole(ctx, scope, monthWindow, nil)
	if err != nil {
		return nil, err
	}
	overview.MonthActivations = month.Count
	overview.MonthSales = month.TotalAmount

	todayWindow, err := ResolveWindow(PeriodDaily, now, now)
	if err != nil {
		return nil, err
	}

	today, err := s.aggregateWhole(ctx, scope, todayWindow, nil)
	if err != nil {
		return nil, err
	}
	overview.TodayActivations = today.Count
	overview.TodaySales = today.TotalAmount

	overview.AchievementRate, err = s.achievementForScope(ctx, identity, overview.MonthSales)
	if err != nil {
		return nil, err
	}

	return overview, nil
}

// StoreRanking retorna o ranking de lojas do escopo no período pedido
func (s *Service) StoreRanking(ctx context.Context, identity domain.Identity, params StoreRankingParams) (*domain.StoreRankingData, *ResultMeta, error) {
	scope, err := scoping.Resolve(identity)
	if err != nil {
		return nil, nil, err
	}

	if params.Period != PeriodDaily && params.Period != PeriodWeekly && params.Period != PeriodMonthly {
		return nil, nil, errors.Wrapf(ErrInvalidPeriod, "período %q não aceito no ranking de lojas", params.Period)
	}

	limit := clampLimit(params.Limit, DefaultStoreRankingLimit, MaxStoreRankingLimit)

	key := s.keys.Build(identity, "store_ranking", map[string]string{
		"period": params.Period,
		"limit":  strconv.Itoa(limit),
	}, s.now())

	data := &domain.StoreRankingData{}

	meta, err := s.through(ctx, key, data, func(ctx context.Context) (interface{}, error) {
		now := s.now()

		window, err := ResolveWindow(params.Period, now, now)
		if err != nil {
			return nil, err
		}

		rows, err := s.saleRepo.AggregateSales(ctx, repository.SaleAggregateFilter{
			Scope:   scope,
			Window:  window,
			GroupBy: domain.GroupByStore,
		})
		if err != nil {
			return nil, errors.Wrap(err, "erro ao agregar vendas por loja")
		}

		return &domain.StoreRankingData{
			Period:  params.Period,
			Window:  window,
			Ranking: TopN(rows, limit),
		}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return data, meta, nil
}

// TopList retorna o top N de regionais ou lojas no período pedido
func (s *Service) TopList(ctx context.Context, identity domain.Identity, params TopListParams) (*domain.TopListData, *ResultMeta, error) {
	scope, err := scoping.Resolve(identity)
	if err != nil {
		return nil, nil, err
	}

	var groupBy string
	switch params.Type {
	case domain.GroupByBranch, domain.GroupByStore:
		groupBy = params.Type
	default:
		return nil, nil, errors.Wrapf(ErrInvalidParameter, "tipo %q não aceito no top", params.Type)
	}

	if params.Period != PeriodThisMonth && params.Period != PeriodLastMonth && params.Period != "last_3_months" {
		return nil, nil, errors.Wrapf(ErrInvalidPeriod, "período %q não aceito no top", params.Period)
	}

	limit := clampLimit(params.Limit, DefaultTopListLimit, MaxTopListLimit)

	key := s.keys.Build(identity, "top_list", map[string]string{
		"type":   params.Type,
		"period": params.Period,
		"limit":  strconv.Itoa(limit),
	}, s.now())

	data := &domain.TopListData{}

	meta, err := s.through(ctx, key, data, func(ctx context.Context) (interface{}, error) {
		now := s.now()

		window, err := ResolveWindow(params.Period, now, now)
		if err != nil {
			return nil, err
		}

		rows, err := s.saleRepo.AggregateSales(ctx, repository.SaleAggregateFilter{
			Scope:   scope,
			Window:  window,
			GroupBy: groupBy,
		})
		if err != nil {
			return nil, errors.Wrap(err, "erro ao agregar vendas para o top")
		}

		return &domain.TopListData{
			Type:    params.Type,
			Period:  params.Period,
			Window:  window,
			Entries: TopN(rows, limit),
		}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return data, meta, nil
}

// SelfRank retorna a posição do próprio chamador entre os pares. A
// agregação dos pares é deliberadamente sem escopo: só a posição e o
// total de candidatos saem na resposta, nunca as linhas das outras
// entidades.
func (s *Service) SelfRank(ctx context.Context, identity domain.Identity) (*domain.SelfRankData, *ResultMeta, error) {
	if _, err := scoping.Resolve(identity); err != nil {
		return nil, nil, err
	}

	key := s.keys.Build(identity, "self_rank", nil, s.now())
	data := &domain.SelfRankData{}

	meta, err := s.through(ctx, key, data, func(ctx context.Context) (interface{}, error) {
		now := s.now()

		window, err := ResolveWindow(PeriodThisMonth, now, now)
		if err != nil {
			return nil, err
		}

		result := &domain.SelfRankData{}

		if identity.BranchID != nil {
			position, err := s.peerPosition(ctx, window, domain.GroupByBranch, *identity.BranchID)
			if err != nil {
				return nil, err
			}
			result.BranchRank = position
		}

		if identity.StoreID != nil {
			position, err := s.peerPosition(ctx, window, domain.GroupByStore, *identity.StoreID)
			if err != nil {
				return nil, err
			}
			result.StoreRank = position
		}

		return result, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return data, meta, nil
}

func (s *Service) peerPosition(ctx context.Context, window domain.TimeWindow, groupBy string, entityID int) (*domain.RankPosition, error) {
	rows, err := s.saleRepo.AggregateSales(ctx, repository.SaleAggregateFilter{
		Scope:   domain.ScopeFilter{},
		Window:  window,
		GroupBy: groupBy,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar vendas dos pares")
	}

	rank, ranked := RankOf(rows, entityID)

	return &domain.RankPosition{
		Ranked: ranked,
		Rank:   rank,
		Total:  len(rows),
	}, nil
}

// SalesTrend retorna a série diária zero-preenchida dos últimos `days` dias
func (s *Service) SalesTrend(ctx context.Context, identity domain.Identity, days int) (*domain.SalesTrendData, *ResultMeta, error) {
	scope, err := scoping.Resolve(identity)
	if err != nil {
		return nil, nil, err
	}

	days = clampLimit(days, DefaultTrendDays, MaxTrendDays)

	key := s.keys.Build(identity, "sales_trend", map[string]string{
		"days": strconv.Itoa(days),
	}, s.now())

	data := &domain.SalesTrendData{}

	meta, err := s.through(ctx, key, data, func(ctx context.Context) (interface{}, error) {
		now := s.now()
		window := LastNDaysWindow(days, now)

		totals, err := s.saleRepo.DailyTotals(ctx, scope, window, nil)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar totais diários")
		}

		series, summary := BuildDailySeries(totals, days, now)

		return &domain.SalesTrendData{
			Days:    days,
			Window:  window,
			Series:  series,
			Summary: summary,
		}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return data, meta, nil
}

// KPI retorna os indicadores consolidados da janela, com crescimento sobre
// a janela anterior de mesmo tamanho e quebra por fornecedor
func (s *Service) KPI(ctx context.Context, identity domain.Identity, params KPIParams) (*domain.KPIData, *ResultMeta, error) {
	scope, err := scoping.Resolve(identity)
	if err != nil {
		return nil, nil, err
	}

	days := clampLimit(params.Days, DefaultTrendDays, MaxTrendDays)

	storeFilter, err := s.validateStoreFilter(ctx, identity, params.StoreID)
	if err != nil {
		return nil, nil, err
	}

	keyParams := map[string]string{"days": strconv.Itoa(days), "store": "-"}
	if storeFilter != nil {
		keyParams["store"] = strconv.Itoa(*storeFilter)
	}

	key := s.keys.Build(identity, "kpi", keyParams, s.now())
	data := &domain.KPIData{}

	meta, err := s.through(ctx, key, data, func(ctx context.Context) (interface{}, error) {
		now := s.now()
		window := LastNDaysWindow(days, now)

		current, err := s.aggregateWhole(ctx, scope, window, storeFilter)
		if err != nil {
			return nil, err
		}

		// Janela anterior de mesmo tamanho, terminando na véspera do início
		previousWindow := domain.TimeWindow{
			StartDate: window.StartDate.AddDate(0, 0, -days),
			EndDate:   window.StartDate.AddDate(0, 0, -1),
		}

		previous, err := s.aggregateWhole(ctx, scope, previousWindow, storeFilter)
		if err != nil {
			return nil, err
		}

		byAgency, err := s.saleRepo.AggregateSales(ctx, repository.SaleAggregateFilter{
			Scope:   scope,
			Window:  window,
			GroupBy: domain.GroupByAgency,
			StoreID: storeFilter,
		})
		if err != nil {
			return nil, errors.Wrap(err, "erro ao agregar vendas por fornecedor")
		}

		// O atingimento compara sempre o mês corrente contra a meta ativa,
		// independente da janela do KPI
		monthWindow, err := ResolveWindow(PeriodThisMonth, now, now)
		if err != nil {
			return nil, err
		}

		month, err := s.aggregateWhole(ctx, scope, monthWindow, storeFilter)
		if err != nil {
			return nil, err
		}

		achievement, err := s.achievementForScope(ctx, identity, month.TotalAmount)
		if err != nil {
			return nil, err
		}

		return &domain.KPIData{
			Days:              days,
			Window:            window,
			Activations:       current.Count,
			Sales:             current.TotalAmount,
			AverageTicket:     current.Average,
			ActivationsGrowth: GrowthRate(float64(current.Count), float64(previous.Count)),
			SalesGrowth:       GrowthRate(current.TotalAmount, previous.TotalAmount),
			AchievementRate:   achievement,
			ByAgency:          sortByTotalDesc(byAgency),
		}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return data, meta, nil
}

// validateStoreFilter aceita o filtro de loja apenas para chamadores de
// regional e apenas para lojas da própria regional. Loja desconhecida e
// loja de outra regional recebem a mesma resposta, sem oráculo de
// existência entre tenants.
func (s *Service) validateStoreFilter(ctx context.Context, identity domain.Identity, storeID *int) (*int, error) {
	if storeID == nil {
		return nil, nil
	}

	if identity.Role != domain.RoleBranch || identity.BranchID == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "filtro de loja só é aceito para chamadores de regional")
	}

	belongs, err := s.networkRepo.StoreBelongsToBranch(ctx, *storeID, *identity.BranchID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao validar vínculo da loja")
	}

	if !belongs {
		return nil, errors.Wrapf(ErrInvalidParameter, "loja %d não disponível para o chamador", *storeID)
	}

	return storeID, nil
}

// aggregateWhole agrega o conjunto filtrado inteiro (group_by none)
func (s *Service) aggregateWhole(ctx context.Context, scope domain.ScopeFilter, window domain.TimeWindow, storeID *int) (domain.AggregateRow, error) {
	rows, err := s.saleRepo.AggregateSales(ctx, repository.SaleAggregateFilter{
		Scope:   scope,
		Window:  window,
		GroupBy: domain.GroupByNone,
		StoreID: storeID,
	})
	if err != nil {
		return domain.AggregateRow{}, errors.Wrap(err, "erro ao agregar vendas")
	}

	if len(rows) == 0 {
		return domain.AggregateRow{}, nil
	}

	return rows[0], nil
}

// achievementForScope compara o realizado contra a meta ativa do alvo do
// chamador: rede inteira para a matriz, a regional para regionais e a
// loja para lojas. Sem meta cadastrada, o atingimento é 0.
func (s *Service) achievementForScope(ctx context.Context, identity domain.Identity, actual float64) (float64, error) {
	targetType := domain.GoalTargetSystem
	targetID := 0

	switch identity.Role {
	case domain.RoleBranch:
		if identity.BranchID == nil {
			return 0, errors.Wrap(scoping.ErrUnauthorizedScope, "papel de regional sem regional vinculada")
		}
		targetType = domain.GoalTargetBranch
		targetID = *identity.BranchID

	case domain.RoleStore:
		if identity.StoreID == nil {
			return 0, errors.Wrap(scoping.ErrUnauthorizedScope, "papel de loja sem loja vinculada")
		}
		targetType = domain.GoalTargetStore
		targetID = *identity.StoreID
	}

	goal, err := s.goalRepo.GetActiveGoal(ctx, targetType, targetID, s.now())
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar meta ativa")
	}

	if goal == nil {
		return 0, nil
	}

	return AchievementRate(actual, goal.SalesTarget), nil
}

// through roda a computação atrás da camada de cache e monta o ResultMeta
func (s *Service) through(ctx context.Context, key string, dest interface{}, compute caching.ComputeFunc) (*ResultMeta, error) {
	computedAt, hit, err := s.cache.GetOrCompute(ctx, key, s.cfg.Cache.TTL, dest, compute)
	if err != nil {
		return nil, err
	}

	if hit {
		log.L.WithContext(ctx).WithField("cache_key", key).Debug("Payload servido do cache")
	}

	return &ResultMeta{
		ComputedAt: computedAt,
		CacheHit:   hit,
		CacheKey:   key,
	}, nil
}

// clampLimit normaliza o limite pedido: ausente ou inválido usa o padrão,
// acima do teto usa o teto
func clampLimit(requested, fallback, max int) int {
	if requested <= 0 {
		return fallback
	}

	if requested > max {
		return max
	}

	return requested
}
