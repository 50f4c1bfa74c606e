package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dealer-insights-api/infrastructure/repository"
	"github.com/vfg2006/dealer-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/dealer-insights-api/internal/config"
	"github.com/vfg2006/dealer-insights-api/internal/domain"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/caching"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/scoping"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	saleRepo    *mocks.MockSaleRepository
	goalRepo    *mocks.MockGoalRepository
	networkRepo *mocks.MockNetworkRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := serviceMocks{
		saleRepo:    mocks.NewMockSaleRepository(ctrl),
		goalRepo:    mocks.NewMockGoalRepository(ctrl),
		networkRepo: mocks.NewMockNetworkRepository(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = time.Minute

	service := NewService(
		cfg,
		m.saleRepo,
		m.goalRepo,
		m.networkRepo,
		caching.New(caching.NewMemoryStore()),
		caching.NewKeyBuilder(5*time.Minute),
	)
	service.now = func() time.Time {
		return time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)
	}

	return service, m
}

func intPtr(v int) *int {
	return &v
}

func headquartersIdentity() domain.Identity {
	return domain.Identity{UserID: 1, Role: domain.RoleHeadquarters}
}

func branchTestIdentity() domain.Identity {
	return domain.Identity{UserID: 2, Role: domain.RoleBranch, BranchID: intPtr(7)}
}

func storeTestIdentity() domain.Identity {
	return domain.Identity{UserID: 3, Role: domain.RoleStore, StoreID: intPtr(4)}
}

func TestServiceOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("matriz vê a rede inteira e a meta global", func(t *testing.T) {
		service, m := newTestService(t)

		m.networkRepo.EXPECT().CountStores(gomock.Any(), domain.ScopeFilter{}).Return(8, nil)
		m.networkRepo.EXPECT().CountBranches(gomock.Any(), domain.ScopeFilter{}).Return(3, nil)
		m.networkRepo.EXPECT().CountUsers(gomock.Any(), domain.ScopeFilter{}).Return(25, nil)

		// Agregado do mês e do dia, sem filtro de escopo
		m.saleRepo.EXPECT().
			AggregateSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter repository.SaleAggregateFilter) ([]domain.AggregateRow, error) {
				assert.True(t, filter.Scope.Unrestricted())
				assert.Equal(t, domain.GroupByNone, filter.GroupBy)
				return []domain.AggregateRow{{Count: 120, TotalAmount: 450000}}, nil
			}).
			Times(2)

		m.goalRepo.EXPECT().
			GetActiveGoal(gomock.Any(), domain.GoalTargetSystem, 0, gomock.Any()).
			Return(&domain.Goal{SalesTarget: 900000}, nil)

		data, meta, err := service.Overview(ctx, headquartersIdentity())

		require.NoError(t, err)
		assert.Equal(t, 8, data.TotalStores)
		assert.Equal(t, 3, data.TotalBranches)
		assert.Equal(t, 25, data.TotalUsers)
		assert.Equal(t, 120, data.MonthActivations)
		assert.Equal(t, 450000.0, data.MonthSales)
		assert.Equal(t, 50.0, data.AchievementRate)
		assert.False(t, meta.CacheHit)
	})

	t.Run("regional só consulta dentro da própria regional", func(t *testing.T) {
		service, m := newTestService(t)
		wantScope := domain.ScopeFilter{BranchID: intPtr(7)}

		m.networkRepo.EXPECT().CountStores(gomock.Any(), wantScope).Return(3, nil)
		m.networkRepo.EXPECT().CountBranches(gomock.Any(), wantScope).Return(1, nil)
		m.networkRepo.EXPECT().CountUsers(gomock.Any(), wantScope).Return(9, nil)

		m.saleRepo.EXPECT().
			AggregateSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter repository.SaleAggregateFilter) ([]domain.AggregateRow, error) {
				require.NotNil(t, filter.Scope.BranchID)
				assert.Equal(t, 7, *filter.Scope.BranchID)
				return nil, nil
			}).
			Times(2)

		m.goalRepo.EXPECT().
			GetActiveGoal(gomock.Any(), domain.GoalTargetBranch, 7, gomock.Any()).
			Return(nil, nil)

		data, _, err := service.Overview(ctx, branchTestIdentity())

		require.NoError(t, err)
		assert.Zero(t, data.AchievementRate) // sem meta cadastrada
	})

	t.Run("segunda chamada no mesmo balde vem do cache", func(t *testing.T) {
		service, m := newTestService(t)

		m.networkRepo.EXPECT().CountStores(gomock.Any(), gomock.Any()).Return(8, nil).Times(1)
		m.networkRepo.EXPECT().CountBranches(gomock.Any(), gomock.Any()).Return(3, nil).Times(1)
		m.networkRepo.EXPECT().CountUsers(gomock.Any(), gomock.Any()).Return(25, nil).Times(1)
		m.saleRepo.EXPECT().AggregateSales(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		m.goalRepo.EXPECT().GetActiveGoal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

		_, first, err := service.Overview(ctx, headquartersIdentity())
		require.NoError(t, err)
		assert.False(t, first.CacheHit)

		data, second, err := service.Overview(ctx, headquartersIdentity())
		require.NoError(t, err)
		assert.True(t, second.CacheHit)
		assert.Equal(t, first.ComputedAt, second.ComputedAt)
		assert.Equal(t, 8, data.TotalStores)
	})

	t.Run("regional sem vínculo é rejeitada antes de tocar o banco", func(t *testing.T) {
		service, _ := newTestService(t)
		identity := domain.Identity{UserID: 5, Role: domain.RoleBranch}

		_, _, err := service.Overview(ctx, identity)

		assert.True(t, errors.Is(err, scoping.ErrUnauthorizedScope))
	})
}

func TestServiceStoreRanking(t *testing.T) {
	ctx := context.Background()

	t.Run("retorna posições densas ordenadas por valor", func(t *testing.T) {
		service, m := newTestService(t)

		m.saleRepo.EXPECT().
			AggregateSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter repository.SaleAggregateFilter) ([]domain.AggregateRow, error) {
				assert.Equal(t, domain.GroupByStore, filter.GroupBy)
				return []domain.AggregateRow{
					{EntityID: 2, EntityLabel: "Loja B", TotalAmount: 1000},
					{EntityID: 1, EntityLabel: "Loja A", TotalAmount: 3000},
				}, nil
			})

		data, _, err := service.StoreRanking(ctx, headquartersIdentity(), StoreRankingParams{Period: PeriodMonthly})

		require.NoError(t, err)
		assert.Equal(t, PeriodMonthly, data.Period)
		require.Len(t, data.Ranking, 2)
		assert.Equal(t, 1, data.Ranking[0].EntityID)
		assert.Equal(t, 1, data.Ranking[0].Rank)
		assert.Equal(t, 2, data.Ranking[1].Rank)
	})

	t.Run("período fora do conjunto aceito é rejeitado", func(t *testing.T) {
		service, _ := newTestService(t)

		_, _, err := service.StoreRanking(ctx, headquartersIdentity(), StoreRankingParams{Period: PeriodThisMonth})

		assert.True(t, errors.Is(err, ErrInvalidPeriod))
	})

	t.Run("limite acima do teto é grampeado no teto", func(t *testing.T) {
		service, m := newTestService(t)

		rows := make([]domain.AggregateRow, 0, 60)
		for i := 1; i <= 60; i++ {
			rows = append(rows, domain.AggregateRow{EntityID: i, TotalAmount: float64(1000 - i)})
		}
		m.saleRepo.EXPECT().AggregateSales(gomock.Any(), gomock.Any()).Return(rows, nil)

		data, _, err := service.StoreRanking(ctx, headquartersIdentity(), StoreRankingParams{Period: PeriodDaily, Limit: 500})

		require.NoError(t, err)
		assert.Len(t, data.Ranking, MaxStoreRankingLimit)
	})

	t.Run("limite ausente usa o padrão", func(t *testing.T) {
		service, m := newTestService(t)

		rows := make([]domain.AggregateRow, 0, 30)
		for i := 1; i <= 30; i++ {
			rows = append(rows, domain.AggregateRow{EntityID: i, TotalAmount: float64(1000 - i)})
		}
		m.saleRepo.EXPECT().AggregateSales(gomock.Any(), gomock.Any()).Return(rows, nil)

		data, _, err := service.StoreRanking(ctx, headquartersIdentity(), StoreRankingParams{Period: PeriodWeekly})

		require.NoError(t, err)
		assert.Len(t, data.Ranking, DefaultStoreRankingLimit)
	})
}

func TestServiceTopList(t *testing.T) {
	ctx := context.Background()

	t.Run("tipo desconhecido é rejeitado", func(t *testing.T) {
		service, _ := newTestService(t)

		_, _, err := service.TopList(ctx, headquartersIdentity(), TopListParams{Type: "agency", Period: PeriodThisMonth})

		assert.True(t, errors.Is(err, ErrInvalidParameter))
	})

	t.Run("agrupa por regional quando o tipo é branch", func(t *testing.T) {
		service, m := newTestService(t)

		m.saleRepo.EXPECT().
			AggregateSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter repository.SaleAggregateFilter) ([]domain.AggregateRow, error) {
				assert.Equal(t, domain.GroupByBranch, filter.GroupBy)
				return []domain.AggregateRow{{EntityID: 1, TotalAmount: 100}}, nil
			})

		data, _, err := service.TopList(ctx, headquartersIdentity(), TopListParams{Type: domain.GroupByBranch, Period: "last_3_months"})

		require.NoError(t, err)
		assert.Equal(t, domain.GroupByBranch, data.Type)
		assert.Len(t, data.Entries, 1)
	})
}

func TestServiceSelfRank(t *testing.T) {
	ctx := context.Background()

	t.Run("loja recebe posição entre todas as lojas da rede", func(t *testing.T) {
		service, m := newTestService(t)

		m.saleRepo.EXPECT().
			AggregateSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter repository.SaleAggregateFilter) ([]domain.AggregateRow, error) {
				// A comparação entre pares atravessa escopos de propósito:
				// só a posição sai na resposta
				assert.True(t, filter.Scope.Unrestricted())
				assert.Equal(t, domain.GroupByStore, filter.GroupBy)
				return []domain.AggregateRow{
					{EntityID: 9, TotalAmount: 5000},
					{EntityID: 4, TotalAmount: 3000},
					{EntityID: 6, TotalAmount: 1000},
				}, nil
			})

		data, _, err := service.SelfRank(ctx, storeTestIdentity())

		require.NoError(t, err)
		require.NotNil(t, data.StoreRank)
		assert.True(t, data.StoreRank.Ranked)
		assert.Equal(t, 2, data.StoreRank.Rank)
		assert.Equal(t, 3, data.StoreRank.Total)
		assert.Nil(t, data.BranchRank)
	})

	t.Run("loja sem movimento no mês não é posição zero", func(t *testing.T) {
		service, m := newTestService(t)

		m.saleRepo.EXPECT().
			AggregateSales(gomock.Any(), gomock.Any()).
			Return([]domain.AggregateRow{{EntityID: 9, TotalAmount: 5000}}, nil)

		data, _, err := service.SelfRank(ctx, storeTestIdentity())

		require.NoError(t, err)
		require.NotNil(t, data.StoreRank)
		assert.False(t, data.StoreRank.Ranked)
		assert.Zero(t, data.StoreRank.Rank)
		assert.Equal(t, 1, data.StoreRank.Total)
	})

	t.Run("regional recebe a posição da regional", func(t *testing.T) {
		service, m := newTestService(t)

		m.saleRepo.EXPECT().
			AggregateSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter repository.SaleAggregateFilter) ([]domain.AggregateRow, error) {
				assert.Equal(t, domain.GroupByBranch, filter.GroupBy)
				return []domain.AggregateRow{
					{EntityID: 7, TotalAmount: 9000},
					{EntityID: 2, TotalAmount: 4000},
				}, nil
			})

		data, _, err := service.SelfRank(ctx, branchTestIdentity())

		require.NoError(t, err)
		require.NotNil(t, data.BranchRank)
		assert.Equal(t, 1, data.BranchRank.Rank)
		assert.Nil(t, data.StoreRank)
	})
}

func TestServiceSalesTrend(t *testing.T) {
	ctx := context.Background()

	t.Run("série tem o tamanho pedido com dias zerados", func(t *testing.T) {
		service, m := newTestService(t)

		m.saleRepo.EXPECT().
			DailyTotals(gomock.Any(), gomock.Any(), gomock.Any(), nil).
			Return([]domain.DailyTotal{
				{Date: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), Activations: 4, Sales: 600},
			}, nil)

		data, _, err := service.SalesTrend(ctx, headquartersIdentity(), 7)

		require.NoError(t, err)
		assert.Equal(t, 7, data.Days)
		require.Len(t, data.Series, 7)
		assert.Equal(t, "2025-03-09", data.Series[0].Date)
		assert.Equal(t, "2025-03-15", data.Series[6].Date)
		assert.Equal(t, 4, data.Series[6].Activations)
		assert.Zero(t, data.Series[0].Activations)
		assert.Equal(t, 4, data.Summary.TotalActivations)
	})

	t.Run("dias acima do teto são grampeados", func(t *testing.T) {
		service, m := newTestService(t)

		m.saleRepo.EXPECT().
			DailyTotals(gomock.Any(), gomock.Any(), gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _ domain.ScopeFilter, window domain.TimeWindow, _ *int) ([]domain.DailyTotal, error) {
				assert.Equal(t, MaxTrendDays, window.Days())
				return nil, nil
			})

		data, _, err := service.SalesTrend(ctx, headquartersIdentity(), 365)

		require.NoError(t, err)
		assert.Equal(t, MaxTrendDays, data.Days)
		assert.Len(t, data.Series, MaxTrendDays)
	})
}

func TestServiceKPI(t *testing.T) {
	ctx := context.Background()

	t.Run("calcula crescimento contra a janela anterior", func(t *testing.T) {
		service, m := newTestService(t)

		aggregates := []domain.AggregateRow{
			{Count: 30, TotalAmount: 3000, Average: 100}, // janela atual
			{Count: 20, TotalAmount: 2000, Average: 100}, // janela anterior
		}
		call := 0

		m.saleRepo.EXPECT().
			AggregateSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter repository.SaleAggregateFilter) ([]domain.AggregateRow, error) {
				switch filter.GroupBy {
				case domain.GroupByNone:
					if call < 2 {
						row := aggregates[call]
						call++
						return []domain.AggregateRow{row}, nil
					}
					// agregado do mês para o atingimento
					return []domain.AggregateRow{{Count: 40, TotalAmount: 4500}}, nil

				case domain.GroupByAgency:
					return []domain.AggregateRow{
						{EntityID: 0, EntityLabel: "Banco Norte", TotalAmount: 1000},
						{EntityID: 0, EntityLabel: "Banco Azul", TotalAmount: 2000},
					}, nil
				}
				return nil, nil
			}).
			Times(4)

		m.goalRepo.EXPECT().
			GetActiveGoal(gomock.Any(), domain.GoalTargetSystem, 0, gomock.Any()).
			Return(&domain.Goal{SalesTarget: 9000}, nil)

		data, _, err := service.KPI(ctx, headquartersIdentity(), KPIParams{Days: 30})

		require.NoError(t, err)
		assert.Equal(t, 30, data.Activations)
		assert.Equal(t, 3000.0, data.Sales)
		assert.Equal(t, 50.0, data.ActivationsGrowth)
		assert.Equal(t, 50.0, data.SalesGrowth)
		assert.Equal(t, 50.0, data.AchievementRate)
		require.Len(t, data.ByAgency, 2)
		assert.Equal(t, "Banco Azul", data.ByAgency[0].EntityLabel)
	})

	t.Run("filtro de loja só é aceito para regionais", func(t *testing.T) {
		service, _ := newTestService(t)

		_, _, err := service.KPI(ctx, headquartersIdentity(), KPIParams{Days: 30, StoreID: intPtr(4)})

		assert.True(t, errors.Is(err, ErrInvalidParameter))
	})

	t.Run("loja de outra regional é rejeitada sem revelar existência", func(t *testing.T) {
		service, m := newTestService(t)

		m.networkRepo.EXPECT().
			StoreBelongsToBranch(gomock.Any(), 4, 7).
			Return(false, nil)

		_, _, err := service.KPI(ctx, branchTestIdentity(), KPIParams{Days: 30, StoreID: intPtr(4)})

		assert.True(t, errors.Is(err, ErrInvalidParameter))
	})

	t.Run("loja da própria regional passa o filtro ao repositório", func(t *testing.T) {
		service, m := newTestService(t)

		m.networkRepo.EXPECT().
			StoreBelongsToBranch(gomock.Any(), 4, 7).
			Return(true, nil)

		m.saleRepo.EXPECT().
			AggregateSales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter repository.SaleAggregateFilter) ([]domain.AggregateRow, error) {
				if filter.GroupBy != domain.GroupByAgency {
					require.NotNil(t, filter.StoreID)
					assert.Equal(t, 4, *filter.StoreID)
				}
				return nil, nil
			}).
			Times(4)

		m.goalRepo.EXPECT().
			GetActiveGoal(gomock.Any(), domain.GoalTargetBranch, 7, gomock.Any()).
			Return(nil, nil)

		_, _, err := service.KPI(ctx, branchTestIdentity(), KPIParams{Days: 30, StoreID: intPtr(4)})

		require.NoError(t, err)
	})
}
