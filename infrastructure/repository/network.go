package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/dealer-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-insights-api/internal/domain"
)

// NetworkRepository responde às contagens da rede (lojas, regionais,
// usuários) dentro do escopo do chamador e resolve o vínculo loja-regional
type NetworkRepository interface {
	CountStores(ctx context.Context, scope domain.ScopeFilter) (int, error)
	CountBranches(ctx context.Context, scope domain.ScopeFilter) (int, error)
	CountUsers(ctx context.Context, scope domain.ScopeFilter) (int, error)
	StoreBelongsToBranch(ctx context.Context, storeID, branchID int) (bool, error)
}

type networkRepository struct {
	conn *postgres.Connection
}

func NewNetworkRepository(conn *postgres.Connection) NetworkRepository {
	return &networkRepository{
		conn: conn,
	}
}

func (r *networkRepository) CountStores(ctx context.Context, scope domain.ScopeFilter) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From("stores st").
		Where(squirrel.Eq{"st.active": true}).
		PlaceholderFormat(squirrel.Dollar)

	if scope.StoreID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"st.id": *scope.StoreID})
	} else if scope.BranchID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"st.branch_id": *scope.BranchID})
	}

	return r.countOne(ctx, queryBuilder)
}

func (r *networkRepository) CountBranches(ctx context.Context, scope domain.ScopeFilter) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From("branches b").
		PlaceholderFormat(squirrel.Dollar)

	if scope.StoreID != nil {
		queryBuilder = queryBuilder.
			Join("stores st ON st.branch_id = b.id").
			Where(squirrel.Eq{"st.id": *scope.StoreID})
	} else if scope.BranchID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"b.id": *scope.BranchID})
	}

	return r.countOne(ctx, queryBuilder)
}

func (r *networkRepository) CountUsers(ctx context.Context, scope domain.ScopeFilter) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From("users u").
		Where(squirrel.Eq{"u.deleted": false}).
		PlaceholderFormat(squirrel.Dollar)

	if scope.StoreID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"u.store_id": *scope.StoreID})
	} else if scope.BranchID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"u.branch_id": *scope.BranchID})
	}

	return r.countOne(ctx, queryBuilder)
}

// StoreBelongsToBranch confirma o vínculo antes de aceitar o filtro de
// loja pedido por um chamador de regional
func (r *networkRepository) StoreBelongsToBranch(ctx context.Context, storeID, branchID int) (bool, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From("stores st").
		Where(squirrel.Eq{"st.id": storeID, "st.branch_id": branchID, "st.active": true}).
		PlaceholderFormat(squirrel.Dollar)

	count, err := r.countOne(ctx, queryBuilder)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *networkRepository) countOne(ctx context.Context, queryBuilder squirrel.SelectBuilder) (int, error) {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao escanear contagem: %w", err)
	}

	return count, nil
}
