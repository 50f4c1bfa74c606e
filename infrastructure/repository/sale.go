// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/dealer-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-insights-api/internal/domain"
)

const (
	salesTable = "sales s"
)

// SaleAggregateFilter é a conjunção de predicados de uma agregação: o
// filtro de escopo vem sempre primeiro, depois a janela de datas e os
// filtros adicionais de igualdade.
type SaleAggregateFilter struct {
	Scope   domain.ScopeFilter
	Window  domain.TimeWindow
	GroupBy string
	StoreID *int
}

type SaleRepository interface {
	AggregateSales(ctx context.Context, filter SaleAggregateFilter) ([]domain.AggregateRow, error)
	DailyTotals(ctx context.Context, scope domain.ScopeFilter, window domain.TimeWindow, storeID *int) ([]domain.DailyTotal, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// AggregateSales soma e conta as vendas da janela, agrupadas pela dimensão
// pedida. Resultado vazio é uma lista vazia, nunca um erro.
func (r *saleRepository) AggregateSales(ctx context.Context, filter SaleAggregateFilter) ([]domain.AggregateRow, error) {
	queryBuilder := squirrel.
		Select().
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar)

	switch filter.GroupBy {
	case domain.GroupByStore:
		queryBuilder = queryBuilder.
			Columns("s.store_id", "st.name", "COUNT(*)", "COALESCE(SUM(s.settlement_amount), 0)").
			Join("stores st ON st.id = s.store_id").
			GroupBy("s.store_id", "st.name")

	case domain.GroupByBranch:
		queryBuilder = queryBuilder.
			Columns("s.branch_id", "b.name", "COUNT(*)", "COALESCE(SUM(s.settlement_amount), 0)").
			Join("branches b ON b.id = s.branch_id").
			GroupBy("s.branch_id", "b.name")

	case domain.GroupByAgency:
		queryBuilder = queryBuilder.
			Columns("0", "s.agency", "COUNT(*)", "COALESCE(SUM(s.settlement_amount), 0)").
			GroupBy("s.agency")

	case domain.GroupByNone:
		return r.aggregateWhole(ctx, filter)

	default:
		return nil, fmt.Errorf("dimensão de agrupamento desconhecida: %q", filter.GroupBy)
	}

	queryBuilder = applyScope(queryBuilder, filter.Scope)
	queryBuilder = applyWindow(queryBuilder, filter.Window)

	if filter.StoreID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.store_id": *filter.StoreID})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	aggregates := make([]domain.AggregateRow, 0)
	for rows.Next() {
		aggregate, err := scanAggregateRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha agregada: %w", err)
		}
		aggregates = append(aggregates, *aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return aggregates, nil
}

// aggregateWhole agrega o conjunto filtrado inteiro numa única linha sintética
func (r *saleRepository) aggregateWhole(ctx context.Context, filter SaleAggregateFilter) ([]domain.AggregateRow, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)", "COALESCE(SUM(s.settlement_amount), 0)").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyScope(queryBuilder, filter.Scope)
	queryBuilder = applyWindow(queryBuilder, filter.Window)

	if filter.StoreID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.store_id": *filter.StoreID})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	aggregate := domain.AggregateRow{EntityLabel: "total"}

	row := r.conn.QueryRowContext(ctx, sqlQuery, args...)
	if err := row.Scan(&aggregate.Count, &aggregate.TotalAmount); err != nil {
		return nil, fmt.Errorf("erro ao escanear totais: %w", err)
	}

	if aggregate.Count > 0 {
		aggregate.Average = aggregate.TotalAmount / float64(aggregate.Count)
	}

	return []domain.AggregateRow{aggregate}, nil
}

// DailyTotals retorna os totais por dia de calendário dentro da janela.
// Apenas dias com movimento aparecem; o preenchimento com zeros é feito
// pelo montador de séries.
func (r *saleRepository) DailyTotals(ctx context.Context, scope domain.ScopeFilter, window domain.TimeWindow, storeID *int) ([]domain.DailyTotal, error) {
	queryBuilder := squirrel.
		Select("s.sale_date", "COUNT(*)", "COALESCE(SUM(s.settlement_amount), 0)").
		From(salesTable).
		GroupBy("s.sale_date").
		OrderBy("s.sale_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyScope(queryBuilder, scope)
	queryBuilder = applyWindow(queryBuilder, window)

	if storeID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.store_id": *storeID})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.DailyTotal, 0)
	for rows.Next() {
		total := domain.DailyTotal{}
		if err := rows.Scan(&total.Date, &total.Activations, &total.Sales); err != nil {
			return nil, fmt.Errorf("erro ao escanear total diário: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

// applyScope aplica o filtro de visibilidade do chamador. Escopo de loja
// já implica a regional, então apenas um dos dois predicados entra.
func applyScope(queryBuilder squirrel.SelectBuilder, scope domain.ScopeFilter) squirrel.SelectBuilder {
	if scope.StoreID != nil {
		return queryBuilder.Where(squirrel.Eq{"s.store_id": *scope.StoreID})
	}

	if scope.BranchID != nil {
		return queryBuilder.Where(squirrel.Eq{"s.branch_id": *scope.BranchID})
	}

	return queryBuilder
}

// applyWindow aplica o intervalo fechado de dias de calendário. As pontas
// são formatadas como datas puras para manter a semântica de dia inteiro.
func applyWindow(queryBuilder squirrel.SelectBuilder, window domain.TimeWindow) squirrel.SelectBuilder {
	return queryBuilder.
		Where(squirrel.GtOrEq{"s.sale_date": window.StartDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"s.sale_date": window.EndDate.Format(time.DateOnly)})
}

func scanAggregateRow(rows *sql.Rows) (*domain.AggregateRow, error) {
	aggregate := &domain.AggregateRow{}

	err := rows.Scan(
		&aggregate.EntityID,
		&aggregate.EntityLabel,
		&aggregate.Count,
		&aggregate.TotalAmount,
	)
	if err != nil {
		return nil, err
	}

	if aggregate.Count > 0 {
		aggregate.Average = aggregate.TotalAmount / float64(aggregate.Count)
	}

	return aggregate, nil
}
