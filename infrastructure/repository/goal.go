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
	goalsTable = "goals g"
)

type GoalRepository interface {
	GetActiveGoal(ctx context.Context, targetType string, targetID int, ref time.Time) (*domain.Goal, error)
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

// GetActiveGoal busca a meta ativa cujo período cobre a data de referência.
// Retorna nil sem erro quando não há meta cadastrada.
func (r *goalRepository) GetActiveGoal(ctx context.Context, targetType string, targetID int, ref time.Time) (*domain.Goal, error) {
	query, args, err := squirrel.
		Select(
			"g.id",
			"g.target_type",
			"g.target_id",
			"g.period_type",
			"g.period_start",
			"g.period_end",
			"g.sales_target",
			"g.activation_target",
			"g.margin_target",
			"g.is_active",
		).
		From(goalsTable).
		Where(squirrel.Eq{"g.target_type": targetType, "g.target_id": targetID, "g.is_active": true}).
		Where(squirrel.LtOrEq{"g.period_start": ref.Format(time.DateOnly)}).
		Where(squirrel.GtOrEq{"g.period_end": ref.Format(time.DateOnly)}).
		OrderBy("g.period_start DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal := &domain.Goal{}

	row := r.conn.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&goal.ID,
		&goal.TargetType,
		&goal.TargetID,
		&goal.PeriodType,
		&goal.PeriodStart,
		&goal.PeriodEnd,
		&goal.SalesTarget,
		&goal.ActivationTarget,
		&goal.MarginTarget,
		&goal.IsActive,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}

	return goal, nil
}
